package validator

import (
	"log"
	"time"

	"wagenmarkt_backend/internal/models"

	"github.com/go-playground/validator/v10"
)

// registerCustomRules installs the domain validation tags.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			// A rule that fails to register is a startup error.
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	mustRegister("is-condition", validateCondition)
	mustRegister("is-transmission", validateTransmission)
	mustRegister("model-year", validateModelYear)
}

func validateCondition(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // empty is for 'required' to catch
	}
	return models.Condition(value).Valid()
}

func validateTransmission(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return models.Transmission(value).Valid()
}

// validateModelYear enforces [1900, current year].
func validateModelYear(fl validator.FieldLevel) bool {
	year := fl.Field().Int()
	if year == 0 {
		return true
	}
	return year >= models.MinListingYear && year <= int64(time.Now().Year())
}
