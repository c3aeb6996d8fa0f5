package models

type UserStatus string
type UserRole string
type Condition string
type Transmission string

const (
	UserStatusActive    UserStatus = "active"
	UserStatusSuspended UserStatus = "suspended"

	UserRoleUser  UserRole = "user"
	UserRoleAdmin UserRole = "admin"

	ConditionNew       Condition = "new"
	ConditionUsed      Condition = "used"
	ConditionCertified Condition = "certified"

	TransmissionAutomatic Transmission = "automatic"
	TransmissionManual    Transmission = "manual"
)

// MinListingYear is the lower bound for a listing's model year.
const MinListingYear = 1900

func (c Condition) Valid() bool {
	switch c {
	case ConditionNew, ConditionUsed, ConditionCertified:
		return true
	}
	return false
}

func (t Transmission) Valid() bool {
	switch t {
	case TransmissionAutomatic, TransmissionManual:
		return true
	}
	return false
}
