package database

import (
	"fmt"

	"wagenmarkt_backend/internal/logger"
	"wagenmarkt_backend/internal/models"

	"gorm.io/gorm"
)

// seedBrands is the initial German brand/model catalog. Each entry is
// keyed by name, so re-running the seed never duplicates rows.
var seedBrands = map[string][]string{
	"Audi":          {"A3", "A4", "A6", "Q5", "Q7", "e-tron"},
	"BMW":           {"1er", "3er", "5er", "X1", "X3", "X5"},
	"Mercedes-Benz": {"A-Klasse", "C-Klasse", "E-Klasse", "GLC", "GLE"},
	"Opel":          {"Astra", "Corsa", "Insignia", "Mokka"},
	"Porsche":       {"911", "Cayenne", "Macan", "Taycan"},
	"Volkswagen":    {"Golf", "Passat", "Polo", "Tiguan", "Touareg"},
}

// SeedCatalog inserts the brand/model taxonomy if it is missing.
func SeedCatalog(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		for brandName, modelNames := range seedBrands {
			var brand models.Brand
			err := tx.Where("name = ?", brandName).
				FirstOrCreate(&brand, models.Brand{Name: brandName}).Error
			if err != nil {
				return fmt.Errorf("seed brand %q: %w", brandName, err)
			}

			for _, modelName := range modelNames {
				var carModel models.CarModel
				err := tx.Where("brand_id = ? AND name = ?", brand.ID, modelName).
					FirstOrCreate(&carModel, models.CarModel{BrandID: brand.ID, Name: modelName}).Error
				if err != nil {
					return fmt.Errorf("seed model %q/%q: %w", brandName, modelName, err)
				}
			}
		}

		logger.Info("Catalog seed complete", "brands", len(seedBrands))
		return nil
	})
}
