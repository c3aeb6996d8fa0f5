package database

import (
	"wagenmarkt_backend/internal/models"

	"gorm.io/gorm"
)

// AutoMigrate creates or updates every table of the marketplace schema.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Profile{},
		&models.RefreshToken{},
		&models.Brand{},
		&models.CarModel{},
		&models.Listing{},
	)
}
