package models

import (
	"encoding/json"

	"gorm.io/datatypes"
)

type Listing struct {
	BaseModel
	SellerID     string         `gorm:"type:uuid;not null;index"`
	BrandID      string         `gorm:"type:uuid;not null;index"`
	ModelID      string         `gorm:"type:uuid;not null;index"`
	Title        string         `gorm:"not null"`
	Description  string
	Year         int            `gorm:"not null"`
	Price        float64        `gorm:"type:numeric(12,2);not null"`
	Mileage      int            `gorm:"not null"` // kilometers
	Condition    Condition      `gorm:"type:varchar(20);not null"`
	Transmission Transmission   `gorm:"type:varchar(20);not null"`
	Color        string
	VIN          string         `gorm:"column:vin"`
	Images       datatypes.JSON `gorm:"type:jsonb"` // ordered URL list

	// Relations
	Brand    *Brand    `gorm:"foreignKey:BrandID"`
	CarModel *CarModel `gorm:"foreignKey:ModelID"`
	Seller   *Profile  `gorm:"foreignKey:SellerID"`
}

func (Listing) TableName() string {
	return "car_listings"
}

// GetImages returns the image URLs as a slice of strings.
func (l *Listing) GetImages() []string {
	var images []string
	if len(l.Images) > 0 {
		_ = json.Unmarshal(l.Images, &images)
	}
	return images
}

// SetImages stores the image URLs, preserving order.
func (l *Listing) SetImages(images []string) {
	data, _ := json.Marshal(images)
	l.Images = datatypes.JSON(data)
}
