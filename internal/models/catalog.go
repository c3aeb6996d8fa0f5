package models

// Brand is immutable reference data seeded at startup. Clients only
// ever read it; inserts are admin-only.
type Brand struct {
	BaseModel
	Name    string `gorm:"uniqueIndex;not null" json:"name"`
	LogoURL string `json:"logo_url,omitempty"`

	// Relations
	CarModels []CarModel `gorm:"foreignKey:BrandID" json:"-"`
}

func (Brand) TableName() string {
	return "car_brands"
}

// CarModel names are unique per brand, not globally.
type CarModel struct {
	BaseModel
	BrandID string `gorm:"type:uuid;not null;uniqueIndex:idx_car_models_brand_name" json:"brand_id"`
	Name    string `gorm:"not null;uniqueIndex:idx_car_models_brand_name" json:"name"`

	// Relations
	Brand *Brand `gorm:"foreignKey:BrandID" json:"-"`
}

func (CarModel) TableName() string {
	return "car_models"
}
