package repositories

import (
	"errors"

	"wagenmarkt_backend/internal/models"

	"gorm.io/gorm"
)

var ErrListingNotFound = errors.New("listing not found")

// ListingFilter is the sparse predicate set for listing reads. Pointer
// fields distinguish "absent" from "zero": a nil bound adds no
// predicate, it never means "equals 0".
type ListingFilter struct {
	BrandID      string   `form:"brand_id"`
	ModelID      string   `form:"model_id"`
	MinPrice     *float64 `form:"min_price"`
	MaxPrice     *float64 `form:"max_price"`
	MinYear      *int     `form:"min_year"`
	MaxYear      *int     `form:"max_year"`
	MinMileage   *int     `form:"min_mileage"`
	MaxMileage   *int     `form:"max_mileage"`
	Condition    string   `form:"condition"`
	Transmission string   `form:"transmission"`
	Page         int      `form:"page"`
	PageSize     int      `form:"page_size"`
}

type ListingRepository interface {
	Create(db *gorm.DB, listing *models.Listing) error
	FindByID(db *gorm.DB, id string) (*models.Listing, error)
	FindWithFilter(db *gorm.DB, filter ListingFilter) ([]models.Listing, int64, error)
	ListBySeller(db *gorm.DB, sellerID string) ([]models.Listing, error)
	Update(db *gorm.DB, listing *models.Listing) error
	Delete(db *gorm.DB, id string) error
}

type ListingRepositoryImpl struct{}

func NewListingRepository() ListingRepository {
	return &ListingRepositoryImpl{}
}

func (r *ListingRepositoryImpl) Create(db *gorm.DB, listing *models.Listing) error {
	return db.Create(listing).Error
}

// FindByID loads one listing with its brand, model and seller profile
// for the detail view.
func (r *ListingRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Listing, error) {
	var listing models.Listing
	err := db.Preload("Brand").Preload("CarModel").Preload("Seller").
		First(&listing, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrListingNotFound
		}
		return nil, err
	}
	return &listing, nil
}

// FindWithFilter builds the listing read query. Every present filter
// field adds exactly one conjunctive predicate; absent fields add
// none. Base ordering is newest first with the id as a stable
// tie-break for equal timestamps.
func (r *ListingRepositoryImpl) FindWithFilter(db *gorm.DB, filter ListingFilter) ([]models.Listing, int64, error) {
	var listings []models.Listing
	query := db.Model(&models.Listing{})

	if filter.BrandID != "" {
		query = query.Where("brand_id = ?", filter.BrandID)
	}
	if filter.ModelID != "" {
		query = query.Where("model_id = ?", filter.ModelID)
	}
	if filter.MinPrice != nil {
		query = query.Where("price >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		query = query.Where("price <= ?", *filter.MaxPrice)
	}
	if filter.MinYear != nil {
		query = query.Where("year >= ?", *filter.MinYear)
	}
	if filter.MaxYear != nil {
		query = query.Where("year <= ?", *filter.MaxYear)
	}
	if filter.MinMileage != nil {
		query = query.Where("mileage >= ?", *filter.MinMileage)
	}
	if filter.MaxMileage != nil {
		query = query.Where("mileage <= ?", *filter.MaxMileage)
	}
	if filter.Condition != "" {
		query = query.Where("condition = ?", filter.Condition)
	}
	if filter.Transmission != "" {
		query = query.Where("transmission = ?", filter.Transmission)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = query.Order("created_at DESC, id DESC")

	if filter.PageSize > 0 {
		page := filter.Page
		if page <= 0 {
			page = 1
		}
		query = query.Limit(filter.PageSize).Offset((page - 1) * filter.PageSize)
	}

	err := query.Preload("Brand").Preload("CarModel").Find(&listings).Error
	return listings, total, err
}

func (r *ListingRepositoryImpl) ListBySeller(db *gorm.DB, sellerID string) ([]models.Listing, error) {
	var listings []models.Listing
	err := db.Preload("Brand").Preload("CarModel").
		Where("seller_id = ?", sellerID).
		Order("created_at DESC, id DESC").
		Find(&listings).Error
	return listings, err
}

func (r *ListingRepositoryImpl) Update(db *gorm.DB, listing *models.Listing) error {
	result := db.Model(&models.Listing{}).Where("id = ?", listing.ID).Updates(map[string]interface{}{
		"brand_id":     listing.BrandID,
		"model_id":     listing.ModelID,
		"title":        listing.Title,
		"description":  listing.Description,
		"year":         listing.Year,
		"price":        listing.Price,
		"mileage":      listing.Mileage,
		"condition":    listing.Condition,
		"transmission": listing.Transmission,
		"color":        listing.Color,
		"vin":          listing.VIN,
		"images":       listing.Images,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrListingNotFound
	}
	return nil
}

func (r *ListingRepositoryImpl) Delete(db *gorm.DB, id string) error {
	result := db.Where("id = ?", id).Delete(&models.Listing{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrListingNotFound
	}
	return nil
}
