package repositories

import (
	"errors"

	"wagenmarkt_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrBrandNotFound      = errors.New("brand not found")
	ErrCarModelNotFound   = errors.New("car model not found")
	ErrBrandAlreadyExists = errors.New("brand already exists")
	ErrModelAlreadyExists = errors.New("model already exists for this brand")
)

// CatalogRepository serves the brand/model reference taxonomy. Reads
// are public; writes only happen from the seeder and admin routes.
type CatalogRepository interface {
	CreateBrand(db *gorm.DB, brand *models.Brand) error
	FindAllBrands(db *gorm.DB) ([]models.Brand, error)
	FindBrandByID(db *gorm.DB, id string) (*models.Brand, error)
	FindBrandByName(db *gorm.DB, name string) (*models.Brand, error)

	CreateModel(db *gorm.DB, model *models.CarModel) error
	FindModelByID(db *gorm.DB, id string) (*models.CarModel, error)
	FindModelsByBrand(db *gorm.DB, brandID string) ([]models.CarModel, error)
}

type CatalogRepositoryImpl struct{}

func NewCatalogRepository() CatalogRepository {
	return &CatalogRepositoryImpl{}
}

func (r *CatalogRepositoryImpl) CreateBrand(db *gorm.DB, brand *models.Brand) error {
	var existing models.Brand
	if err := db.Where("name = ?", brand.Name).First(&existing).Error; err == nil {
		return ErrBrandAlreadyExists
	}
	return db.Create(brand).Error
}

func (r *CatalogRepositoryImpl) FindAllBrands(db *gorm.DB) ([]models.Brand, error) {
	var brands []models.Brand
	err := db.Order("name ASC").Find(&brands).Error
	return brands, err
}

func (r *CatalogRepositoryImpl) FindBrandByID(db *gorm.DB, id string) (*models.Brand, error) {
	var brand models.Brand
	err := db.First(&brand, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBrandNotFound
		}
		return nil, err
	}
	return &brand, nil
}

func (r *CatalogRepositoryImpl) FindBrandByName(db *gorm.DB, name string) (*models.Brand, error) {
	var brand models.Brand
	err := db.First(&brand, "name = ?", name).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBrandNotFound
		}
		return nil, err
	}
	return &brand, nil
}

func (r *CatalogRepositoryImpl) CreateModel(db *gorm.DB, model *models.CarModel) error {
	var existing models.CarModel
	if err := db.Where("brand_id = ? AND name = ?", model.BrandID, model.Name).First(&existing).Error; err == nil {
		return ErrModelAlreadyExists
	}
	return db.Create(model).Error
}

func (r *CatalogRepositoryImpl) FindModelByID(db *gorm.DB, id string) (*models.CarModel, error) {
	var model models.CarModel
	err := db.First(&model, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCarModelNotFound
		}
		return nil, err
	}
	return &model, nil
}

// FindModelsByBrand is the server side of the brand->model cascade:
// the read is always brand-scoped, so a brand change can never leave a
// stale model selection behind.
func (r *CatalogRepositoryImpl) FindModelsByBrand(db *gorm.DB, brandID string) ([]models.CarModel, error) {
	var carModels []models.CarModel
	err := db.Where("brand_id = ?", brandID).Order("name ASC").Find(&carModels).Error
	return carModels, err
}
