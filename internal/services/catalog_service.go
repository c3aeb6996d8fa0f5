package services

import (
	"wagenmarkt_backend/internal/models"
	"wagenmarkt_backend/internal/repositories"
	"wagenmarkt_backend/internal/services/dto"
	"wagenmarkt_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type CatalogService interface {
	ListBrands(db *gorm.DB) ([]models.Brand, error)
	ListModels(db *gorm.DB, brandID string) ([]models.CarModel, error)
	CreateBrand(db *gorm.DB, req *dto.CreateBrandRequest) (*models.Brand, error)
	CreateModel(db *gorm.DB, req *dto.CreateModelRequest) (*models.CarModel, error)
}

type CatalogServiceImpl struct {
	catalogRepo repositories.CatalogRepository
}

func NewCatalogService(catalogRepo repositories.CatalogRepository) CatalogService {
	return &CatalogServiceImpl{catalogRepo: catalogRepo}
}

func (s *CatalogServiceImpl) ListBrands(db *gorm.DB) ([]models.Brand, error) {
	brands, err := s.catalogRepo.FindAllBrands(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return brands, nil
}

// ListModels only ever returns models of one brand; an unknown brand
// is a distinct 404.
func (s *CatalogServiceImpl) ListModels(db *gorm.DB, brandID string) ([]models.CarModel, error) {
	if _, err := s.catalogRepo.FindBrandByID(db, brandID); err != nil {
		if apperrors.Is(err, repositories.ErrBrandNotFound) {
			return nil, apperrors.ErrBrandNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	carModels, err := s.catalogRepo.FindModelsByBrand(db, brandID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return carModels, nil
}

func (s *CatalogServiceImpl) CreateBrand(db *gorm.DB, req *dto.CreateBrandRequest) (*models.Brand, error) {
	brand := &models.Brand{
		Name:    req.Name,
		LogoURL: req.LogoURL,
	}
	if err := s.catalogRepo.CreateBrand(db, brand); err != nil {
		if apperrors.Is(err, repositories.ErrBrandAlreadyExists) {
			return nil, apperrors.ErrAlreadyExists(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return brand, nil
}

func (s *CatalogServiceImpl) CreateModel(db *gorm.DB, req *dto.CreateModelRequest) (*models.CarModel, error) {
	if _, err := s.catalogRepo.FindBrandByID(db, req.BrandID); err != nil {
		if apperrors.Is(err, repositories.ErrBrandNotFound) {
			return nil, apperrors.ErrBrandNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	model := &models.CarModel{
		BrandID: req.BrandID,
		Name:    req.Name,
	}
	if err := s.catalogRepo.CreateModel(db, model); err != nil {
		if apperrors.Is(err, repositories.ErrModelAlreadyExists) {
			return nil, apperrors.ErrAlreadyExists(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return model, nil
}
