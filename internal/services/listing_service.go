package services

import (
	"wagenmarkt_backend/internal/models"
	"wagenmarkt_backend/internal/repositories"
	"wagenmarkt_backend/internal/services/dto"
	"wagenmarkt_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type ListingService interface {
	Search(db *gorm.DB, filter repositories.ListingFilter) (*dto.ListingListResponse, error)
	GetByID(db *gorm.DB, id string) (*dto.ListingDetailResponse, error)
	Create(db *gorm.DB, req *dto.CreateListingRequest) (*dto.ListingResponse, error)
	Update(db *gorm.DB, id, requesterID string, req *dto.UpdateListingRequest) (*dto.ListingResponse, error)
	Delete(db *gorm.DB, id, requesterID string) error
	ListBySeller(db *gorm.DB, sellerID string) ([]dto.ListingResponse, error)
}

type ListingServiceImpl struct {
	listingRepo repositories.ListingRepository
	catalogRepo repositories.CatalogRepository
}

func NewListingService(
	listingRepo repositories.ListingRepository,
	catalogRepo repositories.CatalogRepository,
) ListingService {
	return &ListingServiceImpl{
		listingRepo: listingRepo,
		catalogRepo: catalogRepo,
	}
}

// Search runs the filtered listing read. An empty result is a valid
// outcome, not an error.
func (s *ListingServiceImpl) Search(db *gorm.DB, filter repositories.ListingFilter) (*dto.ListingListResponse, error) {
	if filter.Condition != "" && !models.Condition(filter.Condition).Valid() {
		return nil, apperrors.NewBadRequestError("Invalid condition filter")
	}
	if filter.Transmission != "" && !models.Transmission(filter.Transmission).Valid() {
		return nil, apperrors.NewBadRequestError("Invalid transmission filter")
	}

	listings, total, err := s.listingRepo.FindWithFilter(db, filter)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := &dto.ListingListResponse{
		Listings: make([]dto.ListingResponse, 0, len(listings)),
		Total:    total,
		Page:     filter.Page,
		PageSize: filter.PageSize,
	}
	for i := range listings {
		resp.Listings = append(resp.Listings, dto.NewListingResponse(&listings[i]))
	}
	return resp, nil
}

func (s *ListingServiceImpl) GetByID(db *gorm.DB, id string) (*dto.ListingDetailResponse, error) {
	listing, err := s.listingRepo.FindByID(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrListingNotFound) {
			return nil, apperrors.ErrListingNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	resp := &dto.ListingDetailResponse{
		ListingResponse: dto.NewListingResponse(listing),
	}
	if listing.Seller != nil {
		resp.Seller = &dto.SellerInfo{
			ID:       listing.Seller.ID,
			FullName: listing.Seller.FullName,
			Email:    listing.Seller.Email,
		}
	}
	return resp, nil
}

// Create inserts a listing for the authenticated seller. The brand and
// model references are re-validated here so a listing can never point
// at a model of a different brand, whatever the client sent.
func (s *ListingServiceImpl) Create(db *gorm.DB, req *dto.CreateListingRequest) (*dto.ListingResponse, error) {
	if err := s.checkModelBelongsToBrand(db, req.BrandID, req.ModelID); err != nil {
		return nil, err
	}

	listing := &models.Listing{
		SellerID:     req.SellerID,
		BrandID:      req.BrandID,
		ModelID:      req.ModelID,
		Title:        req.Title,
		Description:  req.Description,
		Year:         req.Year,
		Price:        req.Price,
		Mileage:      req.Mileage,
		Condition:    models.Condition(req.Condition),
		Transmission: models.Transmission(req.Transmission),
		Color:        req.Color,
		VIN:          req.VIN,
	}
	listing.SetImages(dto.SplitImageList(req.Images))

	if err := s.listingRepo.Create(db, listing); err != nil {
		return nil, apperrors.InternalError(err)
	}

	created, err := s.listingRepo.FindByID(db, listing.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	resp := dto.NewListingResponse(created)
	return &resp, nil
}

func (s *ListingServiceImpl) Update(db *gorm.DB, id, requesterID string, req *dto.UpdateListingRequest) (*dto.ListingResponse, error) {
	listing, err := s.findOwned(db, id, requesterID)
	if err != nil {
		return nil, err
	}

	if err := s.checkModelBelongsToBrand(db, req.BrandID, req.ModelID); err != nil {
		return nil, err
	}

	listing.BrandID = req.BrandID
	listing.ModelID = req.ModelID
	listing.Title = req.Title
	listing.Description = req.Description
	listing.Year = req.Year
	listing.Price = req.Price
	listing.Mileage = req.Mileage
	listing.Condition = models.Condition(req.Condition)
	listing.Transmission = models.Transmission(req.Transmission)
	listing.Color = req.Color
	listing.VIN = req.VIN
	listing.SetImages(dto.SplitImageList(req.Images))

	if err := s.listingRepo.Update(db, listing); err != nil {
		return nil, apperrors.InternalError(err)
	}

	updated, err := s.listingRepo.FindByID(db, id)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	resp := dto.NewListingResponse(updated)
	return &resp, nil
}

func (s *ListingServiceImpl) Delete(db *gorm.DB, id, requesterID string) error {
	if _, err := s.findOwned(db, id, requesterID); err != nil {
		return err
	}
	if err := s.listingRepo.Delete(db, id); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *ListingServiceImpl) ListBySeller(db *gorm.DB, sellerID string) ([]dto.ListingResponse, error) {
	listings, err := s.listingRepo.ListBySeller(db, sellerID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := make([]dto.ListingResponse, 0, len(listings))
	for i := range listings {
		resp = append(resp, dto.NewListingResponse(&listings[i]))
	}
	return resp, nil
}

// findOwned loads a listing and enforces the owner-only write rule.
func (s *ListingServiceImpl) findOwned(db *gorm.DB, id, requesterID string) (*models.Listing, error) {
	listing, err := s.listingRepo.FindByID(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrListingNotFound) {
			return nil, apperrors.ErrListingNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	if listing.SellerID != requesterID {
		return nil, apperrors.ErrNotListingOwner
	}
	return listing, nil
}

func (s *ListingServiceImpl) checkModelBelongsToBrand(db *gorm.DB, brandID, modelID string) error {
	if _, err := s.catalogRepo.FindBrandByID(db, brandID); err != nil {
		if apperrors.Is(err, repositories.ErrBrandNotFound) {
			return apperrors.ErrBrandNotFound
		}
		return apperrors.InternalError(err)
	}

	carModel, err := s.catalogRepo.FindModelByID(db, modelID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrCarModelNotFound) {
			return apperrors.ErrModelNotFound
		}
		return apperrors.InternalError(err)
	}

	if carModel.BrandID != brandID {
		return apperrors.ErrModelBrandMismatch
	}
	return nil
}
