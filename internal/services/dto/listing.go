package dto

import (
	"strings"
	"time"

	"wagenmarkt_backend/internal/models"
)

// CreateListingRequest is the typed creation payload. The seller is
// never part of the body; it is derived from the authenticated
// identity by the handler.
type CreateListingRequest struct {
	Title        string  `json:"title" validate:"required,max=200"`
	BrandID      string  `json:"brand_id" validate:"required,uuid"`
	ModelID      string  `json:"model_id" validate:"required,uuid"`
	Year         int     `json:"year" validate:"required,model-year"`
	Price        float64 `json:"price" validate:"required,gt=0"`
	Mileage      int     `json:"mileage" validate:"gte=0"`
	Condition    string  `json:"condition" validate:"required,is-condition"`
	Transmission string  `json:"transmission" validate:"required,is-transmission"`
	Color        string  `json:"color" validate:"max=50"`
	VIN          string  `json:"vin" validate:"max=17"`
	Description  string  `json:"description"`
	Images       string  `json:"images"` // comma-separated URL list

	SellerID string `json:"-"`
}

type UpdateListingRequest struct {
	Title        string  `json:"title" validate:"required,max=200"`
	BrandID      string  `json:"brand_id" validate:"required,uuid"`
	ModelID      string  `json:"model_id" validate:"required,uuid"`
	Year         int     `json:"year" validate:"required,model-year"`
	Price        float64 `json:"price" validate:"required,gt=0"`
	Mileage      int     `json:"mileage" validate:"gte=0"`
	Condition    string  `json:"condition" validate:"required,is-condition"`
	Transmission string  `json:"transmission" validate:"required,is-transmission"`
	Color        string  `json:"color" validate:"max=50"`
	VIN          string  `json:"vin" validate:"max=17"`
	Description  string  `json:"description"`
	Images       string  `json:"images"`
}

type ListingResponse struct {
	ID           string              `json:"id"`
	SellerID     string              `json:"seller_id"`
	BrandID      string              `json:"brand_id"`
	BrandName    string              `json:"brand_name"`
	ModelID      string              `json:"model_id"`
	ModelName    string              `json:"model_name"`
	Title        string              `json:"title"`
	Description  string              `json:"description,omitempty"`
	Year         int                 `json:"year"`
	Price        float64             `json:"price"`
	Mileage      int                 `json:"mileage"`
	Condition    models.Condition    `json:"condition"`
	Transmission models.Transmission `json:"transmission"`
	Color        string              `json:"color,omitempty"`
	VIN          string              `json:"vin,omitempty"`
	Images       []string            `json:"images"`
	CreatedAt    time.Time           `json:"created_at"`
	UpdatedAt    time.Time           `json:"updated_at"`
}

// SellerInfo is the seller block of the detail view.
type SellerInfo struct {
	ID       string `json:"id"`
	FullName string `json:"full_name,omitempty"`
	Email    string `json:"email"`
}

type ListingDetailResponse struct {
	ListingResponse
	Seller *SellerInfo `json:"seller,omitempty"`
}

type ListingListResponse struct {
	Listings []ListingResponse `json:"listings"`
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	PageSize int               `json:"page_size"`
}

// SplitImageList turns the comma-separated image field into an ordered
// URL list. Entries are trimmed and empty ones dropped, so a value of
// only separators yields an empty list, not an error.
func SplitImageList(raw string) []string {
	images := []string{}
	for _, part := range strings.Split(raw, ",") {
		if url := strings.TrimSpace(part); url != "" {
			images = append(images, url)
		}
	}
	return images
}

// NewListingResponse maps a listing row (with preloaded brand/model)
// to its wire form.
func NewListingResponse(l *models.Listing) ListingResponse {
	resp := ListingResponse{
		ID:           l.ID,
		SellerID:     l.SellerID,
		BrandID:      l.BrandID,
		ModelID:      l.ModelID,
		Title:        l.Title,
		Description:  l.Description,
		Year:         l.Year,
		Price:        l.Price,
		Mileage:      l.Mileage,
		Condition:    l.Condition,
		Transmission: l.Transmission,
		Color:        l.Color,
		VIN:          l.VIN,
		Images:       l.GetImages(),
		CreatedAt:    l.CreatedAt,
		UpdatedAt:    l.UpdatedAt,
	}
	if l.Brand != nil {
		resp.BrandName = l.Brand.Name
	}
	if l.CarModel != nil {
		resp.ModelName = l.CarModel.Name
	}
	return resp
}
