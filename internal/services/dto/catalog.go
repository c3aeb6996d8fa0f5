package dto

type CreateBrandRequest struct {
	Name    string `json:"name" validate:"required,max=100"`
	LogoURL string `json:"logo_url" validate:"omitempty,url"`
}

type CreateModelRequest struct {
	BrandID string `json:"brand_id" validate:"required,uuid"`
	Name    string `json:"name" validate:"required,max=100"`
}
