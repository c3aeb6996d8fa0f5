package dto

type UpdateProfileRequest struct {
	FullName string `json:"full_name" validate:"max=120"`
	Phone    string `json:"phone" validate:"max=32"`
}
