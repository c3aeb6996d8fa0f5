package apperrors

import (
	"net/http"
)

// Factories and predefined errors for the marketplace domain.

// ErrNotFound converts a repository miss (gorm.ErrRecordNotFound and
// friends) into a distinct 404.
func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

// ErrAlreadyExists converts a uniqueness violation into a 409.
func ErrAlreadyExists(err error) *AppError {
	return Wrap(err, CodeAlreadyExists, "resource", "Resource already exists", http.StatusConflict)
}

// ErrInvalidOperation builds a 400 for operations the domain forbids.
func ErrInvalidOperation(domain, message string) *AppError {
	return New(CodeInvalidOperation, domain, message, http.StatusBadRequest)
}

// --- Authentication ---

var (
	ErrInvalidCredentials = New(CodeInvalidCredentials, "auth", "Invalid email or password", http.StatusUnauthorized)
	ErrInvalidToken       = New(CodeInvalidToken, "auth", "Invalid or expired token", http.StatusUnauthorized)
	ErrEmailAlreadyExists = New(CodeAlreadyExists, "auth", "Email already exists", http.StatusConflict)
	ErrWeakPassword       = New(CodeValidationFailed, "auth", "Password must be at least 8 characters", http.StatusBadRequest)
)

// --- Catalog ---

var (
	ErrBrandNotFound      = New(CodeNotFound, "catalog", "Brand not found", http.StatusNotFound)
	ErrModelNotFound      = New(CodeNotFound, "catalog", "Model not found", http.StatusNotFound)
	ErrModelBrandMismatch = New(CodeInvalidOperation, "catalog", "Model does not belong to the selected brand", http.StatusBadRequest)
)

// --- Listings ---

var (
	ErrListingNotFound = New(CodeNotFound, "listing", "Listing not found", http.StatusNotFound)
	ErrNotListingOwner = New(CodeForbidden, "listing", "Only the seller may modify this listing", http.StatusForbidden)
)

// --- Profiles ---

var (
	ErrProfileNotFound = New(CodeNotFound, "profile", "Profile not found", http.StatusNotFound)
)
