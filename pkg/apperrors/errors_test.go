package apperrors

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	appErr := Wrap(cause, CodeDatabaseError, "storage", "Query failed", http.StatusInternalServerError)

	assert.ErrorIs(t, appErr, cause)
	assert.Equal(t, cause, appErr.Unwrap())
}

func TestAsFindsAppError(t *testing.T) {
	inner := New(CodeNotFound, "listing", "Listing not found", http.StatusNotFound)

	var appErr *AppError
	require.True(t, As(inner, &appErr))
	assert.Equal(t, CodeNotFound, appErr.Code)
	assert.Equal(t, http.StatusNotFound, appErr.HTTPCode)
}

func TestMarshalHidesInternals(t *testing.T) {
	appErr := Wrap(errors.New("secret driver detail"), CodeInternalError, "system", "Internal server error", http.StatusInternalServerError)

	data, err := json.Marshal(appErr)
	require.NoError(t, err)

	assert.NotContains(t, string(data), "secret driver detail")
	assert.NotContains(t, string(data), "500")
	assert.Contains(t, string(data), "Internal server error")
}

func TestValidationErrorDetails(t *testing.T) {
	appErr := ValidationError(map[string]string{"year": "Must be between 1900 and the current year"})

	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode)

	data, err := json.Marshal(appErr)
	require.NoError(t, err)
	assert.Contains(t, string(data), "year")
}
