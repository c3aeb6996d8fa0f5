package dto

import (
	"testing"

	"wagenmarkt_backend/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestSplitImageList(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want []string
	}{
		{"empty", "", []string{}},
		{"single", "http://a", []string{"http://a"}},
		{"padded entries and trailing separator", "http://a,  http://b ,", []string{"http://a", "http://b"}},
		{"separators only", ", , ,", []string{}},
		{"order preserved", "http://c,http://a,http://b", []string{"http://c", "http://a", "http://b"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, SplitImageList(tc.in))
		})
	}
}

func TestNewListingResponse(t *testing.T) {
	listing := &models.Listing{
		BaseModel:    models.BaseModel{ID: "listing-1"},
		SellerID:     "seller-1",
		BrandID:      "brand-1",
		ModelID:      "model-1",
		Title:        "BMW 3er",
		Year:         2020,
		Price:        25000,
		Mileage:      30000,
		Condition:    models.ConditionUsed,
		Transmission: models.TransmissionAutomatic,
		Brand:        &models.Brand{Name: "BMW"},
		CarModel:     &models.CarModel{Name: "3er"},
	}
	listing.SetImages([]string{"http://a", "http://b"})

	resp := NewListingResponse(listing)
	assert.Equal(t, "BMW", resp.BrandName)
	assert.Equal(t, "3er", resp.ModelName)
	assert.Equal(t, []string{"http://a", "http://b"}, resp.Images)
	assert.Equal(t, 25000.0, resp.Price)
}

func TestNewListingResponseWithoutPreloads(t *testing.T) {
	listing := &models.Listing{
		BaseModel: models.BaseModel{ID: "listing-2"},
		Title:     "Ohne Relationen",
	}

	resp := NewListingResponse(listing)
	assert.Empty(t, resp.BrandName)
	assert.Empty(t, resp.ModelName)
	assert.Empty(t, resp.Images)
}
