package integration_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"wagenmarkt_backend/internal/models"
	"wagenmarkt_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type listingJSON struct {
	ID           string   `json:"id"`
	SellerID     string   `json:"seller_id"`
	BrandName    string   `json:"brand_name"`
	ModelName    string   `json:"model_name"`
	Title        string   `json:"title"`
	Year         int      `json:"year"`
	Price        float64  `json:"price"`
	Mileage      int      `json:"mileage"`
	Condition    string   `json:"condition"`
	Transmission string   `json:"transmission"`
	Images       []string `json:"images"`
}

type listingListJSON struct {
	Listings []listingJSON `json:"listings"`
	Total    int64         `json:"total"`
	Page     int           `json:"page"`
	PageSize int           `json:"page_size"`
}

func TestCreateListing(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	token, _ := helpers.CreateAndLoginSeller(t, ts, ts.DB)
	brand := helpers.CreateTestBrand(t, ts.DB, "Volkswagen")
	carModel := helpers.CreateTestModel(t, ts.DB, brand.ID, "Golf")

	body := map[string]interface{}{
		"title":        "VW Golf 7, gepflegt",
		"brand_id":     brand.ID,
		"model_id":     carModel.ID,
		"year":         2021,
		"price":        15999.99,
		"mileage":      42000,
		"condition":    "used",
		"transmission": "manual",
		"color":        "grau",
		"images":       "http://a,  http://b ,",
	}

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/listings", token, body)
	require.Equal(t, http.StatusCreated, res.StatusCode, bodyStr)

	var created listingJSON
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &created))
	assert.Equal(t, 2021, created.Year)
	assert.Equal(t, 15999.99, created.Price)
	assert.Equal(t, 42000, created.Mileage)
	assert.Equal(t, "used", created.Condition)
	assert.Equal(t, "manual", created.Transmission)
	assert.Equal(t, "Volkswagen", created.BrandName)
	assert.Equal(t, "Golf", created.ModelName)
	// Separator-only and padded entries are dropped, order kept.
	assert.Equal(t, []string{"http://a", "http://b"}, created.Images)
}

func TestCreateListingRequiresAuth(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	brand := helpers.CreateTestBrand(t, ts.DB, "Opel")
	carModel := helpers.CreateTestModel(t, ts.DB, brand.ID, "Astra")

	body := map[string]interface{}{
		"title":        "Opel Astra",
		"brand_id":     brand.ID,
		"model_id":     carModel.ID,
		"year":         2019,
		"price":        9000,
		"condition":    "used",
		"transmission": "manual",
	}

	res, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/listings", "", body)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}

func TestCreateListingModelBrandMismatch(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	token, _ := helpers.CreateAndLoginSeller(t, ts, ts.DB)
	bmw := helpers.CreateTestBrand(t, ts.DB, "BMW")
	audi := helpers.CreateTestBrand(t, ts.DB, "Audi")
	audiModel := helpers.CreateTestModel(t, ts.DB, audi.ID, "A4")

	body := map[string]interface{}{
		"title":        "BMW mit Audi-Modell",
		"brand_id":     bmw.ID,
		"model_id":     audiModel.ID,
		"year":         2020,
		"price":        25000,
		"condition":    "used",
		"transmission": "automatic",
	}

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/listings", token, body)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode, bodyStr)
}

func TestCreateListingInvalidYear(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	token, _ := helpers.CreateAndLoginSeller(t, ts, ts.DB)
	brand := helpers.CreateTestBrand(t, ts.DB, "Porsche")
	carModel := helpers.CreateTestModel(t, ts.DB, brand.ID, "911")

	body := map[string]interface{}{
		"title":        "Zeitmaschine",
		"brand_id":     brand.ID,
		"model_id":     carModel.ID,
		"year":         1899,
		"price":        100000,
		"condition":    "used",
		"transmission": "manual",
	}

	res, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/listings", token, body)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestSearchFilterCombination(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	_, seller := helpers.CreateAndLoginSeller(t, ts, ts.DB)
	bmw := helpers.CreateTestBrand(t, ts.DB, "BMW")
	dreier := helpers.CreateTestModel(t, ts.DB, bmw.ID, "3er")

	helpers.CreateTestListing(t, ts.DB, seller.ID, bmw, dreier, 15000, 2018)
	match := helpers.CreateTestListing(t, ts.DB, seller.ID, bmw, dreier, 25000, 2020)
	helpers.CreateTestListing(t, ts.DB, seller.ID, bmw, dreier, 60000, 2023)

	path := fmt.Sprintf("/api/v1/listings?brand_id=%s&min_price=20000&max_price=50000", bmw.ID)
	res, bodyStr := ts.SendRequest(t, http.MethodGet, path, "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode, bodyStr)

	var list listingListJSON
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &list))
	require.Len(t, list.Listings, 1)
	assert.Equal(t, int64(1), list.Total)
	assert.Equal(t, match.ID, list.Listings[0].ID)
	assert.Equal(t, 25000.0, list.Listings[0].Price)
}

func TestSearchNoFilterNewestFirst(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	_, seller := helpers.CreateAndLoginSeller(t, ts, ts.DB)
	vw := helpers.CreateTestBrand(t, ts.DB, "Volkswagen")
	passat := helpers.CreateTestModel(t, ts.DB, vw.ID, "Passat")

	// Distinct timestamps pin the expected order.
	base := time.Now().Add(-time.Hour)
	var ids []string
	for i := 0; i < 3; i++ {
		listing := models.Listing{
			BaseModel:    models.BaseModel{CreatedAt: base.Add(time.Duration(i) * time.Minute)},
			SellerID:     seller.ID,
			BrandID:      vw.ID,
			ModelID:      passat.ID,
			Title:        fmt.Sprintf("Passat %d", i),
			Year:         2015 + i,
			Price:        10000 + float64(i)*1000,
			Mileage:      80000,
			Condition:    models.ConditionUsed,
			Transmission: models.TransmissionAutomatic,
		}
		require.NoError(t, ts.DB.Create(&listing).Error)
		ids = append(ids, listing.ID)
	}

	res, bodyStr := ts.SendRequest(t, http.MethodGet, "/api/v1/listings", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode, bodyStr)

	var list listingListJSON
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &list))
	require.Len(t, list.Listings, 3)
	assert.Equal(t, int64(3), list.Total)
	assert.Equal(t, ids[2], list.Listings[0].ID)
	assert.Equal(t, ids[1], list.Listings[1].ID)
	assert.Equal(t, ids[0], list.Listings[2].ID)
}

func TestSearchEmptyResult(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	_, seller := helpers.CreateAndLoginSeller(t, ts, ts.DB)
	opel := helpers.CreateTestBrand(t, ts.DB, "Opel")
	corsa := helpers.CreateTestModel(t, ts.DB, opel.ID, "Corsa")
	helpers.CreateTestListing(t, ts.DB, seller.ID, opel, corsa, 8000, 2016)

	res, bodyStr := ts.SendRequest(t, http.MethodGet, "/api/v1/listings?min_price=999999", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var list listingListJSON
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &list))
	assert.Empty(t, list.Listings)
	assert.Equal(t, int64(0), list.Total)
}

func TestSearchInvalidConditionFilter(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	res, _ := ts.SendRequest(t, http.MethodGet, "/api/v1/listings?condition=wrecked", "", nil)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestGetListingDetail(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	_, seller := helpers.CreateAndLoginSeller(t, ts, ts.DB)
	mercedes := helpers.CreateTestBrand(t, ts.DB, "Mercedes-Benz")
	cClass := helpers.CreateTestModel(t, ts.DB, mercedes.ID, "C-Klasse")
	listing := helpers.CreateTestListing(t, ts.DB, seller.ID, mercedes, cClass, 32000, 2021)

	res, bodyStr := ts.SendRequest(t, http.MethodGet, "/api/v1/listings/"+listing.ID, "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode, bodyStr)

	var detail struct {
		listingJSON
		Seller *struct {
			ID    string `json:"id"`
			Email string `json:"email"`
		} `json:"seller"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &detail))
	assert.Equal(t, "Mercedes-Benz", detail.BrandName)
	assert.Equal(t, "C-Klasse", detail.ModelName)
	require.NotNil(t, detail.Seller)
	assert.Equal(t, seller.ID, detail.Seller.ID)
}

func TestGetListingNotFound(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	res, _ := ts.SendRequest(t, http.MethodGet, "/api/v1/listings/b3c1a1de-0000-4000-8000-000000000000", "", nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestUpdateListingOwnerOnly(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	ownerToken, owner := helpers.CreateAndLoginSeller(t, ts, ts.DB)
	otherToken, _ := helpers.CreateAndLoginSeller(t, ts, ts.DB)

	audi := helpers.CreateTestBrand(t, ts.DB, "Audi")
	q5 := helpers.CreateTestModel(t, ts.DB, audi.ID, "Q5")
	listing := helpers.CreateTestListing(t, ts.DB, owner.ID, audi, q5, 41000, 2022)

	body := map[string]interface{}{
		"title":        "Audi Q5, Preis gesenkt",
		"brand_id":     audi.ID,
		"model_id":     q5.ID,
		"year":         2022,
		"price":        39500,
		"mileage":      30000,
		"condition":    "used",
		"transmission": "automatic",
	}

	// A stranger gets a 403, not a 404: the row exists.
	res, _ := ts.SendRequest(t, http.MethodPut, "/api/v1/listings/"+listing.ID, otherToken, body)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)

	res, bodyStr := ts.SendRequest(t, http.MethodPut, "/api/v1/listings/"+listing.ID, ownerToken, body)
	require.Equal(t, http.StatusOK, res.StatusCode, bodyStr)

	var updated listingJSON
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &updated))
	assert.Equal(t, 39500.0, updated.Price)
	assert.Equal(t, "Audi Q5, Preis gesenkt", updated.Title)
}

func TestDeleteListingOwnerOnly(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	ownerToken, owner := helpers.CreateAndLoginSeller(t, ts, ts.DB)
	otherToken, _ := helpers.CreateAndLoginSeller(t, ts, ts.DB)

	bmw := helpers.CreateTestBrand(t, ts.DB, "BMW")
	x3 := helpers.CreateTestModel(t, ts.DB, bmw.ID, "X3")
	listing := helpers.CreateTestListing(t, ts.DB, owner.ID, bmw, x3, 28000, 2019)

	res, _ := ts.SendRequest(t, http.MethodDelete, "/api/v1/listings/"+listing.ID, otherToken, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)

	res, _ = ts.SendRequest(t, http.MethodDelete, "/api/v1/listings/"+listing.ID, ownerToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	res, _ = ts.SendRequest(t, http.MethodGet, "/api/v1/listings/"+listing.ID, "", nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestListMyListings(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	token, seller := helpers.CreateAndLoginSeller(t, ts, ts.DB)
	_, other := helpers.CreateAndLoginSeller(t, ts, ts.DB)

	opel := helpers.CreateTestBrand(t, ts.DB, "Opel")
	mokka := helpers.CreateTestModel(t, ts.DB, opel.ID, "Mokka")
	mine := helpers.CreateTestListing(t, ts.DB, seller.ID, opel, mokka, 19000, 2021)
	helpers.CreateTestListing(t, ts.DB, other.ID, opel, mokka, 18000, 2020)

	res, bodyStr := ts.SendRequest(t, http.MethodGet, "/api/v1/my/listings", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, bodyStr)

	var listings []listingJSON
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &listings))
	require.Len(t, listings, 1)
	assert.Equal(t, mine.ID, listings[0].ID)
}
