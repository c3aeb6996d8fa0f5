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

type brandJSON struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type modelJSON struct {
	ID      string `json:"id"`
	BrandID string `json:"brand_id"`
	Name    string `json:"name"`
}

func loginAdmin(t *testing.T, ts *helpers.TestServer) string {
	email := fmt.Sprintf("admin_%d@test.com", time.Now().UnixNano())
	token, _ := helpers.CreateAndLoginUser(t, ts, ts.DB, email, "password123", models.UserRoleAdmin)
	return token
}

func TestListBrandsSorted(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	helpers.CreateTestBrand(t, ts.DB, "Volkswagen")
	helpers.CreateTestBrand(t, ts.DB, "Audi")
	helpers.CreateTestBrand(t, ts.DB, "Porsche")

	res, bodyStr := ts.SendRequest(t, http.MethodGet, "/api/v1/brands", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode, bodyStr)

	var brands []brandJSON
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &brands))
	require.Len(t, brands, 3)
	assert.Equal(t, "Audi", brands[0].Name)
	assert.Equal(t, "Porsche", brands[1].Name)
	assert.Equal(t, "Volkswagen", brands[2].Name)
}

func TestListModelsScopedToBrand(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	bmw := helpers.CreateTestBrand(t, ts.DB, "BMW")
	audi := helpers.CreateTestBrand(t, ts.DB, "Audi")
	helpers.CreateTestModel(t, ts.DB, bmw.ID, "X5")
	helpers.CreateTestModel(t, ts.DB, bmw.ID, "3er")
	helpers.CreateTestModel(t, ts.DB, audi.ID, "A6")

	res, bodyStr := ts.SendRequest(t, http.MethodGet, "/api/v1/brands/"+bmw.ID+"/models", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode, bodyStr)

	var carModels []modelJSON
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &carModels))
	require.Len(t, carModels, 2)
	for _, m := range carModels {
		assert.Equal(t, bmw.ID, m.BrandID)
	}
}

func TestListModelsUnknownBrand(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	res, _ := ts.SendRequest(t, http.MethodGet, "/api/v1/brands/b3c1a1de-0000-4000-8000-000000000000/models", "", nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestAdminCreateBrand(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	adminToken := loginAdmin(t, ts)

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/admin/brands", adminToken, map[string]interface{}{
		"name": "Mercedes-Benz",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, bodyStr)

	var brand brandJSON
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &brand))
	assert.Equal(t, "Mercedes-Benz", brand.Name)
	assert.NotEmpty(t, brand.ID)

	// Names are unique.
	res, _ = ts.SendRequest(t, http.MethodPost, "/api/v1/admin/brands", adminToken, map[string]interface{}{
		"name": "Mercedes-Benz",
	})
	assert.Equal(t, http.StatusConflict, res.StatusCode)
}

func TestCreateBrandForbiddenForUsers(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	userToken, _ := helpers.CreateAndLoginSeller(t, ts, ts.DB)

	res, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/admin/brands", userToken, map[string]interface{}{
		"name": "Trabant",
	})
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
}

func TestAdminCreateModel(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	adminToken := loginAdmin(t, ts)
	brand := helpers.CreateTestBrand(t, ts.DB, "Porsche")

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/admin/models", adminToken, map[string]interface{}{
		"brand_id": brand.ID,
		"name":     "Taycan",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, bodyStr)

	var carModel modelJSON
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &carModel))
	assert.Equal(t, brand.ID, carModel.BrandID)
	assert.Equal(t, "Taycan", carModel.Name)
}

func TestAdminCreateModelUnknownBrand(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	adminToken := loginAdmin(t, ts)

	res, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/admin/models", adminToken, map[string]interface{}{
		"brand_id": "b3c1a1de-0000-4000-8000-000000000000",
		"name":     "Phantom",
	})
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}
