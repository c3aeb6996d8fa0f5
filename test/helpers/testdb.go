package helpers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	"wagenmarkt_backend/internal/models"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// CreateUser inserts a user, hashing the password if it arrives raw.
func CreateUser(t *testing.T, db *gorm.DB, user *models.User) error {
	if user.PasswordHash != "" && !strings.HasPrefix(user.PasswordHash, "$2a$") {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.PasswordHash), bcrypt.DefaultCost)
		if err != nil {
			t.Fatalf("failed to hash password: %v", err)
		}
		user.PasswordHash = string(hashedPassword)
	}

	if user.Status == "" {
		user.Status = models.UserStatusActive
	}
	if user.Role == "" {
		user.Role = models.UserRoleUser
	}

	if err := db.Create(user).Error; err != nil {
		t.Logf("failed to create user %s: %v", user.Email, err)
		return err
	}

	profile := &models.Profile{
		ID:    user.ID,
		Email: user.Email,
	}
	return db.Create(profile).Error
}

// CreateAndLoginUser inserts a user and logs in through the API,
// returning a usable access token.
func CreateAndLoginUser(t *testing.T, ts *TestServer, db *gorm.DB, email, password string, role models.UserRole) (string, *models.User) {
	user := &models.User{
		Email:        email,
		PasswordHash: password,
		Role:         role,
	}
	err := CreateUser(t, db, user)
	require.NoError(t, err, "creating a test user must not fail")

	loginBody := map[string]interface{}{
		"email":    email,
		"password": password,
	}

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/login", "", loginBody)
	require.Equal(t, http.StatusOK, res.StatusCode, "login must succeed, got: "+bodyStr)

	var loginResponse struct {
		Token string `json:"access_token"`
	}
	err = json.Unmarshal([]byte(bodyStr), &loginResponse)
	require.NoError(t, err)
	require.NotEmpty(t, loginResponse.Token)

	user.PasswordHash = password

	return loginResponse.Token, user
}

// CreateAndLoginSeller creates a seller with a unique email.
func CreateAndLoginSeller(t *testing.T, ts *TestServer, db *gorm.DB) (string, *models.User) {
	email := fmt.Sprintf("seller_%d@test.com", time.Now().UnixNano())
	return CreateAndLoginUser(t, ts, db, email, "password123", models.UserRoleUser)
}

// CreateTestBrand inserts a brand directly.
func CreateTestBrand(t *testing.T, db *gorm.DB, name string) models.Brand {
	brand := models.Brand{Name: name}
	if err := db.Create(&brand).Error; err != nil {
		t.Fatalf("failed to create test brand: %v", err)
	}
	return brand
}

// CreateTestModel inserts a model under a brand directly.
func CreateTestModel(t *testing.T, db *gorm.DB, brandID, name string) models.CarModel {
	carModel := models.CarModel{BrandID: brandID, Name: name}
	if err := db.Create(&carModel).Error; err != nil {
		t.Fatalf("failed to create test model: %v", err)
	}
	return carModel
}

// CreateTestListing inserts a listing row directly, bypassing the API.
func CreateTestListing(t *testing.T, db *gorm.DB, sellerID string, brand models.Brand, carModel models.CarModel, price float64, year int) models.Listing {
	listing := models.Listing{
		SellerID:     sellerID,
		BrandID:      brand.ID,
		ModelID:      carModel.ID,
		Title:        fmt.Sprintf("%s %s", brand.Name, carModel.Name),
		Year:         year,
		Price:        price,
		Mileage:      50000,
		Condition:    models.ConditionUsed,
		Transmission: models.TransmissionManual,
	}
	if err := db.Create(&listing).Error; err != nil {
		t.Fatalf("failed to create test listing: %v", err)
	}
	return listing
}
