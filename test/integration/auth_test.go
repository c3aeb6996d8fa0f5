package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"wagenmarkt_backend/internal/models"
	"wagenmarkt_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	body := map[string]interface{}{
		"email":     "hans@example.com",
		"password":  "password123",
		"full_name": "Hans Müller",
		"phone":     "+49 151 1234567",
	}

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/register", "", body)
	assert.Equal(t, http.StatusCreated, res.StatusCode, bodyStr)

	// The registration creates the user together with its profile.
	var user models.User
	err := ts.DB.Where("email = ?", "hans@example.com").First(&user).Error
	require.NoError(t, err)
	assert.Equal(t, models.UserRoleUser, user.Role)
	assert.Equal(t, models.UserStatusActive, user.Status)

	var profile models.Profile
	err = ts.DB.First(&profile, "id = ?", user.ID).Error
	require.NoError(t, err)
	assert.Equal(t, "Hans Müller", profile.FullName)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	body := map[string]interface{}{
		"email":    "dupe@example.com",
		"password": "password123",
	}

	res, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/register", "", body)
	assert.Equal(t, http.StatusCreated, res.StatusCode)

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/register", "", body)
	assert.Equal(t, http.StatusConflict, res.StatusCode, bodyStr)
}

func TestRegisterWeakPassword(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	body := map[string]interface{}{
		"email":    "weak@example.com",
		"password": "short",
	}

	res, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/register", "", body)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestLogin(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	token, user := helpers.CreateAndLoginUser(t, ts, ts.DB, "login@example.com", "password123", models.UserRoleUser)
	assert.NotEmpty(t, token)
	assert.NotEmpty(t, user.ID)
}

func TestLoginWrongPassword(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	user := &models.User{
		Email:        "wrongpass@example.com",
		PasswordHash: "password123",
	}
	err := helpers.CreateUser(t, ts.DB, user)
	require.NoError(t, err)

	body := map[string]interface{}{
		"email":    "wrongpass@example.com",
		"password": "not-the-password",
	}

	res, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/login", "", body)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}

func TestRefreshTokenRotation(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	user := &models.User{
		Email:        "rotate@example.com",
		PasswordHash: "password123",
	}
	err := helpers.CreateUser(t, ts.DB, user)
	require.NoError(t, err)

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/login", "", map[string]interface{}{
		"email":    "rotate@example.com",
		"password": "password123",
	})
	require.Equal(t, http.StatusOK, res.StatusCode, bodyStr)

	var login struct {
		RefreshToken string `json:"refresh_token"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &login))
	require.NotEmpty(t, login.RefreshToken)

	// First refresh succeeds and returns a fresh pair.
	res, bodyStr = ts.SendRequest(t, http.MethodPost, "/api/v1/auth/refresh", "", map[string]interface{}{
		"refresh_token": login.RefreshToken,
	})
	assert.Equal(t, http.StatusOK, res.StatusCode, bodyStr)

	var refreshed struct {
		AccessToken  string `json:"access_token"`
		RefreshToken string `json:"refresh_token"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &refreshed))
	assert.NotEmpty(t, refreshed.AccessToken)
	assert.NotEqual(t, login.RefreshToken, refreshed.RefreshToken)

	// The used token is rotated out and cannot be replayed.
	res, _ = ts.SendRequest(t, http.MethodPost, "/api/v1/auth/refresh", "", map[string]interface{}{
		"refresh_token": login.RefreshToken,
	})
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}

func TestLogout(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	user := &models.User{
		Email:        "logout@example.com",
		PasswordHash: "password123",
	}
	err := helpers.CreateUser(t, ts.DB, user)
	require.NoError(t, err)

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/login", "", map[string]interface{}{
		"email":    "logout@example.com",
		"password": "password123",
	})
	require.Equal(t, http.StatusOK, res.StatusCode)

	var login struct {
		RefreshToken string `json:"refresh_token"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &login))

	res, _ = ts.SendRequest(t, http.MethodPost, "/api/v1/auth/logout", "", map[string]interface{}{
		"refresh_token": login.RefreshToken,
	})
	assert.Equal(t, http.StatusOK, res.StatusCode)

	res, _ = ts.SendRequest(t, http.MethodPost, "/api/v1/auth/refresh", "", map[string]interface{}{
		"refresh_token": login.RefreshToken,
	})
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}
