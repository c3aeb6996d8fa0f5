package handlers

import (
	"net/http"

	"wagenmarkt_backend/internal/middleware"
	"wagenmarkt_backend/internal/services"
	"wagenmarkt_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	*BaseHandler
	profileService services.ProfileService
}

func NewProfileHandler(base *BaseHandler, profileService services.ProfileService) *ProfileHandler {
	return &ProfileHandler{
		BaseHandler:    base,
		profileService: profileService,
	}
}

// RegisterRoutes wires the seller profile endpoints. Anyone can view a
// seller profile; only the owner edits their own.
func (h *ProfileHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/profiles/:id", h.GetProfile)

	me := rg.Group("/me")
	me.Use(middleware.AuthMiddleware())
	{
		me.GET("/profile", h.GetMyProfile)
		me.PUT("/profile", h.UpdateMyProfile)
	}
}

// GetProfile godoc
// @Summary Get a seller's public profile
// @Tags profiles
// @Produce json
// @Param id path string true "User id"
// @Success 200 {object} models.Profile
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /profiles/{id} [get]
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	db := h.GetDB(c)

	profile, err := h.profileService.GetProfile(db, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// GetMyProfile godoc
// @Summary Get the caller's own profile
// @Tags profiles
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.Profile
// @Router /me/profile [get]
func (h *ProfileHandler) GetMyProfile(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	profile, err := h.profileService.GetProfile(db, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// UpdateMyProfile godoc
// @Summary Update the caller's own profile
// @Tags profiles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpdateProfileRequest true "Profile data"
// @Success 200 {object} models.Profile
// @Failure 401 {object} apperrors.ErrorResponse
// @Router /me/profile [put]
func (h *ProfileHandler) UpdateMyProfile(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateProfileRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	profile, err := h.profileService.UpdateMyProfile(db, userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}
