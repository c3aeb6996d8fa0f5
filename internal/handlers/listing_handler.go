package handlers

import (
	"net/http"

	"wagenmarkt_backend/internal/middleware"
	"wagenmarkt_backend/internal/repositories"
	"wagenmarkt_backend/internal/services"
	"wagenmarkt_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ListingHandler struct {
	*BaseHandler
	listingService services.ListingService
}

func NewListingHandler(base *BaseHandler, listingService services.ListingService) *ListingHandler {
	return &ListingHandler{
		BaseHandler:    base,
		listingService: listingService,
	}
}

// RegisterRoutes wires the listing endpoints onto /api/v1. Reads are
// public, writes require a token.
func (h *ListingHandler) RegisterRoutes(rg *gin.RouterGroup) {
	listings := rg.Group("/listings")
	{
		listings.GET("", h.Search)
		listings.GET("/:id", h.GetByID)
	}

	protected := rg.Group("/listings")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.POST("", h.Create)
		protected.PUT("/:id", h.Update)
		protected.DELETE("/:id", h.Delete)
	}

	my := rg.Group("/my")
	my.Use(middleware.AuthMiddleware())
	{
		my.GET("/listings", h.ListMine)
	}
}

// Search godoc
// @Summary Browse listings with optional filters
// @Description All filters combine conjunctively; an absent filter adds no predicate
// @Tags listings
// @Produce json
// @Param brand_id query string false "Brand id"
// @Param model_id query string false "Model id"
// @Param min_price query number false "Minimum price"
// @Param max_price query number false "Maximum price"
// @Param min_year query int false "Minimum model year"
// @Param max_year query int false "Maximum model year"
// @Param min_mileage query int false "Minimum mileage"
// @Param max_mileage query int false "Maximum mileage"
// @Param condition query string false "Condition" Enums(new, used, certified)
// @Param transmission query string false "Transmission" Enums(automatic, manual)
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} dto.ListingListResponse
// @Failure 400 {object} apperrors.ErrorResponse
// @Router /listings [get]
func (h *ListingHandler) Search(c *gin.Context) {
	var filter repositories.ListingFilter
	if !h.BindAndValidate_Query(c, &filter) {
		return
	}
	filter.Page, filter.PageSize = ParsePagination(c)

	db := h.GetDB(c)

	response, err := h.listingService.Search(db, filter)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// GetByID godoc
// @Summary Get one listing with its seller info
// @Tags listings
// @Produce json
// @Param id path string true "Listing id"
// @Success 200 {object} dto.ListingDetailResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /listings/{id} [get]
func (h *ListingHandler) GetByID(c *gin.Context) {
	db := h.GetDB(c)

	response, err := h.listingService.GetByID(db, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// Create godoc
// @Summary Publish a new listing
// @Description The authenticated user becomes the seller
// @Tags listings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateListingRequest true "Listing data"
// @Success 201 {object} dto.ListingResponse
// @Failure 400 {object} apperrors.ErrorResponse
// @Failure 401 {object} apperrors.ErrorResponse
// @Router /listings [post]
func (h *ListingHandler) Create(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateListingRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}
	req.SellerID = userID

	db := h.GetDB(c)

	response, err := h.listingService.Create(db, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response)
}

// Update godoc
// @Summary Update an owned listing
// @Tags listings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Listing id"
// @Param request body dto.UpdateListingRequest true "New listing data"
// @Success 200 {object} dto.ListingResponse
// @Failure 403 {object} apperrors.ErrorResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /listings/{id} [put]
func (h *ListingHandler) Update(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateListingRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	response, err := h.listingService.Update(db, c.Param("id"), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// Delete godoc
// @Summary Delete an owned listing
// @Tags listings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Listing id"
// @Success 200 {object} map[string]string
// @Failure 403 {object} apperrors.ErrorResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /listings/{id} [delete]
func (h *ListingHandler) Delete(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	if err := h.listingService.Delete(db, c.Param("id"), userID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Listing deleted",
	})
}

// ListMine godoc
// @Summary List the caller's own listings
// @Tags listings
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.ListingResponse
// @Router /my/listings [get]
func (h *ListingHandler) ListMine(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	listings, err := h.listingService.ListBySeller(db, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, listings)
}
