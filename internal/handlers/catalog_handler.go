package handlers

import (
	"net/http"

	"wagenmarkt_backend/internal/middleware"
	"wagenmarkt_backend/internal/models"
	"wagenmarkt_backend/internal/services"
	"wagenmarkt_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	*BaseHandler
	catalogService services.CatalogService
}

func NewCatalogHandler(base *BaseHandler, catalogService services.CatalogService) *CatalogHandler {
	return &CatalogHandler{
		BaseHandler:    base,
		catalogService: catalogService,
	}
}

// RegisterRoutes wires the brand and model endpoints. Reads are public,
// catalog writes are an admin concern.
func (h *CatalogHandler) RegisterRoutes(rg *gin.RouterGroup) {
	brands := rg.Group("/brands")
	{
		brands.GET("", h.ListBrands)
		brands.GET("/:id/models", h.ListModels)
	}

	admin := rg.Group("/admin")
	admin.Use(middleware.AuthMiddleware())
	admin.Use(middleware.RequireRoles(models.UserRoleAdmin))
	{
		admin.POST("/brands", h.CreateBrand)
		admin.POST("/models", h.CreateModel)
	}
}

// ListBrands godoc
// @Summary List all car brands
// @Tags catalog
// @Produce json
// @Success 200 {array} models.Brand
// @Router /brands [get]
func (h *CatalogHandler) ListBrands(c *gin.Context) {
	db := h.GetDB(c)

	brands, err := h.catalogService.ListBrands(db)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, brands)
}

// ListModels godoc
// @Summary List the models of one brand
// @Description Returns only models belonging to the given brand, for dependent brand/model pickers
// @Tags catalog
// @Produce json
// @Param id path string true "Brand id"
// @Success 200 {array} models.CarModel
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /brands/{id}/models [get]
func (h *CatalogHandler) ListModels(c *gin.Context) {
	db := h.GetDB(c)

	carModels, err := h.catalogService.ListModels(db, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, carModels)
}

// CreateBrand godoc
// @Summary Add a brand to the catalog
// @Tags catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateBrandRequest true "Brand data"
// @Success 201 {object} models.Brand
// @Failure 409 {object} apperrors.ErrorResponse
// @Router /admin/brands [post]
func (h *CatalogHandler) CreateBrand(c *gin.Context) {
	var req dto.CreateBrandRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	brand, err := h.catalogService.CreateBrand(db, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, brand)
}

// CreateModel godoc
// @Summary Add a model under an existing brand
// @Tags catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateModelRequest true "Model data"
// @Success 201 {object} models.CarModel
// @Failure 404 {object} apperrors.ErrorResponse
// @Failure 409 {object} apperrors.ErrorResponse
// @Router /admin/models [post]
func (h *CatalogHandler) CreateModel(c *gin.Context) {
	var req dto.CreateModelRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	carModel, err := h.catalogService.CreateModel(db, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, carModel)
}
