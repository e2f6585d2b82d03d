package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/CRLTS-SNOW/ECO-ENERGY-EV1-BACKEND-INACAPLS/internal/dto"
	"github.com/CRLTS-SNOW/ECO-ENERGY-EV1-BACKEND-INACAPLS/internal/service"
	"github.com/CRLTS-SNOW/ECO-ENERGY-EV1-BACKEND-INACAPLS/pkg/response"
)

// CatalogHandler handles category and zone HTTP requests
type CatalogHandler struct {
	tenantService  service.TenantService
	catalogService service.CatalogService
}

// NewCatalogHandler creates a new CatalogHandler
func NewCatalogHandler(tenantService service.TenantService, catalogService service.CatalogService) *CatalogHandler {
	return &CatalogHandler{
		tenantService:  tenantService,
		catalogService: catalogService,
	}
}

// ListCategories handles GET /api/v1/categories
func (h *CatalogHandler) ListCategories(c *gin.Context) {
	org, err := resolveOrg(c, h.tenantService)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.InternalError(err.Error()))
		return
	}

	result, err := h.catalogService.ListCategories(c.Request.Context(), org)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.InternalError(err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.Success(result))
}

// CreateCategory handles POST /api/v1/categories
func (h *CatalogHandler) CreateCategory(c *gin.Context) {
	var req dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}

	org, err := resolveOrg(c, h.tenantService)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.InternalError(err.Error()))
		return
	}

	result, err := h.catalogService.CreateCategory(c.Request.Context(), org, &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrOrganizationNotFound):
			c.JSON(http.StatusNotFound, response.NotFound("Organization not found"))
		case errors.Is(err, service.ErrCategoryExists):
			c.JSON(http.StatusConflict, response.Error(response.ErrCodeDuplicateEntry, "Category with this name already exists"))
		default:
			c.JSON(http.StatusInternalServerError, response.InternalError(err.Error()))
		}
		return
	}
	c.JSON(http.StatusCreated, response.Success(result))
}

// DeleteCategory handles DELETE /api/v1/categories/:id. Deletion is refused
// while live devices reference the category.
func (h *CatalogHandler) DeleteCategory(c *gin.Context) {
	if err := h.catalogService.DeleteCategory(c.Request.Context(), c.Param("id")); err != nil {
		switch {
		case errors.Is(err, service.ErrCategoryNotFound):
			c.JSON(http.StatusNotFound, response.NotFound("Category not found"))
		case errors.Is(err, service.ErrCategoryInUse):
			c.JSON(http.StatusConflict, response.Error(response.ErrCodeReferenceInUse, "Category is referenced by live devices"))
		default:
			c.JSON(http.StatusInternalServerError, response.InternalError(err.Error()))
		}
		return
	}
	c.JSON(http.StatusOK, response.Success(gin.H{"message": "Category deleted successfully"}))
}

// ListZones handles GET /api/v1/zones
func (h *CatalogHandler) ListZones(c *gin.Context) {
	org, err := resolveOrg(c, h.tenantService)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.InternalError(err.Error()))
		return
	}

	result, err := h.catalogService.ListZones(c.Request.Context(), org)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.InternalError(err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.Success(result))
}

// CreateZone handles POST /api/v1/zones
func (h *CatalogHandler) CreateZone(c *gin.Context) {
	var req dto.CreateZoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}

	org, err := resolveOrg(c, h.tenantService)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.InternalError(err.Error()))
		return
	}

	result, err := h.catalogService.CreateZone(c.Request.Context(), org, &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrOrganizationNotFound):
			c.JSON(http.StatusNotFound, response.NotFound("Organization not found"))
		case errors.Is(err, service.ErrZoneExists):
			c.JSON(http.StatusConflict, response.Error(response.ErrCodeDuplicateEntry, "Zone with this name already exists"))
		default:
			c.JSON(http.StatusInternalServerError, response.InternalError(err.Error()))
		}
		return
	}
	c.JSON(http.StatusCreated, response.Success(result))
}

// DeleteZone handles DELETE /api/v1/zones/:id. Deletion is refused while live
// devices reference the zone.
func (h *CatalogHandler) DeleteZone(c *gin.Context) {
	if err := h.catalogService.DeleteZone(c.Request.Context(), c.Param("id")); err != nil {
		switch {
		case errors.Is(err, service.ErrZoneNotFound):
			c.JSON(http.StatusNotFound, response.NotFound("Zone not found"))
		case errors.Is(err, service.ErrZoneInUse):
			c.JSON(http.StatusConflict, response.Error(response.ErrCodeReferenceInUse, "Zone is referenced by live devices"))
		default:
			c.JSON(http.StatusInternalServerError, response.InternalError(err.Error()))
		}
		return
	}
	c.JSON(http.StatusOK, response.Success(gin.H{"message": "Zone deleted successfully"}))
}
