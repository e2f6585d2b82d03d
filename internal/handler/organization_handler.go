package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/CRLTS-SNOW/ECO-ENERGY-EV1-BACKEND-INACAPLS/internal/dto"
	"github.com/CRLTS-SNOW/ECO-ENERGY-EV1-BACKEND-INACAPLS/internal/service"
	"github.com/CRLTS-SNOW/ECO-ENERGY-EV1-BACKEND-INACAPLS/pkg/response"
)

// OrganizationHandler handles organization management HTTP requests
type OrganizationHandler struct {
	tenantService service.TenantService
}

// NewOrganizationHandler creates a new OrganizationHandler
func NewOrganizationHandler(tenantService service.TenantService) *OrganizationHandler {
	return &OrganizationHandler{tenantService: tenantService}
}

// Create handles organization registration
// POST /api/v1/organizations
func (h *OrganizationHandler) Create(c *gin.Context) {
	var req dto.CreateOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}

	result, err := h.tenantService.Create(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrOrganizationExists) {
			c.JSON(http.StatusConflict, response.Error(response.ErrCodeDuplicateEntry, "Organization with this name already exists"))
			return
		}
		c.JSON(http.StatusInternalServerError, response.InternalError(err.Error()))
		return
	}

	c.JSON(http.StatusCreated, response.Success(result))
}

// Delete handles organization soft deletion
// DELETE /api/v1/organizations/:id
func (h *OrganizationHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, response.BadRequest("Organization ID is required"))
		return
	}

	if err := h.tenantService.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrOrganizationNotFound) {
			c.JSON(http.StatusNotFound, response.NotFound("Organization not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, response.InternalError(err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(gin.H{"message": "Organization deleted successfully"}))
}
