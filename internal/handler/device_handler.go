package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/CRLTS-SNOW/ECO-ENERGY-EV1-BACKEND-INACAPLS/internal/dto"
	"github.com/CRLTS-SNOW/ECO-ENERGY-EV1-BACKEND-INACAPLS/internal/service"
	"github.com/CRLTS-SNOW/ECO-ENERGY-EV1-BACKEND-INACAPLS/pkg/response"
)

// DeviceHandler handles device HTTP requests
type DeviceHandler struct {
	tenantService service.TenantService
	deviceService service.DeviceService
}

// NewDeviceHandler creates a new DeviceHandler
func NewDeviceHandler(tenantService service.TenantService, deviceService service.DeviceService) *DeviceHandler {
	return &DeviceHandler{
		tenantService: tenantService,
		deviceService: deviceService,
	}
}

// List handles the paginated device listing with category filter
// GET /api/v1/devices?category=<id>&page=<n>
func (h *DeviceHandler) List(c *gin.Context) {
	var query dto.ListDevicesQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}

	org, err := resolveOrg(c, h.tenantService)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.InternalError(err.Error()))
		return
	}

	result, page, total, err := h.deviceService.List(c.Request.Context(), org, &query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.InternalError(err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Paginated(result, page, service.DevicePageSize, int64(total)))
}

// Detail handles the device sheet
// GET /api/v1/devices/:id
func (h *DeviceHandler) Detail(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, response.BadRequest("Device ID is required"))
		return
	}

	result, err := h.deviceService.Detail(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrDeviceNotFound) {
			c.JSON(http.StatusNotFound, response.NotFound("Device not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, response.InternalError(err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(result))
}

// Create handles device registration
// POST /api/v1/devices
func (h *DeviceHandler) Create(c *gin.Context) {
	var req dto.CreateDeviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}

	org, err := resolveOrg(c, h.tenantService)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.InternalError(err.Error()))
		return
	}

	result, err := h.deviceService.Create(c.Request.Context(), org, &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrOrganizationNotFound):
			c.JSON(http.StatusNotFound, response.NotFound("Organization not found"))
		case errors.Is(err, service.ErrCategoryNotFound):
			c.JSON(http.StatusNotFound, response.NotFound("Category not found"))
		case errors.Is(err, service.ErrZoneNotFound):
			c.JSON(http.StatusNotFound, response.NotFound("Zone not found"))
		case errors.Is(err, service.ErrDeviceExists):
			c.JSON(http.StatusConflict, response.Error(response.ErrCodeDuplicateEntry, "Device with this name already exists"))
		default:
			c.JSON(http.StatusInternalServerError, response.InternalError(err.Error()))
		}
		return
	}

	c.JSON(http.StatusCreated, response.Success(result))
}

// Delete handles device soft deletion
// DELETE /api/v1/devices/:id
func (h *DeviceHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, response.BadRequest("Device ID is required"))
		return
	}

	if err := h.deviceService.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrDeviceNotFound) {
			c.JSON(http.StatusNotFound, response.NotFound("Device not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, response.InternalError(err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(gin.H{"message": "Device deleted successfully"}))
}
