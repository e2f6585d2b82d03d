package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/CRLTS-SNOW/ECO-ENERGY-EV1-BACKEND-INACAPLS/internal/dto"
	"github.com/CRLTS-SNOW/ECO-ENERGY-EV1-BACKEND-INACAPLS/internal/service"
	"github.com/CRLTS-SNOW/ECO-ENERGY-EV1-BACKEND-INACAPLS/pkg/response"
)

// MeasurementHandler handles measurement HTTP requests
type MeasurementHandler struct {
	tenantService      service.TenantService
	measurementService service.MeasurementService
}

// NewMeasurementHandler creates a new MeasurementHandler
func NewMeasurementHandler(tenantService service.TenantService, measurementService service.MeasurementService) *MeasurementHandler {
	return &MeasurementHandler{
		tenantService:      tenantService,
		measurementService: measurementService,
	}
}

// List handles the paginated measurement listing
// GET /api/v1/measurements?page=<n>
func (h *MeasurementHandler) List(c *gin.Context) {
	var query dto.ListMeasurementsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}

	org, err := resolveOrg(c, h.tenantService)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.InternalError(err.Error()))
		return
	}

	result, page, total, err := h.measurementService.List(c.Request.Context(), org, &query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.InternalError(err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Paginated(result, page, service.MeasurementPageSize, int64(total)))
}

// Create handles measurement recording
// POST /api/v1/measurements
func (h *MeasurementHandler) Create(c *gin.Context) {
	var req dto.CreateMeasurementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}

	result, err := h.measurementService.Create(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrDeviceNotFound):
			c.JSON(http.StatusNotFound, response.NotFound("Device not found"))
		case errors.Is(err, service.ErrInvalidTimestamp):
			c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		default:
			c.JSON(http.StatusInternalServerError, response.InternalError(err.Error()))
		}
		return
	}

	c.JSON(http.StatusCreated, response.Success(result))
}
