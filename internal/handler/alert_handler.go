package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/CRLTS-SNOW/ECO-ENERGY-EV1-BACKEND-INACAPLS/internal/dto"
	"github.com/CRLTS-SNOW/ECO-ENERGY-EV1-BACKEND-INACAPLS/internal/service"
	"github.com/CRLTS-SNOW/ECO-ENERGY-EV1-BACKEND-INACAPLS/pkg/response"
)

// AlertHandler handles alert HTTP requests
type AlertHandler struct {
	tenantService service.TenantService
	alertService  service.AlertService
}

// NewAlertHandler creates a new AlertHandler
func NewAlertHandler(tenantService service.TenantService, alertService service.AlertService) *AlertHandler {
	return &AlertHandler{
		tenantService: tenantService,
		alertService:  alertService,
	}
}

// List handles the paginated trailing-week alert listing
// GET /api/v1/alerts?page=<n>
func (h *AlertHandler) List(c *gin.Context) {
	var query dto.ListAlertsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}

	org, err := resolveOrg(c, h.tenantService)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.InternalError(err.Error()))
		return
	}

	result, page, total, err := h.alertService.ListWeekly(c.Request.Context(), org, &query, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.InternalError(err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Paginated(result, page, service.AlertPageSize, int64(total)))
}

// Create handles alert recording
// POST /api/v1/alerts
func (h *AlertHandler) Create(c *gin.Context) {
	var req dto.CreateAlertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}

	result, err := h.alertService.Create(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrDeviceNotFound):
			c.JSON(http.StatusNotFound, response.NotFound("Device not found"))
		case errors.Is(err, service.ErrInvalidSeverity), errors.Is(err, service.ErrInvalidTimestamp):
			c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		default:
			c.JSON(http.StatusInternalServerError, response.InternalError(err.Error()))
		}
		return
	}

	c.JSON(http.StatusCreated, response.Success(result))
}
