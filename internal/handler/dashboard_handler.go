package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/CRLTS-SNOW/ECO-ENERGY-EV1-BACKEND-INACAPLS/internal/service"
	"github.com/CRLTS-SNOW/ECO-ENERGY-EV1-BACKEND-INACAPLS/pkg/response"
)

// DashboardHandler handles dashboard HTTP requests
type DashboardHandler struct {
	tenantService    service.TenantService
	dashboardService service.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(tenantService service.TenantService, dashboardService service.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		tenantService:    tenantService,
		dashboardService: dashboardService,
	}
}

// Summary handles the dashboard summary
// GET /api/v1/dashboard
func (h *DashboardHandler) Summary(c *gin.Context) {
	org, err := resolveOrg(c, h.tenantService)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.InternalError(err.Error()))
		return
	}

	summary, err := h.dashboardService.BuildSummary(c.Request.Context(), org, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.InternalError(err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(summary))
}
