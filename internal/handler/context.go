package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/CRLTS-SNOW/ECO-ENERGY-EV1-BACKEND-INACAPLS/internal/domain"
	"github.com/CRLTS-SNOW/ECO-ENERGY-EV1-BACKEND-INACAPLS/internal/service"
	"github.com/CRLTS-SNOW/ECO-ENERGY-EV1-BACKEND-INACAPLS/pkg/middleware"
)

// resolveOrg determines the organization scoping the request. The org_id
// claim from the authenticated principal wins; the store-wide resolver runs
// only when the claim is absent or stale. A nil organization is a valid
// empty-tenant outcome.
func resolveOrg(c *gin.Context, tenants service.TenantService) (*domain.Organization, error) {
	if orgID, ok := middleware.GetOrgID(c); ok && orgID != "" {
		org, err := tenants.GetByID(c.Request.Context(), orgID)
		if err != nil {
			return nil, err
		}
		if org != nil {
			return org, nil
		}
	}
	return tenants.ResolveActive(c.Request.Context())
}
