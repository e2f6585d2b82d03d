package server

import (
	"github.com/gin-gonic/gin"

	"github.com/CRLTS-SNOW/ECO-ENERGY-EV1-BACKEND-INACAPLS/internal/di"
	"github.com/CRLTS-SNOW/ECO-ENERGY-EV1-BACKEND-INACAPLS/pkg/config"
	"github.com/CRLTS-SNOW/ECO-ENERGY-EV1-BACKEND-INACAPLS/pkg/middleware"
)

// NewRouter builds the gin engine with all routes and middleware wired
func NewRouter(cfg *config.Config, c *di.Container) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())

	rateLimitCfg := middleware.DefaultRateLimitConfig()
	if c.Redis != nil {
		rateLimitCfg.UseRedis = true
		rateLimitCfg.RedisClient = c.Redis
	}
	router.Use(middleware.RateLimiter(rateLimitCfg))

	// Public endpoints
	router.GET("/health", c.HealthHandler.Health)
	router.GET("/ready", c.HealthHandler.Ready)

	jwtConfig := &middleware.JWTConfig{
		Secret:    cfg.JWT.Secret,
		SkipPaths: []string{"/health", "/ready"},
	}

	v1 := router.Group("/api/v1")
	v1.Use(middleware.JWTMiddleware(jwtConfig))
	if c.AuditLogger != nil {
		v1.Use(middleware.AuditMiddleware(c.AuditLogger))
	}
	{
		v1.GET("/dashboard", c.DashboardHandler.Summary)

		v1.GET("/devices", c.DeviceHandler.List)
		v1.POST("/devices", c.DeviceHandler.Create)
		v1.GET("/devices/:id", c.DeviceHandler.Detail)
		v1.DELETE("/devices/:id", c.DeviceHandler.Delete)

		v1.GET("/measurements", c.MeasurementHandler.List)
		v1.POST("/measurements", c.MeasurementHandler.Create)

		v1.GET("/alerts", c.AlertHandler.List)
		v1.POST("/alerts", c.AlertHandler.Create)

		v1.POST("/organizations", c.OrganizationHandler.Create)
		v1.DELETE("/organizations/:id", c.OrganizationHandler.Delete)

		v1.GET("/categories", c.CatalogHandler.ListCategories)
		v1.POST("/categories", c.CatalogHandler.CreateCategory)
		v1.DELETE("/categories/:id", c.CatalogHandler.DeleteCategory)

		v1.GET("/zones", c.CatalogHandler.ListZones)
		v1.POST("/zones", c.CatalogHandler.CreateZone)
		v1.DELETE("/zones/:id", c.CatalogHandler.DeleteZone)
	}

	return router
}
