package di

import (
	"github.com/CRLTS-SNOW/ECO-ENERGY-EV1-BACKEND-INACAPLS/internal/handler"
	"github.com/CRLTS-SNOW/ECO-ENERGY-EV1-BACKEND-INACAPLS/internal/repository"
	"github.com/CRLTS-SNOW/ECO-ENERGY-EV1-BACKEND-INACAPLS/internal/service"
	"github.com/CRLTS-SNOW/ECO-ENERGY-EV1-BACKEND-INACAPLS/pkg/database"
	"github.com/CRLTS-SNOW/ECO-ENERGY-EV1-BACKEND-INACAPLS/pkg/middleware"
	"github.com/CRLTS-SNOW/ECO-ENERGY-EV1-BACKEND-INACAPLS/pkg/redis"
)

// Container holds all dependencies for the reporting service
type Container struct {
	// Infrastructure
	DB          *database.PostgresDB
	Redis       *redis.Client
	AuditLogger *middleware.AuditLogger

	// Repositories
	OrganizationRepo repository.OrganizationRepository
	CategoryRepo     repository.CategoryRepository
	ZoneRepo         repository.ZoneRepository
	DeviceRepo       repository.DeviceRepository
	MeasurementRepo  repository.MeasurementRepository
	AlertRepo        repository.AlertRepository

	// Services
	TenantService      service.TenantService
	DashboardService   service.DashboardService
	DeviceService      service.DeviceService
	CatalogService     service.CatalogService
	MeasurementService service.MeasurementService
	AlertService       service.AlertService

	// Handlers
	HealthHandler       *handler.HealthHandler
	DashboardHandler    *handler.DashboardHandler
	DeviceHandler       *handler.DeviceHandler
	MeasurementHandler  *handler.MeasurementHandler
	AlertHandler        *handler.AlertHandler
	OrganizationHandler *handler.OrganizationHandler
	CatalogHandler      *handler.CatalogHandler
}

// ContainerConfig contains configuration for building the container
type ContainerConfig struct {
	DB    *database.PostgresDB
	Redis *redis.Client
}

// NewContainer creates a new dependency injection container
func NewContainer(cfg *ContainerConfig) *Container {
	c := &Container{
		DB:    cfg.DB,
		Redis: cfg.Redis,
	}

	c.AuditLogger = middleware.NewAuditLogger(middleware.DefaultAuditConfig(c.DB.Pool()))

	// Initialize repositories
	c.OrganizationRepo = repository.NewPostgresOrganizationRepository(c.DB.Pool())
	c.CategoryRepo = repository.NewPostgresCategoryRepository(c.DB.Pool())
	c.ZoneRepo = repository.NewPostgresZoneRepository(c.DB.Pool())
	c.DeviceRepo = repository.NewPostgresDeviceRepository(c.DB.Pool())
	c.MeasurementRepo = repository.NewPostgresMeasurementRepository(c.DB.Pool())
	c.AlertRepo = repository.NewPostgresAlertRepository(c.DB.Pool())

	// Initialize services
	c.TenantService = service.NewTenantService(c.OrganizationRepo, c.DeviceRepo, c.CategoryRepo, c.MeasurementRepo, c.AlertRepo)
	c.DashboardService = service.NewDashboardService(c.DeviceRepo, c.MeasurementRepo, c.AlertRepo)
	c.DeviceService = service.NewDeviceService(c.DeviceRepo, c.CategoryRepo, c.ZoneRepo, c.MeasurementRepo, c.AlertRepo)
	c.CatalogService = service.NewCatalogService(c.CategoryRepo, c.ZoneRepo, c.DeviceRepo)
	c.MeasurementService = service.NewMeasurementService(c.MeasurementRepo, c.DeviceRepo)
	c.AlertService = service.NewAlertService(c.AlertRepo, c.DeviceRepo)

	// Initialize handlers
	c.HealthHandler = handler.NewHealthHandler(c.DB)
	c.DashboardHandler = handler.NewDashboardHandler(c.TenantService, c.DashboardService)
	c.DeviceHandler = handler.NewDeviceHandler(c.TenantService, c.DeviceService)
	c.MeasurementHandler = handler.NewMeasurementHandler(c.TenantService, c.MeasurementService)
	c.AlertHandler = handler.NewAlertHandler(c.TenantService, c.AlertService)
	c.OrganizationHandler = handler.NewOrganizationHandler(c.TenantService)
	c.CatalogHandler = handler.NewCatalogHandler(c.TenantService, c.CatalogService)

	return c
}

// Close releases container-held resources
func (c *Container) Close() {
	if c.AuditLogger != nil {
		_ = c.AuditLogger.Close()
	}
}
