package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/CRLTS-SNOW/ECO-ENERGY-EV1-BACKEND-INACAPLS/internal/domain"
	"github.com/CRLTS-SNOW/ECO-ENERGY-EV1-BACKEND-INACAPLS/internal/dto"
	"github.com/CRLTS-SNOW/ECO-ENERGY-EV1-BACKEND-INACAPLS/internal/repository"
)

var (
	ErrOrganizationExists   = errors.New("organization with this name already exists")
	ErrOrganizationNotFound = errors.New("organization not found")
)

// TenantService resolves and manages the organization that scopes every
// dashboard and listing query.
type TenantService interface {
	// ResolveActive determines the active organization: the first live
	// organization by name, falling back to inference from orphaned data.
	// (nil, nil) is the defined empty-tenant state, not an error.
	ResolveActive(ctx context.Context) (*domain.Organization, error)
	// GetByID retrieves a live organization by ID; nil if missing
	GetByID(ctx context.Context, id string) (*domain.Organization, error)
	// Create registers a new organization
	Create(ctx context.Context, req *dto.CreateOrganizationRequest) (*dto.OrganizationResponse, error)
	// Delete soft deletes an organization
	Delete(ctx context.Context, id string) error
}

// tenantService implements TenantService
type tenantService struct {
	orgRepo         repository.OrganizationRepository
	deviceRepo      repository.DeviceRepository
	categoryRepo    repository.CategoryRepository
	measurementRepo repository.MeasurementRepository
	alertRepo       repository.AlertRepository
}

// NewTenantService creates a new TenantService
func NewTenantService(
	orgRepo repository.OrganizationRepository,
	deviceRepo repository.DeviceRepository,
	categoryRepo repository.CategoryRepository,
	measurementRepo repository.MeasurementRepository,
	alertRepo repository.AlertRepository,
) TenantService {
	return &tenantService{
		orgRepo:         orgRepo,
		deviceRepo:      deviceRepo,
		categoryRepo:    categoryRepo,
		measurementRepo: measurementRepo,
		alertRepo:       alertRepo,
	}
}

// ResolveActive determines the active organization. The fallback scan keeps
// the dashboard from going blank when no organization row survives but data
// rows still carry an organization id: devices are checked first, then
// categories, measurements, and alerts, and the referenced organization is
// returned even if itself soft deleted. Read-only; no caching across calls.
func (s *tenantService) ResolveActive(ctx context.Context) (*domain.Organization, error) {
	org, err := s.orgRepo.FirstLive(ctx)
	if err != nil {
		return nil, err
	}
	if org != nil {
		return org, nil
	}

	scans := []func(context.Context) (string, error){
		s.deviceRepo.FirstOrganizationID,
		s.categoryRepo.FirstOrganizationID,
		s.measurementRepo.FirstOrganizationID,
		s.alertRepo.FirstOrganizationID,
	}
	for _, scan := range scans {
		orgID, err := scan(ctx)
		if err != nil {
			return nil, err
		}
		if orgID != "" {
			return s.orgRepo.GetByIDAny(ctx, orgID)
		}
	}
	return nil, nil
}

// GetByID retrieves a live organization by ID
func (s *tenantService) GetByID(ctx context.Context, id string) (*domain.Organization, error) {
	return s.orgRepo.GetByID(ctx, id)
}

// Create registers a new organization
func (s *tenantService) Create(ctx context.Context, req *dto.CreateOrganizationRequest) (*dto.OrganizationResponse, error) {
	exists, err := s.orgRepo.ExistsByName(ctx, req.Name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrOrganizationExists
	}

	now := time.Now()
	org := &domain.Organization{
		ID:        uuid.New().String(),
		Name:      req.Name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.orgRepo.Create(ctx, org); err != nil {
		return nil, err
	}
	return toOrganizationResponse(org), nil
}

// Delete soft deletes an organization
func (s *tenantService) Delete(ctx context.Context, id string) error {
	org, err := s.orgRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if org == nil {
		return ErrOrganizationNotFound
	}
	return s.orgRepo.SoftDelete(ctx, id)
}
