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
	ErrCategoryNotFound = errors.New("category not found")
	ErrCategoryExists   = errors.New("category with this name already exists")
	ErrCategoryInUse    = errors.New("category is referenced by live devices")
	ErrZoneNotFound     = errors.New("zone not found")
	ErrZoneExists       = errors.New("zone with this name already exists")
	ErrZoneInUse        = errors.New("zone is referenced by live devices")
)

// CatalogService manages the category and zone reference data devices hang
// off. Deleting an entry referenced by live devices is refused, mirroring the
// RESTRICT foreign keys.
type CatalogService interface {
	CreateCategory(ctx context.Context, org *domain.Organization, req *dto.CreateCategoryRequest) (*dto.CategoryResponse, error)
	ListCategories(ctx context.Context, org *domain.Organization) ([]dto.CategoryResponse, error)
	DeleteCategory(ctx context.Context, id string) error

	CreateZone(ctx context.Context, org *domain.Organization, req *dto.CreateZoneRequest) (*dto.ZoneResponse, error)
	ListZones(ctx context.Context, org *domain.Organization) ([]dto.ZoneResponse, error)
	DeleteZone(ctx context.Context, id string) error
}

// catalogService implements CatalogService
type catalogService struct {
	categoryRepo repository.CategoryRepository
	zoneRepo     repository.ZoneRepository
	deviceRepo   repository.DeviceRepository
}

// NewCatalogService creates a new CatalogService
func NewCatalogService(
	categoryRepo repository.CategoryRepository,
	zoneRepo repository.ZoneRepository,
	deviceRepo repository.DeviceRepository,
) CatalogService {
	return &catalogService{
		categoryRepo: categoryRepo,
		zoneRepo:     zoneRepo,
		deviceRepo:   deviceRepo,
	}
}

// CreateCategory creates a category with a name unique in the organization
func (s *catalogService) CreateCategory(ctx context.Context, org *domain.Organization, req *dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	if org == nil {
		return nil, ErrOrganizationNotFound
	}
	exists, err := s.categoryRepo.ExistsByName(ctx, org.ID, req.Name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrCategoryExists
	}

	now := time.Now()
	category := &domain.Category{
		ID:             uuid.New().String(),
		OrganizationID: org.ID,
		Name:           req.Name,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}
	resp := toCategoryResponse(category)
	return &resp, nil
}

// ListCategories retrieves live categories for org ordered by name
func (s *catalogService) ListCategories(ctx context.Context, org *domain.Organization) ([]dto.CategoryResponse, error) {
	out := []dto.CategoryResponse{}
	if org == nil {
		return out, nil
	}
	categories, err := s.categoryRepo.ListByOrganization(ctx, org.ID)
	if err != nil {
		return nil, err
	}
	for _, category := range categories {
		out = append(out, toCategoryResponse(category))
	}
	return out, nil
}

// DeleteCategory soft deletes a category unless live devices still reference it
func (s *catalogService) DeleteCategory(ctx context.Context, id string) error {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if category == nil {
		return ErrCategoryNotFound
	}
	inUse, err := s.deviceRepo.CountByCategoryID(ctx, id)
	if err != nil {
		return err
	}
	if inUse > 0 {
		return ErrCategoryInUse
	}
	return s.categoryRepo.SoftDelete(ctx, id)
}

// CreateZone creates a zone with a name unique in the organization
func (s *catalogService) CreateZone(ctx context.Context, org *domain.Organization, req *dto.CreateZoneRequest) (*dto.ZoneResponse, error) {
	if org == nil {
		return nil, ErrOrganizationNotFound
	}
	exists, err := s.zoneRepo.ExistsByName(ctx, org.ID, req.Name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrZoneExists
	}

	now := time.Now()
	zone := &domain.Zone{
		ID:             uuid.New().String(),
		OrganizationID: org.ID,
		Name:           req.Name,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.zoneRepo.Create(ctx, zone); err != nil {
		return nil, err
	}
	resp := toZoneResponse(zone)
	return &resp, nil
}

// ListZones retrieves live zones for org ordered by name
func (s *catalogService) ListZones(ctx context.Context, org *domain.Organization) ([]dto.ZoneResponse, error) {
	out := []dto.ZoneResponse{}
	if org == nil {
		return out, nil
	}
	zones, err := s.zoneRepo.ListByOrganization(ctx, org.ID)
	if err != nil {
		return nil, err
	}
	for _, zone := range zones {
		out = append(out, toZoneResponse(zone))
	}
	return out, nil
}

// DeleteZone soft deletes a zone unless live devices still reference it
func (s *catalogService) DeleteZone(ctx context.Context, id string) error {
	zone, err := s.zoneRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if zone == nil {
		return ErrZoneNotFound
	}
	inUse, err := s.deviceRepo.CountByZoneID(ctx, id)
	if err != nil {
		return err
	}
	if inUse > 0 {
		return ErrZoneInUse
	}
	return s.zoneRepo.SoftDelete(ctx, id)
}
