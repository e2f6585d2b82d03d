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
	ErrDeviceNotFound = errors.New("device not found")
	ErrDeviceExists   = errors.New("device with this name already exists")
)

// DeviceService defines device listing, detail and management operations.
type DeviceService interface {
	// List retrieves one page of live devices for org, optionally filtered by
	// category id, with the category filter options. Returns the effective
	// page and the total row count for the filter.
	List(ctx context.Context, org *domain.Organization, query *dto.ListDevicesQuery) (*dto.ListDevicesResponse, int, int, error)
	// Detail retrieves a device sheet: the live device plus its newest
	// measurements and alerts
	Detail(ctx context.Context, id string) (*dto.DeviceDetailResponse, error)
	// Create registers a device in org
	Create(ctx context.Context, org *domain.Organization, req *dto.CreateDeviceRequest) (*dto.DeviceResponse, error)
	// Delete soft deletes a device
	Delete(ctx context.Context, id string) error
}

// deviceService implements DeviceService
type deviceService struct {
	deviceRepo      repository.DeviceRepository
	categoryRepo    repository.CategoryRepository
	zoneRepo        repository.ZoneRepository
	measurementRepo repository.MeasurementRepository
	alertRepo       repository.AlertRepository
}

// NewDeviceService creates a new DeviceService
func NewDeviceService(
	deviceRepo repository.DeviceRepository,
	categoryRepo repository.CategoryRepository,
	zoneRepo repository.ZoneRepository,
	measurementRepo repository.MeasurementRepository,
	alertRepo repository.AlertRepository,
) DeviceService {
	return &deviceService{
		deviceRepo:      deviceRepo,
		categoryRepo:    categoryRepo,
		zoneRepo:        zoneRepo,
		measurementRepo: measurementRepo,
		alertRepo:       alertRepo,
	}
}

// List retrieves one page of live devices ordered by name, 25 per page.
// A nil org yields an empty page, not an error.
func (s *deviceService) List(ctx context.Context, org *domain.Organization, query *dto.ListDevicesQuery) (*dto.ListDevicesResponse, int, int, error) {
	resp := &dto.ListDevicesResponse{
		Devices:          []dto.DeviceResponse{},
		Categories:       []dto.CategoryResponse{},
		SelectedCategory: query.Category,
	}
	if org == nil {
		return resp, 1, 0, nil
	}

	total, err := s.deviceRepo.Count(ctx, org.ID, query.Category)
	if err != nil {
		return nil, 0, 0, err
	}
	page, offset := clampPage(query.PageNumber(), total, DevicePageSize)

	devices, err := s.deviceRepo.List(ctx, org.ID, query.Category, DevicePageSize, offset)
	if err != nil {
		return nil, 0, 0, err
	}
	for _, device := range devices {
		resp.Devices = append(resp.Devices, toDeviceResponse(device))
	}

	categories, err := s.categoryRepo.ListByOrganization(ctx, org.ID)
	if err != nil {
		return nil, 0, 0, err
	}
	for _, category := range categories {
		resp.Categories = append(resp.Categories, toCategoryResponse(category))
	}

	return resp, page, total, nil
}

// Detail retrieves a device sheet. Soft-deleted and unknown ids both surface
// as ErrDeviceNotFound, no matter how many live children reference them.
func (s *deviceService) Detail(ctx context.Context, id string) (*dto.DeviceDetailResponse, error) {
	device, err := s.deviceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if device == nil {
		return nil, ErrDeviceNotFound
	}

	measurements, err := s.measurementRepo.ListByDevice(ctx, id, detailMeasurementCap)
	if err != nil {
		return nil, err
	}
	alerts, err := s.alertRepo.ListByDevice(ctx, id, detailAlertCap)
	if err != nil {
		return nil, err
	}

	return &dto.DeviceDetailResponse{
		Device:       toDeviceResponse(device),
		Measurements: toMeasurementResponses(measurements),
		Alerts:       toAlertResponses(alerts),
	}, nil
}

// Create registers a device. The category and zone must be live and belong to
// the same organization; the device name must be unique within it.
func (s *deviceService) Create(ctx context.Context, org *domain.Organization, req *dto.CreateDeviceRequest) (*dto.DeviceResponse, error) {
	if org == nil {
		return nil, ErrOrganizationNotFound
	}

	category, err := s.categoryRepo.GetByID(ctx, req.CategoryID)
	if err != nil {
		return nil, err
	}
	if category == nil || category.OrganizationID != org.ID {
		return nil, ErrCategoryNotFound
	}

	zone, err := s.zoneRepo.GetByID(ctx, req.ZoneID)
	if err != nil {
		return nil, err
	}
	if zone == nil || zone.OrganizationID != org.ID {
		return nil, ErrZoneNotFound
	}

	exists, err := s.deviceRepo.ExistsByName(ctx, org.ID, req.Name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDeviceExists
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	now := time.Now()
	device := &domain.Device{
		ID:             uuid.New().String(),
		OrganizationID: org.ID,
		CategoryID:     category.ID,
		ZoneID:         zone.ID,
		Name:           req.Name,
		IsActive:       isActive,
		CreatedAt:      now,
		UpdatedAt:      now,
		CategoryName:   category.Name,
		ZoneName:       zone.Name,
	}
	if err := s.deviceRepo.Create(ctx, device); err != nil {
		return nil, err
	}

	resp := toDeviceResponse(device)
	return &resp, nil
}

// Delete soft deletes a device. The repository guard makes repeat deletes
// no-ops at the storage level; an already-deleted id surfaces as not found.
func (s *deviceService) Delete(ctx context.Context, id string) error {
	device, err := s.deviceRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if device == nil {
		return ErrDeviceNotFound
	}
	return s.deviceRepo.SoftDelete(ctx, id)
}
