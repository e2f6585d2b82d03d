package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/CRLTS-SNOW/ECO-ENERGY-EV1-BACKEND-INACAPLS/internal/domain"
	"github.com/CRLTS-SNOW/ECO-ENERGY-EV1-BACKEND-INACAPLS/internal/dto"
	"github.com/CRLTS-SNOW/ECO-ENERGY-EV1-BACKEND-INACAPLS/internal/repository"
)

var ErrInvalidTimestamp = errors.New("invalid timestamp format, expected RFC3339")

// MeasurementService defines measurement listing and recording operations.
type MeasurementService interface {
	// List retrieves one page of live measurements for org, newest first.
	// Returns the effective page and the total row count.
	List(ctx context.Context, org *domain.Organization, query *dto.ListMeasurementsQuery) (*dto.ListMeasurementsResponse, int, int, error)
	// Create records a measurement for a live device
	Create(ctx context.Context, req *dto.CreateMeasurementRequest) (*dto.MeasurementResponse, error)
}

// measurementService implements MeasurementService
type measurementService struct {
	measurementRepo repository.MeasurementRepository
	deviceRepo      repository.DeviceRepository
}

// NewMeasurementService creates a new MeasurementService
func NewMeasurementService(
	measurementRepo repository.MeasurementRepository,
	deviceRepo repository.DeviceRepository,
) MeasurementService {
	return &measurementService{
		measurementRepo: measurementRepo,
		deviceRepo:      deviceRepo,
	}
}

// List retrieves one page of live measurements, 50 per page, device names
// eager-joined. A nil org yields an empty page.
func (s *measurementService) List(ctx context.Context, org *domain.Organization, query *dto.ListMeasurementsQuery) (*dto.ListMeasurementsResponse, int, int, error) {
	resp := &dto.ListMeasurementsResponse{
		Measurements: []dto.MeasurementResponse{},
	}
	if org == nil {
		return resp, 1, 0, nil
	}
	resp.Org = toOrganizationResponse(org)

	total, err := s.measurementRepo.CountByOrganization(ctx, org.ID)
	if err != nil {
		return nil, 0, 0, err
	}
	page, offset := clampPage(query.PageNumber(), total, MeasurementPageSize)

	measurements, err := s.measurementRepo.ListByOrganization(ctx, org.ID, MeasurementPageSize, offset)
	if err != nil {
		return nil, 0, 0, err
	}
	resp.Measurements = toMeasurementResponses(measurements)

	return resp, page, total, nil
}

// Create records a measurement. The organization id is taken from the owning
// device so child rows can never cross tenants.
func (s *measurementService) Create(ctx context.Context, req *dto.CreateMeasurementRequest) (*dto.MeasurementResponse, error) {
	device, err := s.deviceRepo.GetByID(ctx, req.DeviceID)
	if err != nil {
		return nil, err
	}
	if device == nil {
		return nil, ErrDeviceNotFound
	}

	now := time.Now()
	measuredAt := now
	if req.MeasuredAt != "" {
		measuredAt, err = time.Parse(time.RFC3339, req.MeasuredAt)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidTimestamp, req.MeasuredAt)
		}
	}

	measurement := &domain.Measurement{
		ID:             uuid.New().String(),
		OrganizationID: device.OrganizationID,
		DeviceID:       device.ID,
		MeasuredAt:     measuredAt,
		Value:          req.Value,
		CreatedAt:      now,
		UpdatedAt:      now,
		DeviceName:     device.Name,
	}
	if err := s.measurementRepo.Create(ctx, measurement); err != nil {
		return nil, err
	}

	responses := toMeasurementResponses([]*domain.Measurement{measurement})
	return &responses[0], nil
}
