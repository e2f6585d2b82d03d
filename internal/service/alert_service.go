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

var ErrInvalidSeverity = errors.New("severity must be critical, high or medium")

// AlertService defines alert listing and recording operations over the
// trailing seven-day window.
type AlertService interface {
	// ListWeekly retrieves one page of live alerts with occurred_at in
	// [now-7d, now], newest first, plus the severity breakdown over the same
	// window. Returns the effective page and the total row count.
	ListWeekly(ctx context.Context, org *domain.Organization, query *dto.ListAlertsQuery, now time.Time) (*dto.ListAlertsResponse, int, int, error)
	// Create raises an alert for a live device
	Create(ctx context.Context, req *dto.CreateAlertRequest) (*dto.AlertResponse, error)
}

// alertService implements AlertService
type alertService struct {
	alertRepo  repository.AlertRepository
	deviceRepo repository.DeviceRepository
}

// NewAlertService creates a new AlertService
func NewAlertService(
	alertRepo repository.AlertRepository,
	deviceRepo repository.DeviceRepository,
) AlertService {
	return &alertService{
		alertRepo:  alertRepo,
		deviceRepo: deviceRepo,
	}
}

// ListWeekly retrieves one page of the trailing-week alerts, 50 per page. The
// severity breakdown is computed over the same filtered window, keyed by
// display label with absent severities omitted. A nil org yields an empty page.
func (s *alertService) ListWeekly(ctx context.Context, org *domain.Organization, query *dto.ListAlertsQuery, now time.Time) (*dto.ListAlertsResponse, int, int, error) {
	weekAgo := now.Add(-alertWindow)
	resp := &dto.ListAlertsResponse{
		Alerts:         []dto.AlertResponse{},
		SeverityCounts: map[string]int{},
		WeekAgo:        weekAgo.Format(time.RFC3339),
	}
	if org == nil {
		return resp, 1, 0, nil
	}
	resp.Org = toOrganizationResponse(org)

	total, err := s.alertRepo.CountSince(ctx, org.ID, weekAgo)
	if err != nil {
		return nil, 0, 0, err
	}
	page, offset := clampPage(query.PageNumber(), total, AlertPageSize)

	alerts, err := s.alertRepo.ListSince(ctx, org.ID, weekAgo, AlertPageSize, offset)
	if err != nil {
		return nil, 0, 0, err
	}
	resp.Alerts = toAlertResponses(alerts)

	counts, err := s.alertRepo.SeverityCountsSince(ctx, org.ID, weekAgo)
	if err != nil {
		return nil, 0, 0, err
	}
	for _, c := range counts {
		resp.SeverityCounts[c.SeverityDisplay] = c.Total
	}

	return resp, page, total, nil
}

// Create raises an alert. New alerts must carry a known severity code; only
// pre-existing rows with unexpected codes pass through display unvalidated.
func (s *alertService) Create(ctx context.Context, req *dto.CreateAlertRequest) (*dto.AlertResponse, error) {
	severity := domain.Severity(req.Severity)
	switch severity {
	case domain.SeverityCritical, domain.SeverityHigh, domain.SeverityMedium:
	default:
		return nil, ErrInvalidSeverity
	}

	device, err := s.deviceRepo.GetByID(ctx, req.DeviceID)
	if err != nil {
		return nil, err
	}
	if device == nil {
		return nil, ErrDeviceNotFound
	}

	now := time.Now()
	occurredAt := now
	if req.OccurredAt != "" {
		occurredAt, err = time.Parse(time.RFC3339, req.OccurredAt)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidTimestamp, req.OccurredAt)
		}
	}

	alert := &domain.Alert{
		ID:             uuid.New().String(),
		OrganizationID: device.OrganizationID,
		DeviceID:       device.ID,
		Severity:       severity,
		Message:        req.Message,
		OccurredAt:     occurredAt,
		CreatedAt:      now,
		UpdatedAt:      now,
		DeviceName:     device.Name,
	}
	if err := s.alertRepo.Create(ctx, alert); err != nil {
		return nil, err
	}

	responses := toAlertResponses([]*domain.Alert{alert})
	return &responses[0], nil
}
