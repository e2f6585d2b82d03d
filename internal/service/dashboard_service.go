package service

import (
	"context"
	"time"

	"github.com/CRLTS-SNOW/ECO-ENERGY-EV1-BACKEND-INACAPLS/internal/domain"
	"github.com/CRLTS-SNOW/ECO-ENERGY-EV1-BACKEND-INACAPLS/internal/dto"
	"github.com/CRLTS-SNOW/ECO-ENERGY-EV1-BACKEND-INACAPLS/internal/repository"
)

const (
	latestMeasurementCount = 10
	recentAlertCount       = 5
	alertWindow            = 7 * 24 * time.Hour
)

// DashboardService assembles the dashboard summary for an organization.
type DashboardService interface {
	// BuildSummary aggregates the dashboard blocks for org at reference time
	// now. A nil org yields the defined all-empty summary.
	BuildSummary(ctx context.Context, org *domain.Organization, now time.Time) (*dto.DashboardSummaryResponse, error)
}

// dashboardService implements DashboardService
type dashboardService struct {
	deviceRepo      repository.DeviceRepository
	measurementRepo repository.MeasurementRepository
	alertRepo       repository.AlertRepository
}

// NewDashboardService creates a new DashboardService
func NewDashboardService(
	deviceRepo repository.DeviceRepository,
	measurementRepo repository.MeasurementRepository,
	alertRepo repository.AlertRepository,
) DashboardService {
	return &dashboardService{
		deviceRepo:      deviceRepo,
		measurementRepo: measurementRepo,
		alertRepo:       alertRepo,
	}
}

// BuildSummary runs one query per dashboard block: latest measurements with
// devices eager-joined, device counts by category and by zone, the weekly
// severity breakdown, and the five most recent weekly alerts.
func (s *dashboardService) BuildSummary(ctx context.Context, org *domain.Organization, now time.Time) (*dto.DashboardSummaryResponse, error) {
	summary := &dto.DashboardSummaryResponse{
		LatestMeasurements: []dto.MeasurementResponse{},
		ByCategory:         []dto.GroupCountResponse{},
		ByZone:             []dto.GroupCountResponse{},
		AlertsWeek:         []dto.SeverityCountResponse{},
		RecentAlerts:       []dto.AlertResponse{},
	}
	if org == nil {
		return summary, nil
	}
	summary.Org = toOrganizationResponse(org)

	latest, err := s.measurementRepo.Latest(ctx, org.ID, latestMeasurementCount)
	if err != nil {
		return nil, err
	}
	summary.LatestMeasurements = toMeasurementResponses(latest)

	byCategory, err := s.deviceRepo.CountByCategory(ctx, org.ID)
	if err != nil {
		return nil, err
	}
	summary.ByCategory = toGroupCountResponses(byCategory)

	byZone, err := s.deviceRepo.CountByZone(ctx, org.ID)
	if err != nil {
		return nil, err
	}
	summary.ByZone = toGroupCountResponses(byZone)

	weekAgo := now.Add(-alertWindow)
	alertsWeek, err := s.alertRepo.SeverityCountsSince(ctx, org.ID, weekAgo)
	if err != nil {
		return nil, err
	}
	summary.AlertsWeek = toSeverityCountResponses(alertsWeek)

	recent, err := s.alertRepo.ListSince(ctx, org.ID, weekAgo, recentAlertCount, 0)
	if err != nil {
		return nil, err
	}
	summary.RecentAlerts = toAlertResponses(recent)

	return summary, nil
}
