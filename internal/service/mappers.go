package service

import (
	"time"

	"github.com/CRLTS-SNOW/ECO-ENERGY-EV1-BACKEND-INACAPLS/internal/domain"
	"github.com/CRLTS-SNOW/ECO-ENERGY-EV1-BACKEND-INACAPLS/internal/dto"
)

func toOrganizationResponse(org *domain.Organization) *dto.OrganizationResponse {
	if org == nil {
		return nil
	}
	return &dto.OrganizationResponse{
		ID:        org.ID,
		Name:      org.Name,
		CreatedAt: org.CreatedAt.Format(time.RFC3339),
		UpdatedAt: org.UpdatedAt.Format(time.RFC3339),
	}
}

func toCategoryResponse(category *domain.Category) dto.CategoryResponse {
	return dto.CategoryResponse{ID: category.ID, Name: category.Name}
}

func toZoneResponse(zone *domain.Zone) dto.ZoneResponse {
	return dto.ZoneResponse{ID: zone.ID, Name: zone.Name}
}

func toDeviceResponse(device *domain.Device) dto.DeviceResponse {
	return dto.DeviceResponse{
		ID:           device.ID,
		Name:         device.Name,
		CategoryID:   device.CategoryID,
		CategoryName: device.CategoryName,
		ZoneID:       device.ZoneID,
		ZoneName:     device.ZoneName,
		IsActive:     device.IsActive,
		CreatedAt:    device.CreatedAt.Format(time.RFC3339),
	}
}

func toMeasurementResponses(measurements []*domain.Measurement) []dto.MeasurementResponse {
	out := make([]dto.MeasurementResponse, 0, len(measurements))
	for _, m := range measurements {
		out = append(out, dto.MeasurementResponse{
			ID:         m.ID,
			DeviceID:   m.DeviceID,
			DeviceName: m.DeviceName,
			MeasuredAt: m.MeasuredAt.Format(time.RFC3339),
			Value:      m.Value,
		})
	}
	return out
}

func toAlertResponses(alerts []*domain.Alert) []dto.AlertResponse {
	out := make([]dto.AlertResponse, 0, len(alerts))
	for _, a := range alerts {
		out = append(out, dto.AlertResponse{
			ID:              a.ID,
			DeviceID:        a.DeviceID,
			DeviceName:      a.DeviceName,
			Severity:        string(a.Severity),
			SeverityDisplay: a.Severity.DisplayName(),
			Message:         a.Message,
			OccurredAt:      a.OccurredAt.Format(time.RFC3339),
		})
	}
	return out
}

func toGroupCountResponses(groups []*domain.GroupCount) []dto.GroupCountResponse {
	out := make([]dto.GroupCountResponse, 0, len(groups))
	for _, g := range groups {
		out = append(out, dto.GroupCountResponse{ID: g.ID, Name: g.Name, Total: g.Total})
	}
	return out
}

func toSeverityCountResponses(counts []*domain.SeverityCount) []dto.SeverityCountResponse {
	out := make([]dto.SeverityCountResponse, 0, len(counts))
	for _, c := range counts {
		out = append(out, dto.SeverityCountResponse{
			Severity:        string(c.Severity),
			SeverityDisplay: c.SeverityDisplay,
			Total:           c.Total,
		})
	}
	return out
}
