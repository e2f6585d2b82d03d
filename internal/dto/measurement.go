package dto

import (
	"github.com/shopspring/decimal"
)

// ListMeasurementsQuery represents query parameters for the measurement listing.
type ListMeasurementsQuery struct {
	PageQuery
}

// CreateMeasurementRequest represents a request to record a measurement.
// Value is a fixed-point decimal string (e.g. "12.345").
type CreateMeasurementRequest struct {
	DeviceID   string          `json:"device_id" binding:"required,uuid"`
	Value      decimal.Decimal `json:"value"`
	MeasuredAt string          `json:"measured_at" binding:"omitempty"`
}

// MeasurementResponse represents measurement data in responses.
type MeasurementResponse struct {
	ID         string          `json:"id"`
	DeviceID   string          `json:"device_id"`
	DeviceName string          `json:"device_name"`
	MeasuredAt string          `json:"measured_at"`
	Value      decimal.Decimal `json:"value"`
}

// ListMeasurementsResponse represents one page of the measurement listing.
type ListMeasurementsResponse struct {
	Org          *OrganizationResponse `json:"org"`
	Measurements []MeasurementResponse `json:"measurements"`
}
