package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Measurement is a single energy reading for a device. Value is a fixed-point
// NUMERIC(12,3); decimal.Decimal keeps energy totals free of float drift.
type Measurement struct {
	ID             string          `json:"id"`
	OrganizationID string          `json:"organization_id"`
	DeviceID       string          `json:"device_id"`
	MeasuredAt     time.Time       `json:"measured_at"`
	Value          decimal.Decimal `json:"value"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
	DeletedAt      *time.Time      `json:"deleted_at,omitempty"`

	// DeviceName is populated by eager-joined queries.
	DeviceName string `json:"device_name,omitempty"`
}
