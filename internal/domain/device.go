package domain

import (
	"time"
)

// Device is a monitored energy device. It references exactly one category and
// one zone; a referenced category/zone cannot be deleted while the device is
// live. IsActive is an operational flag independent of soft delete.
type Device struct {
	ID             string     `json:"id"`
	OrganizationID string     `json:"organization_id"`
	CategoryID     string     `json:"category_id"`
	ZoneID         string     `json:"zone_id"`
	Name           string     `json:"name"`
	IsActive       bool       `json:"is_active"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
	DeletedAt      *time.Time `json:"deleted_at,omitempty"`

	// CategoryName and ZoneName are denormalized snapshots populated by
	// eager-joined queries. Soft-deleted references still resolve here so
	// live devices are never silently dropped from listings.
	CategoryName string `json:"category_name,omitempty"`
	ZoneName     string `json:"zone_name,omitempty"`
}

// GroupCount is one bucket of a device aggregation, keyed by the stable
// category/zone id with the display name resolved alongside it.
type GroupCount struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Total int    `json:"total"`
}
