package domain

import (
	"time"
)

// Zone is a physical location within an organization (e.g. "Roof", "Basement").
// Name is unique per organization.
type Zone struct {
	ID             string     `json:"id"`
	OrganizationID string     `json:"organization_id"`
	Name           string     `json:"name"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
	DeletedAt      *time.Time `json:"deleted_at,omitempty"`
}
