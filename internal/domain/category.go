package domain

import (
	"time"
)

// Category classifies devices within an organization (e.g. "HVAC", "Lighting").
// Name is unique per organization.
type Category struct {
	ID             string     `json:"id"`
	OrganizationID string     `json:"organization_id"`
	Name           string     `json:"name"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
	DeletedAt      *time.Time `json:"deleted_at,omitempty"`
}
