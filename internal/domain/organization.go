package domain

import (
	"time"
)

// Organization represents a tenant in the multi-tenant system. It is the root
// of data isolation: every other entity belongs to exactly one organization.
type Organization struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"` // Soft delete support
}

// IsDeleted reports whether the organization has been soft deleted.
func (o *Organization) IsDeleted() bool {
	return o.DeletedAt != nil
}
