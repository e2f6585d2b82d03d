package repository

import (
	"context"

	"github.com/CRLTS-SNOW/ECO-ENERGY-EV1-BACKEND-INACAPLS/internal/domain"
)

// ZoneRepository defines the interface for zone data access
type ZoneRepository interface {
	// Create creates a new zone
	Create(ctx context.Context, zone *domain.Zone) error
	// GetByID retrieves a live zone by ID
	GetByID(ctx context.Context, id string) (*domain.Zone, error)
	// ListByOrganization retrieves live zones for an organization ordered by name
	ListByOrganization(ctx context.Context, orgID string) ([]*domain.Zone, error)
	// ExistsByName checks if a live zone exists with the given name in the organization
	ExistsByName(ctx context.Context, orgID, name string) (bool, error)
	// SoftDelete soft deletes a zone
	SoftDelete(ctx context.Context, id string) error
}
