package repository

import (
	"context"

	"github.com/CRLTS-SNOW/ECO-ENERGY-EV1-BACKEND-INACAPLS/internal/domain"
)

// OrganizationRepository defines the interface for organization data access.
// Every method except GetByIDAny sees only live (deleted_at IS NULL) rows.
type OrganizationRepository interface {
	// Create creates a new organization
	Create(ctx context.Context, org *domain.Organization) error
	// GetByID retrieves a live organization by ID
	GetByID(ctx context.Context, id string) (*domain.Organization, error)
	// GetByIDAny retrieves an organization by ID including soft-deleted rows.
	// Used by the tenant fallback path, which must not go blank just because
	// the organization row itself was soft deleted.
	GetByIDAny(ctx context.Context, id string) (*domain.Organization, error)
	// FirstLive retrieves the first live organization ordered by name
	FirstLive(ctx context.Context) (*domain.Organization, error)
	// ExistsByName checks if a live organization exists with the given name
	ExistsByName(ctx context.Context, name string) (bool, error)
	// SoftDelete soft deletes an organization
	SoftDelete(ctx context.Context, id string) error
}
