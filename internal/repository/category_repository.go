package repository

import (
	"context"

	"github.com/CRLTS-SNOW/ECO-ENERGY-EV1-BACKEND-INACAPLS/internal/domain"
)

// CategoryRepository defines the interface for category data access
type CategoryRepository interface {
	// Create creates a new category
	Create(ctx context.Context, category *domain.Category) error
	// GetByID retrieves a live category by ID
	GetByID(ctx context.Context, id string) (*domain.Category, error)
	// ListByOrganization retrieves live categories for an organization ordered by name
	ListByOrganization(ctx context.Context, orgID string) ([]*domain.Category, error)
	// ExistsByName checks if a live category exists with the given name in the organization
	ExistsByName(ctx context.Context, orgID, name string) (bool, error)
	// FirstOrganizationID returns the organization id of any category row,
	// soft-deleted rows included, or "" when the table is empty
	FirstOrganizationID(ctx context.Context) (string, error)
	// SoftDelete soft deletes a category
	SoftDelete(ctx context.Context, id string) error
}
