package repository

import (
	"context"

	"github.com/CRLTS-SNOW/ECO-ENERGY-EV1-BACKEND-INACAPLS/internal/domain"
)

// DeviceRepository defines the interface for device data access. Listing and
// lookup methods eager-join category and zone names in the same query.
type DeviceRepository interface {
	// Create creates a new device
	Create(ctx context.Context, device *domain.Device) error
	// GetByID retrieves a live device by ID with category/zone names resolved
	GetByID(ctx context.Context, id string) (*domain.Device, error)
	// List retrieves live devices for an organization ordered by name.
	// categoryID filters by exact category id when non-empty.
	List(ctx context.Context, orgID, categoryID string, limit, offset int) ([]*domain.Device, error)
	// Count counts live devices for an organization with the same filter as List
	Count(ctx context.Context, orgID, categoryID string) (int, error)
	// CountByCategory counts live devices grouped by category, ordered by category name
	CountByCategory(ctx context.Context, orgID string) ([]*domain.GroupCount, error)
	// CountByZone counts live devices grouped by zone, ordered by zone name
	CountByZone(ctx context.Context, orgID string) ([]*domain.GroupCount, error)
	// CountByCategoryID counts live devices referencing a category
	CountByCategoryID(ctx context.Context, categoryID string) (int, error)
	// CountByZoneID counts live devices referencing a zone
	CountByZoneID(ctx context.Context, zoneID string) (int, error)
	// ExistsByName checks if a live device exists with the given name in the organization
	ExistsByName(ctx context.Context, orgID, name string) (bool, error)
	// FirstOrganizationID returns the organization id of any device row,
	// soft-deleted rows included, or "" when the table is empty
	FirstOrganizationID(ctx context.Context) (string, error)
	// SoftDelete soft deletes a device
	SoftDelete(ctx context.Context, id string) error
}
