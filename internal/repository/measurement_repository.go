package repository

import (
	"context"

	"github.com/CRLTS-SNOW/ECO-ENERGY-EV1-BACKEND-INACAPLS/internal/domain"
)

// MeasurementRepository defines the interface for measurement data access.
// Listing methods eager-join the owning device name in the same query.
type MeasurementRepository interface {
	// Create creates a new measurement
	Create(ctx context.Context, measurement *domain.Measurement) error
	// Latest retrieves the newest live measurements for an organization
	Latest(ctx context.Context, orgID string, limit int) ([]*domain.Measurement, error)
	// ListByOrganization retrieves live measurements ordered by measured_at descending
	ListByOrganization(ctx context.Context, orgID string, limit, offset int) ([]*domain.Measurement, error)
	// CountByOrganization counts live measurements for an organization
	CountByOrganization(ctx context.Context, orgID string) (int, error)
	// ListByDevice retrieves live measurements for a device, newest first,
	// capped at limit (limit <= 0 means no cap)
	ListByDevice(ctx context.Context, deviceID string, limit int) ([]*domain.Measurement, error)
	// FirstOrganizationID returns the organization id of any measurement row,
	// soft-deleted rows included, or "" when the table is empty
	FirstOrganizationID(ctx context.Context) (string, error)
}
