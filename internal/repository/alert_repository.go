package repository

import (
	"context"
	"time"

	"github.com/CRLTS-SNOW/ECO-ENERGY-EV1-BACKEND-INACAPLS/internal/domain"
)

// AlertRepository defines the interface for alert data access. Weekly methods
// take the window start explicitly so listing and breakdown share one window.
type AlertRepository interface {
	// Create creates a new alert
	Create(ctx context.Context, alert *domain.Alert) error
	// ListSince retrieves live alerts with occurred_at >= since, newest first,
	// device name eager-joined
	ListSince(ctx context.Context, orgID string, since time.Time, limit, offset int) ([]*domain.Alert, error)
	// CountSince counts live alerts with occurred_at >= since
	CountSince(ctx context.Context, orgID string, since time.Time) (int, error)
	// SeverityCountsSince counts live alerts with occurred_at >= since grouped
	// by severity, ordered by severity code
	SeverityCountsSince(ctx context.Context, orgID string, since time.Time) ([]*domain.SeverityCount, error)
	// ListByDevice retrieves live alerts for a device, newest first,
	// capped at limit (limit <= 0 means no cap)
	ListByDevice(ctx context.Context, deviceID string, limit int) ([]*domain.Alert, error)
	// FirstOrganizationID returns the organization id of any alert row,
	// soft-deleted rows included, or "" when the table is empty
	FirstOrganizationID(ctx context.Context) (string, error)
}
