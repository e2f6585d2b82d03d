package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/CRLTS-SNOW/ECO-ENERGY-EV1-BACKEND-INACAPLS/internal/domain"
)

const alertColumns = `a.id, a.organization_id, a.device_id, a.severity, a.message, a.occurred_at,
	a.created_at, a.updated_at, a.deleted_at, d.name as device_name`

const alertJoins = `FROM alerts a
	JOIN devices d ON d.id = a.device_id`

// PostgresAlertRepository implements AlertRepository using PostgreSQL
type PostgresAlertRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresAlertRepository creates a new PostgresAlertRepository
func NewPostgresAlertRepository(pool *pgxpool.Pool) *PostgresAlertRepository {
	return &PostgresAlertRepository{pool: pool}
}

func (r *PostgresAlertRepository) queryAlerts(ctx context.Context, query string, args ...any) ([]*domain.Alert, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	alerts := make([]*domain.Alert, 0)
	for rows.Next() {
		a := &domain.Alert{}
		err := rows.Scan(
			&a.ID,
			&a.OrganizationID,
			&a.DeviceID,
			&a.Severity,
			&a.Message,
			&a.OccurredAt,
			&a.CreatedAt,
			&a.UpdatedAt,
			&a.DeletedAt,
			&a.DeviceName,
		)
		if err != nil {
			return nil, err
		}
		alerts = append(alerts, a)
	}
	return alerts, rows.Err()
}

// Create creates a new alert
func (r *PostgresAlertRepository) Create(ctx context.Context, alert *domain.Alert) error {
	query := `
		INSERT INTO alerts (id, organization_id, device_id, severity, message, occurred_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.pool.Exec(ctx, query,
		alert.ID,
		alert.OrganizationID,
		alert.DeviceID,
		alert.Severity,
		alert.Message,
		alert.OccurredAt,
		alert.CreatedAt,
		alert.UpdatedAt,
	)
	return err
}

// ListSince retrieves live alerts with occurred_at >= since, newest first
func (r *PostgresAlertRepository) ListSince(ctx context.Context, orgID string, since time.Time, limit, offset int) ([]*domain.Alert, error) {
	query := `SELECT ` + alertColumns + ` ` + alertJoins + `
		WHERE a.organization_id = $1 AND a.occurred_at >= $2 AND a.deleted_at IS NULL
		ORDER BY a.occurred_at DESC
		LIMIT $3 OFFSET $4`
	return r.queryAlerts(ctx, query, orgID, since, limit, offset)
}

// CountSince counts live alerts with occurred_at >= since
func (r *PostgresAlertRepository) CountSince(ctx context.Context, orgID string, since time.Time) (int, error) {
	query := `SELECT COUNT(*) FROM alerts
		WHERE organization_id = $1 AND occurred_at >= $2 AND deleted_at IS NULL`
	var total int
	err := r.pool.QueryRow(ctx, query, orgID, since).Scan(&total)
	return total, err
}

// SeverityCountsSince counts live alerts grouped by severity. Severity codes
// happen to sort alphabetically in display-importance order
// (critical < high < medium), so ORDER BY severity is the display order.
func (r *PostgresAlertRepository) SeverityCountsSince(ctx context.Context, orgID string, since time.Time) ([]*domain.SeverityCount, error) {
	query := `SELECT severity, COUNT(*) FROM alerts
		WHERE organization_id = $1 AND occurred_at >= $2 AND deleted_at IS NULL
		GROUP BY severity
		ORDER BY severity`
	rows, err := r.pool.Query(ctx, query, orgID, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make([]*domain.SeverityCount, 0)
	for rows.Next() {
		sc := &domain.SeverityCount{}
		if err := rows.Scan(&sc.Severity, &sc.Total); err != nil {
			return nil, err
		}
		sc.SeverityDisplay = sc.Severity.DisplayName()
		counts = append(counts, sc)
	}
	return counts, rows.Err()
}

// ListByDevice retrieves live alerts for a device, newest first
func (r *PostgresAlertRepository) ListByDevice(ctx context.Context, deviceID string, limit int) ([]*domain.Alert, error) {
	query := `SELECT ` + alertColumns + ` ` + alertJoins + `
		WHERE a.device_id = $1 AND a.deleted_at IS NULL
		ORDER BY a.occurred_at DESC`
	if limit > 0 {
		query += ` LIMIT $2`
		return r.queryAlerts(ctx, query, deviceID, limit)
	}
	return r.queryAlerts(ctx, query, deviceID)
}

// FirstOrganizationID returns the organization id of any alert row
func (r *PostgresAlertRepository) FirstOrganizationID(ctx context.Context) (string, error) {
	query := `SELECT organization_id FROM alerts LIMIT 1`
	var orgID string
	err := r.pool.QueryRow(ctx, query).Scan(&orgID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		return "", err
	}
	return orgID, nil
}
