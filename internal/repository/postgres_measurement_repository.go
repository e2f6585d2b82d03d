package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/CRLTS-SNOW/ECO-ENERGY-EV1-BACKEND-INACAPLS/internal/domain"
)

const measurementColumns = `m.id, m.organization_id, m.device_id, m.measured_at, m.value,
	m.created_at, m.updated_at, m.deleted_at, d.name as device_name`

const measurementJoins = `FROM measurements m
	JOIN devices d ON d.id = m.device_id`

// PostgresMeasurementRepository implements MeasurementRepository using PostgreSQL
type PostgresMeasurementRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresMeasurementRepository creates a new PostgresMeasurementRepository
func NewPostgresMeasurementRepository(pool *pgxpool.Pool) *PostgresMeasurementRepository {
	return &PostgresMeasurementRepository{pool: pool}
}

func (r *PostgresMeasurementRepository) queryMeasurements(ctx context.Context, query string, args ...any) ([]*domain.Measurement, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	measurements := make([]*domain.Measurement, 0)
	for rows.Next() {
		m := &domain.Measurement{}
		err := rows.Scan(
			&m.ID,
			&m.OrganizationID,
			&m.DeviceID,
			&m.MeasuredAt,
			&m.Value,
			&m.CreatedAt,
			&m.UpdatedAt,
			&m.DeletedAt,
			&m.DeviceName,
		)
		if err != nil {
			return nil, err
		}
		measurements = append(measurements, m)
	}
	return measurements, rows.Err()
}

// Create creates a new measurement
func (r *PostgresMeasurementRepository) Create(ctx context.Context, measurement *domain.Measurement) error {
	query := `
		INSERT INTO measurements (id, organization_id, device_id, measured_at, value, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.pool.Exec(ctx, query,
		measurement.ID,
		measurement.OrganizationID,
		measurement.DeviceID,
		measurement.MeasuredAt,
		measurement.Value,
		measurement.CreatedAt,
		measurement.UpdatedAt,
	)
	return err
}

// Latest retrieves the newest live measurements for an organization
func (r *PostgresMeasurementRepository) Latest(ctx context.Context, orgID string, limit int) ([]*domain.Measurement, error) {
	query := `SELECT ` + measurementColumns + ` ` + measurementJoins + `
		WHERE m.organization_id = $1 AND m.deleted_at IS NULL
		ORDER BY m.measured_at DESC
		LIMIT $2`
	return r.queryMeasurements(ctx, query, orgID, limit)
}

// ListByOrganization retrieves live measurements ordered by measured_at descending
func (r *PostgresMeasurementRepository) ListByOrganization(ctx context.Context, orgID string, limit, offset int) ([]*domain.Measurement, error) {
	query := `SELECT ` + measurementColumns + ` ` + measurementJoins + `
		WHERE m.organization_id = $1 AND m.deleted_at IS NULL
		ORDER BY m.measured_at DESC
		LIMIT $2 OFFSET $3`
	return r.queryMeasurements(ctx, query, orgID, limit, offset)
}

// CountByOrganization counts live measurements for an organization
func (r *PostgresMeasurementRepository) CountByOrganization(ctx context.Context, orgID string) (int, error) {
	query := `SELECT COUNT(*) FROM measurements WHERE organization_id = $1 AND deleted_at IS NULL`
	var total int
	err := r.pool.QueryRow(ctx, query, orgID).Scan(&total)
	return total, err
}

// ListByDevice retrieves live measurements for a device, newest first
func (r *PostgresMeasurementRepository) ListByDevice(ctx context.Context, deviceID string, limit int) ([]*domain.Measurement, error) {
	query := `SELECT ` + measurementColumns + ` ` + measurementJoins + `
		WHERE m.device_id = $1 AND m.deleted_at IS NULL
		ORDER BY m.measured_at DESC`
	if limit > 0 {
		query += ` LIMIT $2`
		return r.queryMeasurements(ctx, query, deviceID, limit)
	}
	return r.queryMeasurements(ctx, query, deviceID)
}

// FirstOrganizationID returns the organization id of any measurement row
func (r *PostgresMeasurementRepository) FirstOrganizationID(ctx context.Context) (string, error) {
	query := `SELECT organization_id FROM measurements LIMIT 1`
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
