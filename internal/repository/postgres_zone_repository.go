package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/CRLTS-SNOW/ECO-ENERGY-EV1-BACKEND-INACAPLS/internal/domain"
)

const zoneColumns = `id, organization_id, name, created_at, updated_at, deleted_at`

// PostgresZoneRepository implements ZoneRepository using PostgreSQL
type PostgresZoneRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresZoneRepository creates a new PostgresZoneRepository
func NewPostgresZoneRepository(pool *pgxpool.Pool) *PostgresZoneRepository {
	return &PostgresZoneRepository{pool: pool}
}

func (r *PostgresZoneRepository) scanZone(row pgx.Row) (*domain.Zone, error) {
	zone := &domain.Zone{}
	err := row.Scan(
		&zone.ID,
		&zone.OrganizationID,
		&zone.Name,
		&zone.CreatedAt,
		&zone.UpdatedAt,
		&zone.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return zone, nil
}

// Create creates a new zone
func (r *PostgresZoneRepository) Create(ctx context.Context, zone *domain.Zone) error {
	query := `
		INSERT INTO zones (id, organization_id, name, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := r.pool.Exec(ctx, query,
		zone.ID,
		zone.OrganizationID,
		zone.Name,
		zone.CreatedAt,
		zone.UpdatedAt,
	)
	return err
}

// GetByID retrieves a live zone by ID
func (r *PostgresZoneRepository) GetByID(ctx context.Context, id string) (*domain.Zone, error) {
	query := `SELECT ` + zoneColumns + ` FROM zones WHERE id = $1 AND deleted_at IS NULL`
	return r.scanZone(r.pool.QueryRow(ctx, query, id))
}

// ListByOrganization retrieves live zones for an organization ordered by name
func (r *PostgresZoneRepository) ListByOrganization(ctx context.Context, orgID string) ([]*domain.Zone, error) {
	query := `SELECT ` + zoneColumns + ` FROM zones
		WHERE organization_id = $1 AND deleted_at IS NULL
		ORDER BY name`
	rows, err := r.pool.Query(ctx, query, orgID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	zones := make([]*domain.Zone, 0)
	for rows.Next() {
		zone := &domain.Zone{}
		err := rows.Scan(
			&zone.ID,
			&zone.OrganizationID,
			&zone.Name,
			&zone.CreatedAt,
			&zone.UpdatedAt,
			&zone.DeletedAt,
		)
		if err != nil {
			return nil, err
		}
		zones = append(zones, zone)
	}
	return zones, rows.Err()
}

// ExistsByName checks if a live zone exists with the given name in the organization
func (r *PostgresZoneRepository) ExistsByName(ctx context.Context, orgID, name string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM zones WHERE organization_id = $1 AND name = $2 AND deleted_at IS NULL)`
	var exists bool
	err := r.pool.QueryRow(ctx, query, orgID, name).Scan(&exists)
	return exists, err
}

// SoftDelete soft deletes a zone. Idempotent: repeated calls are no-ops.
func (r *PostgresZoneRepository) SoftDelete(ctx context.Context, id string) error {
	query := `
		UPDATE zones
		SET deleted_at = $2, updated_at = $2
		WHERE id = $1 AND deleted_at IS NULL
	`
	_, err := r.pool.Exec(ctx, query, id, time.Now())
	return err
}
