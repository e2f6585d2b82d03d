package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/CRLTS-SNOW/ECO-ENERGY-EV1-BACKEND-INACAPLS/internal/domain"
)

// deviceColumns joins category and zone names in the same query so listings
// never re-query per row. The joins are on id only, not on deleted_at: a live
// device keeps its name snapshots even when the referenced row is soft deleted.
const deviceColumns = `d.id, d.organization_id, d.category_id, d.zone_id, d.name, d.is_active,
	d.created_at, d.updated_at, d.deleted_at,
	c.name as category_name, z.name as zone_name`

const deviceJoins = `FROM devices d
	JOIN categories c ON c.id = d.category_id
	JOIN zones z ON z.id = d.zone_id`

// PostgresDeviceRepository implements DeviceRepository using PostgreSQL
type PostgresDeviceRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresDeviceRepository creates a new PostgresDeviceRepository
func NewPostgresDeviceRepository(pool *pgxpool.Pool) *PostgresDeviceRepository {
	return &PostgresDeviceRepository{pool: pool}
}

func (r *PostgresDeviceRepository) scanDevice(row pgx.Row) (*domain.Device, error) {
	device := &domain.Device{}
	err := row.Scan(
		&device.ID,
		&device.OrganizationID,
		&device.CategoryID,
		&device.ZoneID,
		&device.Name,
		&device.IsActive,
		&device.CreatedAt,
		&device.UpdatedAt,
		&device.DeletedAt,
		&device.CategoryName,
		&device.ZoneName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return device, nil
}

// Create creates a new device
func (r *PostgresDeviceRepository) Create(ctx context.Context, device *domain.Device) error {
	query := `
		INSERT INTO devices (id, organization_id, category_id, zone_id, name, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.pool.Exec(ctx, query,
		device.ID,
		device.OrganizationID,
		device.CategoryID,
		device.ZoneID,
		device.Name,
		device.IsActive,
		device.CreatedAt,
		device.UpdatedAt,
	)
	return err
}

// GetByID retrieves a live device by ID with category/zone names resolved
func (r *PostgresDeviceRepository) GetByID(ctx context.Context, id string) (*domain.Device, error) {
	query := `SELECT ` + deviceColumns + ` ` + deviceJoins + `
		WHERE d.id = $1 AND d.deleted_at IS NULL`
	return r.scanDevice(r.pool.QueryRow(ctx, query, id))
}

// List retrieves live devices for an organization ordered by name
func (r *PostgresDeviceRepository) List(ctx context.Context, orgID, categoryID string, limit, offset int) ([]*domain.Device, error) {
	query := `SELECT ` + deviceColumns + ` ` + deviceJoins + `
		WHERE d.organization_id = $1 AND d.deleted_at IS NULL
			AND ($2 = '' OR d.category_id::text = $2)
		ORDER BY d.name
		LIMIT $3 OFFSET $4`
	rows, err := r.pool.Query(ctx, query, orgID, categoryID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	devices := make([]*domain.Device, 0)
	for rows.Next() {
		device := &domain.Device{}
		err := rows.Scan(
			&device.ID,
			&device.OrganizationID,
			&device.CategoryID,
			&device.ZoneID,
			&device.Name,
			&device.IsActive,
			&device.CreatedAt,
			&device.UpdatedAt,
			&device.DeletedAt,
			&device.CategoryName,
			&device.ZoneName,
		)
		if err != nil {
			return nil, err
		}
		devices = append(devices, device)
	}
	return devices, rows.Err()
}

// Count counts live devices for an organization with the same filter as List
func (r *PostgresDeviceRepository) Count(ctx context.Context, orgID, categoryID string) (int, error) {
	query := `SELECT COUNT(*) FROM devices d
		WHERE d.organization_id = $1 AND d.deleted_at IS NULL
			AND ($2 = '' OR d.category_id::text = $2)`
	var total int
	err := r.pool.QueryRow(ctx, query, orgID, categoryID).Scan(&total)
	return total, err
}

// CountByCategory counts live devices grouped by category id, ordered by
// category name. Grouping on the id keeps buckets distinct even if two
// category generations share a name.
func (r *PostgresDeviceRepository) CountByCategory(ctx context.Context, orgID string) ([]*domain.GroupCount, error) {
	query := `SELECT c.id, c.name, COUNT(d.id)
		FROM devices d
		JOIN categories c ON c.id = d.category_id
		WHERE d.organization_id = $1 AND d.deleted_at IS NULL
		GROUP BY c.id, c.name
		ORDER BY c.name`
	return r.queryGroupCounts(ctx, query, orgID)
}

// CountByZone counts live devices grouped by zone id, ordered by zone name
func (r *PostgresDeviceRepository) CountByZone(ctx context.Context, orgID string) ([]*domain.GroupCount, error) {
	query := `SELECT z.id, z.name, COUNT(d.id)
		FROM devices d
		JOIN zones z ON z.id = d.zone_id
		WHERE d.organization_id = $1 AND d.deleted_at IS NULL
		GROUP BY z.id, z.name
		ORDER BY z.name`
	return r.queryGroupCounts(ctx, query, orgID)
}

func (r *PostgresDeviceRepository) queryGroupCounts(ctx context.Context, query, orgID string) ([]*domain.GroupCount, error) {
	rows, err := r.pool.Query(ctx, query, orgID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	groups := make([]*domain.GroupCount, 0)
	for rows.Next() {
		group := &domain.GroupCount{}
		if err := rows.Scan(&group.ID, &group.Name, &group.Total); err != nil {
			return nil, err
		}
		groups = append(groups, group)
	}
	return groups, rows.Err()
}

// CountByCategoryID counts live devices referencing a category
func (r *PostgresDeviceRepository) CountByCategoryID(ctx context.Context, categoryID string) (int, error) {
	query := `SELECT COUNT(*) FROM devices WHERE category_id = $1 AND deleted_at IS NULL`
	var total int
	err := r.pool.QueryRow(ctx, query, categoryID).Scan(&total)
	return total, err
}

// CountByZoneID counts live devices referencing a zone
func (r *PostgresDeviceRepository) CountByZoneID(ctx context.Context, zoneID string) (int, error) {
	query := `SELECT COUNT(*) FROM devices WHERE zone_id = $1 AND deleted_at IS NULL`
	var total int
	err := r.pool.QueryRow(ctx, query, zoneID).Scan(&total)
	return total, err
}

// ExistsByName checks if a live device exists with the given name in the organization
func (r *PostgresDeviceRepository) ExistsByName(ctx context.Context, orgID, name string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM devices WHERE organization_id = $1 AND name = $2 AND deleted_at IS NULL)`
	var exists bool
	err := r.pool.QueryRow(ctx, query, orgID, name).Scan(&exists)
	return exists, err
}

// FirstOrganizationID returns the organization id of any device row
func (r *PostgresDeviceRepository) FirstOrganizationID(ctx context.Context) (string, error) {
	query := `SELECT organization_id FROM devices LIMIT 1`
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

// SoftDelete soft deletes a device by setting deleted_at. Idempotent: the
// deleted_at guard means a second call changes nothing.
func (r *PostgresDeviceRepository) SoftDelete(ctx context.Context, id string) error {
	query := `
		UPDATE devices
		SET deleted_at = $2, updated_at = $2
		WHERE id = $1 AND deleted_at IS NULL
	`
	_, err := r.pool.Exec(ctx, query, id, time.Now())
	return err
}
