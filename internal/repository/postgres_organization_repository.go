package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/CRLTS-SNOW/ECO-ENERGY-EV1-BACKEND-INACAPLS/internal/domain"
)

const organizationColumns = `id, name, created_at, updated_at, deleted_at`

// PostgresOrganizationRepository implements OrganizationRepository using PostgreSQL
type PostgresOrganizationRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresOrganizationRepository creates a new PostgresOrganizationRepository
func NewPostgresOrganizationRepository(pool *pgxpool.Pool) *PostgresOrganizationRepository {
	return &PostgresOrganizationRepository{pool: pool}
}

func (r *PostgresOrganizationRepository) scanOrganization(row pgx.Row) (*domain.Organization, error) {
	org := &domain.Organization{}
	err := row.Scan(
		&org.ID,
		&org.Name,
		&org.CreatedAt,
		&org.UpdatedAt,
		&org.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return org, nil
}

// Create creates a new organization
func (r *PostgresOrganizationRepository) Create(ctx context.Context, org *domain.Organization) error {
	query := `
		INSERT INTO organizations (id, name, created_at, updated_at)
		VALUES ($1, $2, $3, $4)
	`
	_, err := r.pool.Exec(ctx, query, org.ID, org.Name, org.CreatedAt, org.UpdatedAt)
	return err
}

// GetByID retrieves a live organization by ID
func (r *PostgresOrganizationRepository) GetByID(ctx context.Context, id string) (*domain.Organization, error) {
	query := `SELECT ` + organizationColumns + ` FROM organizations WHERE id = $1 AND deleted_at IS NULL`
	return r.scanOrganization(r.pool.QueryRow(ctx, query, id))
}

// GetByIDAny retrieves an organization by ID, soft-deleted rows included
func (r *PostgresOrganizationRepository) GetByIDAny(ctx context.Context, id string) (*domain.Organization, error) {
	query := `SELECT ` + organizationColumns + ` FROM organizations WHERE id = $1`
	return r.scanOrganization(r.pool.QueryRow(ctx, query, id))
}

// FirstLive retrieves the first live organization ordered by name
func (r *PostgresOrganizationRepository) FirstLive(ctx context.Context) (*domain.Organization, error) {
	query := `SELECT ` + organizationColumns + ` FROM organizations WHERE deleted_at IS NULL ORDER BY name LIMIT 1`
	return r.scanOrganization(r.pool.QueryRow(ctx, query))
}

// ExistsByName checks if a live organization exists with the given name
func (r *PostgresOrganizationRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM organizations WHERE name = $1 AND deleted_at IS NULL)`
	var exists bool
	err := r.pool.QueryRow(ctx, query, name).Scan(&exists)
	return exists, err
}

// SoftDelete soft deletes an organization by setting deleted_at. Repeated
// calls are no-ops: the guard on deleted_at keeps the first timestamp.
func (r *PostgresOrganizationRepository) SoftDelete(ctx context.Context, id string) error {
	query := `
		UPDATE organizations
		SET deleted_at = $2, updated_at = $2
		WHERE id = $1 AND deleted_at IS NULL
	`
	_, err := r.pool.Exec(ctx, query, id, time.Now())
	return err
}
