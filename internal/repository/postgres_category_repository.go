package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/CRLTS-SNOW/ECO-ENERGY-EV1-BACKEND-INACAPLS/internal/domain"
)

const categoryColumns = `id, organization_id, name, created_at, updated_at, deleted_at`

// PostgresCategoryRepository implements CategoryRepository using PostgreSQL
type PostgresCategoryRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresCategoryRepository creates a new PostgresCategoryRepository
func NewPostgresCategoryRepository(pool *pgxpool.Pool) *PostgresCategoryRepository {
	return &PostgresCategoryRepository{pool: pool}
}

func (r *PostgresCategoryRepository) scanCategory(row pgx.Row) (*domain.Category, error) {
	category := &domain.Category{}
	err := row.Scan(
		&category.ID,
		&category.OrganizationID,
		&category.Name,
		&category.CreatedAt,
		&category.UpdatedAt,
		&category.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return category, nil
}

// Create creates a new category
func (r *PostgresCategoryRepository) Create(ctx context.Context, category *domain.Category) error {
	query := `
		INSERT INTO categories (id, organization_id, name, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := r.pool.Exec(ctx, query,
		category.ID,
		category.OrganizationID,
		category.Name,
		category.CreatedAt,
		category.UpdatedAt,
	)
	return err
}

// GetByID retrieves a live category by ID
func (r *PostgresCategoryRepository) GetByID(ctx context.Context, id string) (*domain.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE id = $1 AND deleted_at IS NULL`
	return r.scanCategory(r.pool.QueryRow(ctx, query, id))
}

// ListByOrganization retrieves live categories for an organization ordered by name
func (r *PostgresCategoryRepository) ListByOrganization(ctx context.Context, orgID string) ([]*domain.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories
		WHERE organization_id = $1 AND deleted_at IS NULL
		ORDER BY name`
	rows, err := r.pool.Query(ctx, query, orgID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := make([]*domain.Category, 0)
	for rows.Next() {
		category := &domain.Category{}
		err := rows.Scan(
			&category.ID,
			&category.OrganizationID,
			&category.Name,
			&category.CreatedAt,
			&category.UpdatedAt,
			&category.DeletedAt,
		)
		if err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}
	return categories, rows.Err()
}

// ExistsByName checks if a live category exists with the given name in the organization
func (r *PostgresCategoryRepository) ExistsByName(ctx context.Context, orgID, name string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM categories WHERE organization_id = $1 AND name = $2 AND deleted_at IS NULL)`
	var exists bool
	err := r.pool.QueryRow(ctx, query, orgID, name).Scan(&exists)
	return exists, err
}

// FirstOrganizationID returns the organization id of any category row
func (r *PostgresCategoryRepository) FirstOrganizationID(ctx context.Context) (string, error) {
	query := `SELECT organization_id FROM categories LIMIT 1`
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

// SoftDelete soft deletes a category. Idempotent: repeated calls are no-ops.
func (r *PostgresCategoryRepository) SoftDelete(ctx context.Context, id string) error {
	query := `
		UPDATE categories
		SET deleted_at = $2, updated_at = $2
		WHERE id = $1 AND deleted_at IS NULL
	`
	_, err := r.pool.Exec(ctx, query, id, time.Now())
	return err
}
