package repository

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/CRLTS-SNOW/ECO-ENERGY-EV1-BACKEND-INACAPLS/internal/domain"
)

func testPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	if os.Getenv("INTEGRATION_TEST") != "true" {
		t.Skip("Skipping integration test. Set INTEGRATION_TEST=true to run")
	}

	host := os.Getenv("TEST_POSTGRES_HOST")
	if host == "" {
		host = "localhost"
	}
	dbname := os.Getenv("TEST_POSTGRES_DATABASE")
	if dbname == "" {
		dbname = "ecoenergy"
	}
	dsn := fmt.Sprintf("host=%s port=5432 user=postgres password=postgres dbname=%s sslmode=disable", host, dbname)

	pool, err := pgxpool.New(context.Background(), dsn)
	if err != nil {
		t.Fatalf("failed to create pool: %v", err)
	}
	t.Cleanup(pool.Close)
	return pool
}

func TestPostgresOrganizationRepository_SoftDelete_Integration(t *testing.T) {
	pool := testPool(t)
	repo := NewPostgresOrganizationRepository(pool)
	ctx := context.Background()

	now := time.Now()
	org := &domain.Organization{
		ID:        uuid.New().String(),
		Name:      "test-org-" + uuid.New().String(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := repo.Create(ctx, org); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	defer func() {
		_, _ = pool.Exec(ctx, "DELETE FROM organizations WHERE id = $1", org.ID)
	}()

	got, err := repo.GetByID(ctx, org.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if got == nil || got.ID != org.ID {
		t.Fatalf("GetByID() = %v, want created organization", got)
	}

	if err := repo.SoftDelete(ctx, org.ID); err != nil {
		t.Fatalf("SoftDelete() error = %v", err)
	}

	got, err = repo.GetByID(ctx, org.ID)
	if err != nil {
		t.Fatalf("GetByID() after delete error = %v", err)
	}
	if got != nil {
		t.Errorf("GetByID() after delete = %v, want nil", got)
	}

	got, err = repo.GetByIDAny(ctx, org.ID)
	if err != nil {
		t.Fatalf("GetByIDAny() error = %v", err)
	}
	if got == nil {
		t.Fatal("GetByIDAny() = nil, want soft-deleted row")
	}
	if got.DeletedAt == nil {
		t.Fatal("GetByIDAny() DeletedAt = nil, want timestamp")
	}
	firstDeletedAt := *got.DeletedAt

	// Repeat deletes keep the original timestamp
	if err := repo.SoftDelete(ctx, org.ID); err != nil {
		t.Fatalf("SoftDelete() repeat error = %v", err)
	}
	got, err = repo.GetByIDAny(ctx, org.ID)
	if err != nil {
		t.Fatalf("GetByIDAny() error = %v", err)
	}
	if !got.DeletedAt.Equal(firstDeletedAt) {
		t.Errorf("DeletedAt changed on repeat delete: %v, want %v", got.DeletedAt, firstDeletedAt)
	}
}

func TestPostgresOrganizationRepository_ExistsByName_Integration(t *testing.T) {
	pool := testPool(t)
	repo := NewPostgresOrganizationRepository(pool)
	ctx := context.Background()

	name := "test-org-" + uuid.New().String()
	now := time.Now()
	org := &domain.Organization{ID: uuid.New().String(), Name: name, CreatedAt: now, UpdatedAt: now}
	if err := repo.Create(ctx, org); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	defer func() {
		_, _ = pool.Exec(ctx, "DELETE FROM organizations WHERE id = $1", org.ID)
	}()

	exists, err := repo.ExistsByName(ctx, name)
	if err != nil {
		t.Fatalf("ExistsByName() error = %v", err)
	}
	if !exists {
		t.Error("ExistsByName() = false, want true for live organization")
	}

	if err := repo.SoftDelete(ctx, org.ID); err != nil {
		t.Fatalf("SoftDelete() error = %v", err)
	}
	exists, err = repo.ExistsByName(ctx, name)
	if err != nil {
		t.Fatalf("ExistsByName() error = %v", err)
	}
	if exists {
		t.Error("ExistsByName() = true after soft delete, want false (name is reusable)")
	}
}
