//go:build integration

package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/stockroom/stockroom-api/internal/domains/warehouse/domain"
	"github.com/stockroom/stockroom-api/internal/domains/warehouse/ports"
	"github.com/stockroom/stockroom-api/internal/platform/migrations"
)

func setupWarehousePostgresContainer(t *testing.T) (*gorm.DB, func()) {
	ctx := context.Background()

	pgContainer, err := tcpostgres.RunContainer(ctx,
		testcontainers.WithImage("postgres:15-alpine"),
		tcpostgres.WithDatabase("stockroom_test"),
		tcpostgres.WithUsername("test"),
		tcpostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	err = migrations.Run(db)
	require.NoError(t, err)

	cleanup := func() {
		sqlDB, _ := db.DB()
		if sqlDB != nil {
			sqlDB.Close()
		}
		pgContainer.Terminate(ctx)
	}

	return db, cleanup
}

func TestRepository_PlacementsRoundTrip(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupWarehousePostgresContainer(t)
	defer cleanup()

	repo := NewRepository(db)
	ctx := context.Background()

	shelfA, err := domain.NewStorageLocation("L1", "Shelf A", "Aisle 1", nil, "")
	require.NoError(t, err)
	shelfB, err := domain.NewStorageLocation("L2", "Shelf B", "Aisle 2", nil, "")
	require.NoError(t, err)
	_, err = repo.Save(ctx, shelfA)
	require.NoError(t, err)
	_, err = repo.Save(ctx, shelfB)
	require.NoError(t, err)

	require.NoError(t, repo.AssignProduct(ctx, "P1", "L2"))
	require.NoError(t, repo.AssignProduct(ctx, "P1", "L1"))
	require.NoError(t, repo.AssignProduct(ctx, "P1", "L1")) // idempotent

	locations, err := repo.LocationsForProduct(ctx, "P1")
	require.NoError(t, err)
	require.Len(t, locations, 2)
	assert.Equal(t, "L1", locations[0].ID)
	assert.Equal(t, "L2", locations[1].ID)

	require.NoError(t, repo.UnassignProduct(ctx, "P1", "L1"))
	locations, err = repo.LocationsForProduct(ctx, "P1")
	require.NoError(t, err)
	require.Len(t, locations, 1)
	assert.Equal(t, "L2", locations[0].ID)

	assert.ErrorIs(t, repo.UnassignProduct(ctx, "P1", "L1"), ports.ErrPlacementNotFound)
}

func TestRepository_AssignToMissingLocation(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupWarehousePostgresContainer(t)
	defer cleanup()

	repo := NewRepository(db)
	assert.ErrorIs(t, repo.AssignProduct(context.Background(), "P1", "missing"), ports.ErrNotFound)
}

func TestRepository_DeleteLocationRemovesPlacements(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupWarehousePostgresContainer(t)
	defer cleanup()

	repo := NewRepository(db)
	ctx := context.Background()

	shelf, err := domain.NewStorageLocation("L1", "Shelf A", "Aisle 1", nil, "")
	require.NoError(t, err)
	_, err = repo.Save(ctx, shelf)
	require.NoError(t, err)
	require.NoError(t, repo.AssignProduct(ctx, "P1", "L1"))

	require.NoError(t, repo.Delete(ctx, "L1"))

	locations, err := repo.LocationsForProduct(ctx, "P1")
	require.NoError(t, err)
	assert.Empty(t, locations)

	_, err = repo.GetByID(ctx, "L1")
	assert.ErrorIs(t, err, ports.ErrNotFound)
}
