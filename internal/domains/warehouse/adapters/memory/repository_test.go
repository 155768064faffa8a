package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/stockroom/stockroom-api/internal/domains/warehouse/domain"
	"github.com/stockroom/stockroom-api/internal/domains/warehouse/ports"
)

func TestAssignAndListLocationsForProduct(t *testing.T) {
	repo := NewRepository()
	ctx := context.Background()

	for _, id := range []string{"L1", "L2"} {
		location, err := domain.NewStorageLocation(id, "Shelf "+id, "", nil, "")
		require.NoError(t, err)
		_, err = repo.Save(ctx, location)
		require.NoError(t, err)
	}

	require.NoError(t, repo.AssignProduct(ctx, "P1", "L1"))
	require.NoError(t, repo.AssignProduct(ctx, "P1", "L2"))
	// assigning twice is idempotent
	require.NoError(t, repo.AssignProduct(ctx, "P1", "L1"))

	locations, err := repo.LocationsForProduct(ctx, "P1")
	require.NoError(t, err)
	require.Len(t, locations, 2)
	require.Equal(t, "L1", locations[0].ID)
	require.Equal(t, "L2", locations[1].ID)
}

func TestAssignProduct_UnknownLocation(t *testing.T) {
	repo := NewRepository()
	err := repo.AssignProduct(context.Background(), "P1", "missing")
	require.ErrorIs(t, err, ports.ErrNotFound)
}

func TestUnassignProduct_MissingPlacement(t *testing.T) {
	repo := NewRepository()
	err := repo.UnassignProduct(context.Background(), "P1", "L1")
	require.ErrorIs(t, err, ports.ErrPlacementNotFound)
}

func TestDeleteLocation_RemovesPlacements(t *testing.T) {
	repo := NewRepository()
	ctx := context.Background()

	location, err := domain.NewStorageLocation("L1", "Shelf A", "", nil, "")
	require.NoError(t, err)
	_, err = repo.Save(ctx, location)
	require.NoError(t, err)
	require.NoError(t, repo.AssignProduct(ctx, "P1", "L1"))

	require.NoError(t, repo.Delete(ctx, "L1"))

	locations, err := repo.LocationsForProduct(ctx, "P1")
	require.NoError(t, err)
	require.Empty(t, locations)
}

func TestLocationsForProduct_EmptyWithoutPlacements(t *testing.T) {
	repo := NewRepository()
	locations, err := repo.LocationsForProduct(context.Background(), "P-unknown")
	require.NoError(t, err)
	require.NotNil(t, locations)
	require.Empty(t, locations)
}
