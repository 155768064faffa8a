package sources

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	catalogmemory "github.com/stockroom/stockroom-api/internal/domains/catalog/adapters/memory"
	catalogdomain "github.com/stockroom/stockroom-api/internal/domains/catalog/domain"
	ordersmemory "github.com/stockroom/stockroom-api/internal/domains/orders/adapters/memory"
	ordersdomain "github.com/stockroom/stockroom-api/internal/domains/orders/domain"
	pickingapp "github.com/stockroom/stockroom-api/internal/domains/picking/application"
	pickingports "github.com/stockroom/stockroom-api/internal/domains/picking/ports"
	warehousememory "github.com/stockroom/stockroom-api/internal/domains/warehouse/adapters/memory"
	warehousedomain "github.com/stockroom/stockroom-api/internal/domains/warehouse/domain"
)

func TestRepositorySources_TranslateNotFound(t *testing.T) {
	src := NewRepositorySources(ordersmemory.NewRepository(), catalogmemory.NewRepository(), warehousememory.NewRepository())
	ctx := context.Background()

	_, err := src.GetOrderWithItems(ctx, "missing")
	require.ErrorIs(t, err, pickingports.ErrNotFound)

	_, err = src.GetProductByID(ctx, "missing")
	require.ErrorIs(t, err, pickingports.ErrNotFound)

	locations, err := src.GetLocationsForProduct(ctx, "missing")
	require.NoError(t, err)
	require.Empty(t, locations)
}

// End-to-end over the in-memory repositories: seed an order for a known and a
// deleted product, then resolve the pick list through the real source adapter.
func TestRepositorySources_EndToEndPickList(t *testing.T) {
	ctx := context.Background()
	orderRepo := ordersmemory.NewRepository()
	productRepo := catalogmemory.NewRepository()
	warehouseRepo := warehousememory.NewRepository()

	widget, err := catalogdomain.NewProduct("P1", "Widget", "WID-001", decimal.NewFromInt(10))
	require.NoError(t, err)
	_, err = productRepo.Save(ctx, widget)
	require.NoError(t, err)

	shelf, err := warehousedomain.NewStorageLocation("L1", "Shelf A", "Aisle 1", nil, "")
	require.NoError(t, err)
	_, err = warehouseRepo.Save(ctx, shelf)
	require.NoError(t, err)
	require.NoError(t, warehouseRepo.AssignProduct(ctx, "P1", "L1"))

	order := &ordersdomain.Order{
		ID:     "ORD-1",
		Status: ordersdomain.StatusPlaced,
		Items: []ordersdomain.OrderItem{
			{ProductID: "P1", Quantity: 3},
			{ProductID: "P2", Quantity: 1},
		},
	}
	_, err = orderRepo.Save(ctx, order)
	require.NoError(t, err)

	src := NewRepositorySources(orderRepo, productRepo, warehouseRepo)
	resolver := pickingapp.NewResolver(src, src, src)

	instructions, err := resolver.GeneratePickList(ctx, "ORD-1")
	require.NoError(t, err)
	require.Len(t, instructions, 2)
	require.Equal(t, "Widget", instructions[0].ProductName)
	require.Equal(t, "L1", instructions[0].AvailableLocations[0].ID)
	require.Equal(t, pickingapp.UnknownProductName, instructions[1].ProductName)
	require.Empty(t, instructions[1].AvailableLocations)
}
