package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	catalogdomain "github.com/stockroom/stockroom-api/internal/domains/catalog/domain"
	ordersdomain "github.com/stockroom/stockroom-api/internal/domains/orders/domain"
	"github.com/stockroom/stockroom-api/internal/domains/picking/ports"
	warehousedomain "github.com/stockroom/stockroom-api/internal/domains/warehouse/domain"
)

type fakeSources struct {
	orders       map[string]*ordersdomain.Order
	products     map[string]*catalogdomain.Product
	locations    map[string][]warehousedomain.StorageLocation
	orderErr     error
	productErr   error
	locationsErr error
}

func newFakeSources() *fakeSources {
	return &fakeSources{
		orders:    map[string]*ordersdomain.Order{},
		products:  map[string]*catalogdomain.Product{},
		locations: map[string][]warehousedomain.StorageLocation{},
	}
}

func (f *fakeSources) GetOrderWithItems(_ context.Context, orderID string) (*ordersdomain.Order, error) {
	if f.orderErr != nil {
		return nil, f.orderErr
	}
	order, ok := f.orders[orderID]
	if !ok {
		return nil, ports.ErrNotFound
	}
	return order, nil
}

func (f *fakeSources) GetProductByID(_ context.Context, productID string) (*catalogdomain.Product, error) {
	if f.productErr != nil {
		return nil, f.productErr
	}
	product, ok := f.products[productID]
	if !ok {
		return nil, ports.ErrNotFound
	}
	return product, nil
}

func (f *fakeSources) GetLocationsForProduct(_ context.Context, productID string) ([]warehousedomain.StorageLocation, error) {
	if f.locationsErr != nil {
		return nil, f.locationsErr
	}
	return f.locations[productID], nil
}

func seedOrder(f *fakeSources, id string, items ...ordersdomain.OrderItem) {
	f.orders[id] = &ordersdomain.Order{
		ID:       id,
		PlacedAt: time.Now(),
		Total:    decimal.Zero,
		Status:   ordersdomain.StatusPlaced,
		Items:    items,
	}
}

func TestGeneratePickList_ResolvesProductsAndLocations(t *testing.T) {
	sources := newFakeSources()
	seedOrder(sources, "ORD-1",
		ordersdomain.OrderItem{ProductID: "P1", Quantity: 3},
		ordersdomain.OrderItem{ProductID: "P2", Quantity: 1},
	)
	sources.products["P1"] = &catalogdomain.Product{ID: "P1", Name: "Widget"}
	sources.locations["P1"] = []warehousedomain.StorageLocation{{ID: "L1", Name: "Shelf A"}}

	resolver := NewResolver(sources, sources, sources)
	instructions, err := resolver.GeneratePickList(context.Background(), "ORD-1")
	require.NoError(t, err)
	require.Len(t, instructions, 2)

	require.Equal(t, "Widget", instructions[0].ProductName)
	require.Equal(t, "P1", instructions[0].ProductID)
	require.Equal(t, int32(3), instructions[0].QuantityToPick)
	require.Len(t, instructions[0].AvailableLocations, 1)
	require.Equal(t, "L1", instructions[0].AvailableLocations[0].ID)

	require.Equal(t, UnknownProductName, instructions[1].ProductName)
	require.Equal(t, "P2", instructions[1].ProductID)
	require.Equal(t, int32(1), instructions[1].QuantityToPick)
	require.NotNil(t, instructions[1].AvailableLocations)
	require.Empty(t, instructions[1].AvailableLocations)
}

func TestGeneratePickList_PreservesLineItemOrder(t *testing.T) {
	sources := newFakeSources()
	items := []ordersdomain.OrderItem{
		{ProductID: "P3", Quantity: 5},
		{ProductID: "P1", Quantity: 2},
		{ProductID: "P2", Quantity: 7},
		{ProductID: "P1", Quantity: 1},
	}
	seedOrder(sources, "ORD-2", items...)

	resolver := NewResolver(sources, sources, sources)
	instructions, err := resolver.GeneratePickList(context.Background(), "ORD-2")
	require.NoError(t, err)
	require.Len(t, instructions, len(items))
	for i, item := range items {
		require.Equal(t, item.ProductID, instructions[i].ProductID)
		require.Equal(t, item.Quantity, instructions[i].QuantityToPick)
	}
}

func TestGeneratePickList_MissingOrderYieldsEmptyList(t *testing.T) {
	sources := newFakeSources()
	resolver := NewResolver(sources, sources, sources)

	instructions, err := resolver.GeneratePickList(context.Background(), "NOPE")
	require.NoError(t, err)
	require.NotNil(t, instructions)
	require.Empty(t, instructions)
}

func TestGeneratePickList_EmptyOrderYieldsEmptyList(t *testing.T) {
	sources := newFakeSources()
	seedOrder(sources, "ORD-EMPTY")
	resolver := NewResolver(sources, sources, sources)

	instructions, err := resolver.GeneratePickList(context.Background(), "ORD-EMPTY")
	require.NoError(t, err)
	require.Empty(t, instructions)
}

func TestGeneratePickList_OrderReadFailurePropagates(t *testing.T) {
	sources := newFakeSources()
	sources.orderErr = errors.New("connection reset")
	resolver := NewResolver(sources, sources, sources)

	_, err := resolver.GeneratePickList(context.Background(), "ORD-1")
	require.Error(t, err)
	require.Contains(t, err.Error(), "connection reset")
}

func TestGeneratePickList_ProductReadFailurePropagates(t *testing.T) {
	sources := newFakeSources()
	seedOrder(sources, "ORD-1", ordersdomain.OrderItem{ProductID: "P1", Quantity: 1})
	sources.productErr = errors.New("disk corrupted")
	resolver := NewResolver(sources, sources, sources)

	_, err := resolver.GeneratePickList(context.Background(), "ORD-1")
	require.Error(t, err)
}

func TestGeneratePickList_LocationReadFailurePropagates(t *testing.T) {
	sources := newFakeSources()
	seedOrder(sources, "ORD-1", ordersdomain.OrderItem{ProductID: "P1", Quantity: 1})
	sources.products["P1"] = &catalogdomain.Product{ID: "P1", Name: "Widget"}
	sources.locationsErr = errors.New("query timeout")
	resolver := NewResolver(sources, sources, sources)

	_, err := resolver.GeneratePickList(context.Background(), "ORD-1")
	require.Error(t, err)
}

func TestGeneratePickList_Idempotent(t *testing.T) {
	sources := newFakeSources()
	seedOrder(sources, "ORD-1",
		ordersdomain.OrderItem{ProductID: "P1", Quantity: 3},
		ordersdomain.OrderItem{ProductID: "P2", Quantity: 1},
	)
	sources.products["P1"] = &catalogdomain.Product{ID: "P1", Name: "Widget"}
	sources.locations["P1"] = []warehousedomain.StorageLocation{{ID: "L1", Name: "Shelf A"}}

	resolver := NewResolver(sources, sources, sources)
	first, err := resolver.GeneratePickList(context.Background(), "ORD-1")
	require.NoError(t, err)
	second, err := resolver.GeneratePickList(context.Background(), "ORD-1")
	require.NoError(t, err)
	require.Equal(t, first, second)
}
