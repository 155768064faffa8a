package sources

import (
	"context"
	"errors"
	"fmt"

	catalogdomain "github.com/stockroom/stockroom-api/internal/domains/catalog/domain"
	catalogports "github.com/stockroom/stockroom-api/internal/domains/catalog/ports"
	ordersdomain "github.com/stockroom/stockroom-api/internal/domains/orders/domain"
	ordersports "github.com/stockroom/stockroom-api/internal/domains/orders/ports"
	pickingports "github.com/stockroom/stockroom-api/internal/domains/picking/ports"
	warehousedomain "github.com/stockroom/stockroom-api/internal/domains/warehouse/domain"
	warehouseports "github.com/stockroom/stockroom-api/internal/domains/warehouse/ports"
)

var (
	_ pickingports.OrderSource    = (*RepositorySources)(nil)
	_ pickingports.ProductSource  = (*RepositorySources)(nil)
	_ pickingports.LocationSource = (*RepositorySources)(nil)
)

// RepositorySources bridges the catalog, orders, and warehouse repositories
// into the picking read ports, translating each context's not-found sentinel
// into the picking one.
type RepositorySources struct {
	orders    ordersports.Repository
	products  catalogports.Repository
	warehouse warehouseports.Repository
}

func NewRepositorySources(orders ordersports.Repository, products catalogports.Repository, warehouse warehouseports.Repository) *RepositorySources {
	return &RepositorySources{orders: orders, products: products, warehouse: warehouse}
}

func (s *RepositorySources) GetOrderWithItems(ctx context.Context, orderID string) (*ordersdomain.Order, error) {
	order, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, ordersports.ErrNotFound) {
			return nil, fmt.Errorf("order %q: %w", orderID, pickingports.ErrNotFound)
		}
		return nil, err
	}
	return order, nil
}

func (s *RepositorySources) GetProductByID(ctx context.Context, productID string) (*catalogdomain.Product, error) {
	product, err := s.products.GetByID(ctx, productID)
	if err != nil {
		if errors.Is(err, catalogports.ErrNotFound) {
			return nil, fmt.Errorf("product %q: %w", productID, pickingports.ErrNotFound)
		}
		return nil, err
	}
	return product, nil
}

func (s *RepositorySources) GetLocationsForProduct(ctx context.Context, productID string) ([]warehousedomain.StorageLocation, error) {
	return s.warehouse.LocationsForProduct(ctx, productID)
}
