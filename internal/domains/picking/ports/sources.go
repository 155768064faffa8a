package ports

import (
	"context"
	"errors"

	catalogdomain "github.com/stockroom/stockroom-api/internal/domains/catalog/domain"
	ordersdomain "github.com/stockroom/stockroom-api/internal/domains/orders/domain"
	warehousedomain "github.com/stockroom/stockroom-api/internal/domains/warehouse/domain"
)

// ErrNotFound signals an absent record on any of the read sources. Source
// adapters translate their own not-found sentinels into this one so the
// resolver can distinguish absence from read failures.
var ErrNotFound = errors.New("record not found")

// OrderSource reads an order together with its line items.
type OrderSource interface {
	GetOrderWithItems(ctx context.Context, orderID string) (*ordersdomain.Order, error)
}

// ProductSource reads a single product.
type ProductSource interface {
	GetProductByID(ctx context.Context, productID string) (*catalogdomain.Product, error)
}

// LocationSource reads the locations currently stocking a product.
type LocationSource interface {
	GetLocationsForProduct(ctx context.Context, productID string) ([]warehousedomain.StorageLocation, error)
}
