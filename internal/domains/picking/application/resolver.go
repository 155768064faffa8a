package application

import (
	"context"
	"errors"
	"fmt"

	pickingtypes "github.com/stockroom/stockroom-api/internal/domains/picking/application/types"
	"github.com/stockroom/stockroom-api/internal/domains/picking/ports"
	warehousedomain "github.com/stockroom/stockroom-api/internal/domains/warehouse/domain"
)

// UnknownProductName is the display name used when a line item references a
// product that no longer exists (deleted or not yet synced). This is an
// expected state, not an error.
const UnknownProductName = "Unknown Product"

// Resolver builds pick lists from the order, product, and placement read
// sources. All reads are side-effect free; results are assembled fresh on
// every call.
type Resolver struct {
	orders    ports.OrderSource
	products  ports.ProductSource
	locations ports.LocationSource
}

func NewResolver(orders ports.OrderSource, products ports.ProductSource, locations ports.LocationSource) *Resolver {
	return &Resolver{orders: orders, products: products, locations: locations}
}

// GeneratePickList produces one PickInstruction per line item, in line-item
// order. An absent order yields an empty list and no error; an order with zero
// items yields the same empty list (callers cannot tell the two apart). A
// missing product degrades that single item to UnknownProductName. Any other
// read failure aborts the whole call.
//
// The per-item product and location reads are independent and could run
// concurrently; final ordering must stay keyed to line position either way.
func (r *Resolver) GeneratePickList(ctx context.Context, orderID string) ([]pickingtypes.PickInstruction, error) {
	order, err := r.orders.GetOrderWithItems(ctx, orderID)
	if err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			return []pickingtypes.PickInstruction{}, nil
		}
		return nil, fmt.Errorf("load order %q: %w", orderID, err)
	}

	instructions := make([]pickingtypes.PickInstruction, 0, len(order.Items))
	for _, item := range order.Items {
		name := UnknownProductName
		product, err := r.products.GetProductByID(ctx, item.ProductID)
		switch {
		case err == nil:
			name = product.Name
		case errors.Is(err, ports.ErrNotFound):
			// degraded per-item: keep the sentinel name, keep going
		default:
			return nil, fmt.Errorf("resolve product %q: %w", item.ProductID, err)
		}

		locations, err := r.locations.GetLocationsForProduct(ctx, item.ProductID)
		if err != nil {
			return nil, fmt.Errorf("resolve locations for product %q: %w", item.ProductID, err)
		}
		if locations == nil {
			locations = []warehousedomain.StorageLocation{}
		}

		instructions = append(instructions, pickingtypes.PickInstruction{
			ProductName:        name,
			ProductID:          item.ProductID,
			QuantityToPick:     item.Quantity,
			AvailableLocations: locations,
		})
	}
	return instructions, nil
}

var _ ports.Service = (*Resolver)(nil)
