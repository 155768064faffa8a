package ports

import (
	"context"

	"github.com/stockroom/stockroom-api/internal/domains/orders/domain"
)

// Service exposes order use cases to adapters.
type Service interface {
	PlaceOrder(ctx context.Context, order *domain.Order) (*domain.Order, error)
	GetOrderByID(ctx context.Context, id string) (*domain.Order, error)
	DeleteOrder(ctx context.Context, id string) error
	ListOrders(ctx context.Context) ([]*domain.Order, error)
	UpdateOrderStatus(ctx context.Context, id string, status domain.Status) (*domain.Order, error)
	QuantitiesByStatus(ctx context.Context) (map[string]int32, error)
}
