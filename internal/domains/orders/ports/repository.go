package ports

import (
	"context"
	"errors"

	"github.com/stockroom/stockroom-api/internal/domains/orders/domain"
)

var ErrNotFound = errors.New("order not found")

// Repository persists orders with their line items.
// GetByID returns items in line position order.
type Repository interface {
	Save(ctx context.Context, order *domain.Order) (*domain.Order, error)
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*domain.Order, error)
}
