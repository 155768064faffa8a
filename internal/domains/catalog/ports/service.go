package ports

import (
	"context"

	"github.com/stockroom/stockroom-api/internal/domains/catalog/domain"
)

// Service exposes catalog use cases to adapters.
type Service interface {
	AddProduct(ctx context.Context, product *domain.Product) (*domain.Product, error)
	GetProductByID(ctx context.Context, id string) (*domain.Product, error)
	UpdateProduct(ctx context.Context, id string, updated *domain.Product) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id string) error
	ListProducts(ctx context.Context) ([]*domain.Product, error)
}
