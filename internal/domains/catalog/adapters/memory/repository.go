package memory

import (
	"context"
	"errors"
	"sync"

	"github.com/stockroom/stockroom-api/internal/domains/catalog/domain"
	"github.com/stockroom/stockroom-api/internal/domains/catalog/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository is an in-memory product persistence adapter.
type Repository struct {
	mu       sync.RWMutex
	products map[string]*domain.Product
}

func NewRepository() *Repository {
	return &Repository{products: map[string]*domain.Product{}}
}

func (r *Repository) Save(_ context.Context, product *domain.Product) (*domain.Product, error) {
	if product == nil {
		return nil, errors.New("product is nil")
	}
	clone := cloneProduct(product)
	if err := clone.Validate(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.products[clone.ID] = clone
	out := cloneProduct(clone)
	return out, nil
}

func (r *Repository) GetByID(_ context.Context, id string) (*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	product, ok := r.products[id]
	if !ok {
		return nil, ports.ErrNotFound
	}
	return cloneProduct(product), nil
}

func (r *Repository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.products[id]; !ok {
		return ports.ErrNotFound
	}
	delete(r.products, id)
	return nil
}

func (r *Repository) List(_ context.Context) ([]*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]*domain.Product, 0, len(r.products))
	for _, product := range r.products {
		list = append(list, cloneProduct(product))
	}
	return list, nil
}

func cloneProduct(product *domain.Product) *domain.Product {
	clone := *product
	clone.Tags = append([]string(nil), product.Tags...)
	return &clone
}
