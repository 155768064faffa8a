package memory

import (
	"context"
	"errors"
	"sync"

	"github.com/stockroom/stockroom-api/internal/domains/orders/domain"
	"github.com/stockroom/stockroom-api/internal/domains/orders/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository is an in-memory order persistence adapter.
type Repository struct {
	mu     sync.RWMutex
	orders map[string]*domain.Order
}

func NewRepository() *Repository {
	return &Repository{orders: map[string]*domain.Order{}}
}

func (r *Repository) Save(_ context.Context, order *domain.Order) (*domain.Order, error) {
	if order == nil {
		return nil, errors.New("order is nil")
	}
	clone := cloneOrder(order)
	if err := clone.UpdateStatus(clone.Status); err != nil {
		return nil, err
	}
	if err := clone.Validate(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders[clone.ID] = clone
	return cloneOrder(clone), nil
}

func (r *Repository) GetByID(_ context.Context, id string) (*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	order, ok := r.orders[id]
	if !ok {
		return nil, ports.ErrNotFound
	}
	return cloneOrder(order), nil
}

func (r *Repository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.orders[id]; !ok {
		return ports.ErrNotFound
	}
	delete(r.orders, id)
	return nil
}

func (r *Repository) List(_ context.Context) ([]*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]*domain.Order, 0, len(r.orders))
	for _, order := range r.orders {
		list = append(list, cloneOrder(order))
	}
	return list, nil
}

func cloneOrder(order *domain.Order) *domain.Order {
	clone := *order
	clone.Items = append([]domain.OrderItem(nil), order.Items...)
	return &clone
}
