package application

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/stockroom/stockroom-api/internal/domains/orders/domain"
	"github.com/stockroom/stockroom-api/internal/domains/orders/ports"
)

// Service orchestrates order use cases.
type Service struct {
	repo ports.Repository
}

func NewService(repo ports.Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) PlaceOrder(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	if order == nil {
		return nil, errors.New("order is nil")
	}
	if strings.TrimSpace(order.ID) == "" {
		order.ID = uuid.NewString()
	}
	if order.PlacedAt.IsZero() {
		order.PlacedAt = time.Now().UTC()
	}
	if err := order.UpdateStatus(order.Status); err != nil {
		return nil, mapError(err)
	}
	if err := order.Validate(); err != nil {
		return nil, mapError(err)
	}
	return s.repo.Save(ctx, order)
}

func (s *Service) GetOrderByID(ctx context.Context, id string) (*domain.Order, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) DeleteOrder(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) ListOrders(ctx context.Context) ([]*domain.Order, error) {
	return s.repo.List(ctx)
}

func (s *Service) UpdateOrderStatus(ctx context.Context, id string, status domain.Status) (*domain.Order, error) {
	order, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := order.UpdateStatus(status); err != nil {
		return nil, mapError(err)
	}
	return s.repo.Save(ctx, order)
}

// QuantitiesByStatus aggregates ordered quantities per status, backing the
// inventory overview screen.
func (s *Service) QuantitiesByStatus(ctx context.Context) (map[string]int32, error) {
	orders, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	result := map[string]int32{}
	for _, order := range orders {
		for _, item := range order.Items {
			result[string(order.Status)] += item.Quantity
		}
	}
	return result, nil
}

var _ ports.Service = (*Service)(nil)
