package application

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/stockroom/stockroom-api/internal/domains/catalog/domain"
	"github.com/stockroom/stockroom-api/internal/domains/catalog/ports"
)

// Service orchestrates catalog use cases.
type Service struct {
	repo ports.Repository
}

func NewService(repo ports.Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) AddProduct(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	if product == nil {
		return nil, errors.New("product is nil")
	}
	if strings.TrimSpace(product.ID) == "" {
		product.ID = uuid.NewString()
	}
	if err := product.Validate(); err != nil {
		return nil, err
	}
	return s.repo.Save(ctx, product)
}

func (s *Service) GetProductByID(ctx context.Context, id string) (*domain.Product, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) UpdateProduct(ctx context.Context, id string, updated *domain.Product) (*domain.Product, error) {
	if updated == nil {
		return nil, errors.New("product is nil")
	}
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	updated.ID = existing.ID
	if err := updated.Validate(); err != nil {
		return nil, err
	}
	return s.repo.Save(ctx, updated)
}

func (s *Service) DeleteProduct(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) ListProducts(ctx context.Context) ([]*domain.Product, error) {
	return s.repo.List(ctx)
}

var _ ports.Service = (*Service)(nil)
