package application

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/stockroom/stockroom-api/internal/domains/warehouse/domain"
	"github.com/stockroom/stockroom-api/internal/domains/warehouse/ports"
)

// Service orchestrates warehouse use cases.
type Service struct {
	repo ports.Repository
}

func NewService(repo ports.Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) AddLocation(ctx context.Context, location *domain.StorageLocation) (*domain.StorageLocation, error) {
	if location == nil {
		return nil, errors.New("location is nil")
	}
	if strings.TrimSpace(location.ID) == "" {
		location.ID = uuid.NewString()
	}
	if err := location.Validate(); err != nil {
		return nil, err
	}
	return s.repo.Save(ctx, location)
}

func (s *Service) GetLocationByID(ctx context.Context, id string) (*domain.StorageLocation, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) UpdateLocation(ctx context.Context, id string, updated *domain.StorageLocation) (*domain.StorageLocation, error) {
	if updated == nil {
		return nil, errors.New("location is nil")
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

func (s *Service) DeleteLocation(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) ListLocations(ctx context.Context) ([]*domain.StorageLocation, error) {
	return s.repo.List(ctx)
}

func (s *Service) AssignProduct(ctx context.Context, productID, locationID string) error {
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return errors.New("product id is required")
	}
	if _, err := s.repo.GetByID(ctx, locationID); err != nil {
		return err
	}
	return s.repo.AssignProduct(ctx, productID, locationID)
}

func (s *Service) UnassignProduct(ctx context.Context, productID, locationID string) error {
	return s.repo.UnassignProduct(ctx, strings.TrimSpace(productID), locationID)
}

func (s *Service) LocationsForProduct(ctx context.Context, productID string) ([]domain.StorageLocation, error) {
	return s.repo.LocationsForProduct(ctx, strings.TrimSpace(productID))
}

var _ ports.Service = (*Service)(nil)
