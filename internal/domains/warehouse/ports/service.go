package ports

import (
	"context"

	"github.com/stockroom/stockroom-api/internal/domains/warehouse/domain"
)

// Service exposes warehouse use cases to adapters.
type Service interface {
	AddLocation(ctx context.Context, location *domain.StorageLocation) (*domain.StorageLocation, error)
	GetLocationByID(ctx context.Context, id string) (*domain.StorageLocation, error)
	UpdateLocation(ctx context.Context, id string, updated *domain.StorageLocation) (*domain.StorageLocation, error)
	DeleteLocation(ctx context.Context, id string) error
	ListLocations(ctx context.Context) ([]*domain.StorageLocation, error)

	AssignProduct(ctx context.Context, productID, locationID string) error
	UnassignProduct(ctx context.Context, productID, locationID string) error
	LocationsForProduct(ctx context.Context, productID string) ([]domain.StorageLocation, error)
}
