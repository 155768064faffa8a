package ports

import (
	"context"
	"errors"

	"github.com/stockroom/stockroom-api/internal/domains/warehouse/domain"
)

var (
	ErrNotFound          = errors.New("storage location not found")
	ErrPlacementNotFound = errors.New("stock placement not found")
)

// Repository persists storage locations and product stock placements.
type Repository interface {
	Save(ctx context.Context, location *domain.StorageLocation) (*domain.StorageLocation, error)
	GetByID(ctx context.Context, id string) (*domain.StorageLocation, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*domain.StorageLocation, error)

	AssignProduct(ctx context.Context, productID, locationID string) error
	UnassignProduct(ctx context.Context, productID, locationID string) error
	LocationsForProduct(ctx context.Context, productID string) ([]domain.StorageLocation, error)
}
