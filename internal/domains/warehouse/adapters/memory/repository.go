package memory

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/stockroom/stockroom-api/internal/domains/warehouse/domain"
	"github.com/stockroom/stockroom-api/internal/domains/warehouse/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository is an in-memory storage-location persistence adapter.
type Repository struct {
	mu         sync.RWMutex
	locations  map[string]*domain.StorageLocation
	placements map[string]map[string]struct{} // productID -> set of locationIDs
}

func NewRepository() *Repository {
	return &Repository{
		locations:  map[string]*domain.StorageLocation{},
		placements: map[string]map[string]struct{}{},
	}
}

func (r *Repository) Save(_ context.Context, location *domain.StorageLocation) (*domain.StorageLocation, error) {
	if location == nil {
		return nil, errors.New("location is nil")
	}
	clone := *location
	if err := clone.Validate(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.locations[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *Repository) GetByID(_ context.Context, id string) (*domain.StorageLocation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	location, ok := r.locations[id]
	if !ok {
		return nil, ports.ErrNotFound
	}
	clone := *location
	return &clone, nil
}

func (r *Repository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.locations[id]; !ok {
		return ports.ErrNotFound
	}
	delete(r.locations, id)
	for productID := range r.placements {
		delete(r.placements[productID], id)
	}
	return nil
}

func (r *Repository) List(_ context.Context) ([]*domain.StorageLocation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]*domain.StorageLocation, 0, len(r.locations))
	for _, location := range r.locations {
		clone := *location
		list = append(list, &clone)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

func (r *Repository) AssignProduct(_ context.Context, productID, locationID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.locations[locationID]; !ok {
		return ports.ErrNotFound
	}
	if r.placements[productID] == nil {
		r.placements[productID] = map[string]struct{}{}
	}
	r.placements[productID][locationID] = struct{}{}
	return nil
}

func (r *Repository) UnassignProduct(_ context.Context, productID, locationID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	set, ok := r.placements[productID]
	if !ok {
		return ports.ErrPlacementNotFound
	}
	if _, ok := set[locationID]; !ok {
		return ports.ErrPlacementNotFound
	}
	delete(set, locationID)
	return nil
}

func (r *Repository) LocationsForProduct(_ context.Context, productID string) ([]domain.StorageLocation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	result := make([]domain.StorageLocation, 0)
	for locationID := range r.placements[productID] {
		if location, ok := r.locations[locationID]; ok {
			result = append(result, *location)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}
