package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/stockroom/stockroom-api/internal/domains/users/domain"
	"github.com/stockroom/stockroom-api/internal/domains/users/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository is an in-memory user repository keyed by username.
type Repository struct {
	mu     sync.RWMutex
	users  map[string]domain.User
	nextID int64
}

func NewRepository() *Repository {
	return &Repository{users: map[string]domain.User{}, nextID: 1}
}

func (r *Repository) Save(_ context.Context, user *domain.User) (*domain.User, error) {
	if user == nil {
		return nil, ports.ErrNotFound
	}
	clone := *user
	if err := clone.Validate(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.users[clone.Username]; ok {
		clone.ID = existing.ID
	} else if clone.ID == 0 {
		clone.ID = r.nextID
		r.nextID++
	}
	r.users[clone.Username] = clone
	result := clone
	return &result, nil
}

func (r *Repository) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	user, ok := r.users[username]
	if !ok {
		return nil, ports.ErrNotFound
	}
	clone := user
	return &clone, nil
}

func (r *Repository) Delete(_ context.Context, username string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[username]; !ok {
		return ports.ErrNotFound
	}
	delete(r.users, username)
	return nil
}

func (r *Repository) List(_ context.Context) ([]*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	users := make([]*domain.User, 0, len(r.users))
	for _, user := range r.users {
		clone := user
		users = append(users, &clone)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].Username < users[j].Username })
	return users, nil
}
