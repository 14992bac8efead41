package memory

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/elevate-mobility/orderdesk/internal/domains/admins/domain"
	"github.com/elevate-mobility/orderdesk/internal/domains/admins/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository is an in-memory admin persistence adapter.
type Repository struct {
	mu     sync.RWMutex
	admins map[string]*domain.Admin
}

func NewRepository() *Repository {
	return &Repository{admins: map[string]*domain.Admin{}}
}

func (r *Repository) Create(_ context.Context, admin *domain.Admin) (*domain.Admin, error) {
	if admin == nil {
		return nil, errors.New("admin is nil")
	}
	clone := *admin
	if err := clone.Validate(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.admins {
		if existing.Username == clone.Username {
			return nil, ports.ErrUsernameTaken
		}
	}
	r.admins[clone.ID] = &clone
	result := clone
	return &result, nil
}

func (r *Repository) GetByUsername(_ context.Context, username string) (*domain.Admin, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, admin := range r.admins {
		if admin.Username == username {
			clone := *admin
			return &clone, nil
		}
	}
	return nil, ports.ErrNotFound
}

func (r *Repository) List(_ context.Context) ([]*domain.Admin, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]*domain.Admin, 0, len(r.admins))
	for _, admin := range r.admins {
		clone := *admin
		list = append(list, &clone)
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].CreatedAt.After(list[j].CreatedAt)
	})
	return list, nil
}

func (r *Repository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.admins[id]; !ok {
		return ports.ErrNotFound
	}
	delete(r.admins, id)
	return nil
}

func (r *Repository) RecordLogin(_ context.Context, id string, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	admin, ok := r.admins[id]
	if !ok {
		return ports.ErrNotFound
	}
	stamp := at
	admin.LastLogin = &stamp
	return nil
}
