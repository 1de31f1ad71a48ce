package memory

import (
	"context"
	"sync"

	"github.com/expensio/expensio/internal/domain/entity"
	"github.com/expensio/expensio/internal/domain/repository"
)

// UserRepository is an in-memory identity store with the same semantics as
// the Postgres implementation. Used by tests.
type UserRepository struct {
	mu    sync.RWMutex
	byID  map[string]entity.User
	email map[string]string // email -> id, case-sensitive
}

func NewUserRepository() *UserRepository {
	return &UserRepository{
		byID:  make(map[string]entity.User),
		email: make(map[string]string),
	}
}

func (r *UserRepository) Create(_ context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.email[u.Email]; exists {
		return repository.ErrDuplicateEmail
	}
	r.byID[u.ID] = *u
	r.email[u.Email] = u.ID
	return nil
}

func (r *UserRepository) GetByID(_ context.Context, id string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &u, nil
}

func (r *UserRepository) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.email[email]
	if !ok {
		return nil, repository.ErrNotFound
	}
	u := r.byID[id]
	return &u, nil
}

var _ repository.UserRepository = (*UserRepository)(nil)
