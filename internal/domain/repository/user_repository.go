package repository

import (
	"context"
	"errors"

	"github.com/expensio/expensio/internal/domain/entity"
)

// ErrDuplicateEmail is returned when the unique email constraint fires.
var ErrDuplicateEmail = errors.New("email already registered")

// UserRepository defines persistence for the identity store.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
}
