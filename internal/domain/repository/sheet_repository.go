package repository

import (
	"context"
	"errors"

	"github.com/expensio/expensio/internal/domain/entity"
)

var (
	// ErrNotFound covers both a missing record and an ownership mismatch;
	// callers must not be able to tell the two apart.
	ErrNotFound = errors.New("not found")
	// ErrExpenseNotFound means the sheet exists but the embedded item does not.
	ErrExpenseNotFound = errors.New("expense not found")
)

// SheetRepository persists expense sheets, one document per sheet with the
// expense list embedded. Every operation except Create takes the owner id and
// filters by it.
//
// The expense mutations are atomic at the store level: a single append,
// replace-matching or remove-matching command per call, so concurrent
// mutations of the same sheet cannot drop each other's writes. Each mutation
// stamps UpdatedAt and returns the sheet as written.
type SheetRepository interface {
	Create(ctx context.Context, s *entity.ExpenseSheet) error
	ListByOwner(ctx context.Context, owner string) ([]*entity.ExpenseSheet, error)
	Get(ctx context.Context, id, owner string) (*entity.ExpenseSheet, error)
	Delete(ctx context.Context, id, owner string) error

	AddExpense(ctx context.Context, id, owner string, item entity.ExpenseItem) (*entity.ExpenseSheet, error)
	UpdateExpense(ctx context.Context, id, owner, expenseID string, item entity.ExpenseItem) (*entity.ExpenseSheet, error)
	RemoveExpense(ctx context.Context, id, owner, expenseID string) (*entity.ExpenseSheet, error)
}
