package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/expensio/expensio/internal/domain/entity"
	"github.com/expensio/expensio/internal/domain/repository"
)

// SheetRepository keeps sheets in a mutex-guarded map. It mirrors the Mongo
// implementation's contract, including the atomicity of expense mutations
// (the lock spans each whole operation) and the NotFound rules.
type SheetRepository struct {
	mu     sync.RWMutex
	sheets map[string]*entity.ExpenseSheet
}

func NewSheetRepository() *SheetRepository {
	return &SheetRepository{sheets: make(map[string]*entity.ExpenseSheet)}
}

func copySheet(s *entity.ExpenseSheet) *entity.ExpenseSheet {
	out := *s
	out.Expenses = append([]entity.ExpenseItem{}, s.Expenses...)
	out.Budgets = append([]entity.Budget{}, s.Budgets...)
	return &out
}

func (r *SheetRepository) owned(id, owner string) *entity.ExpenseSheet {
	s, ok := r.sheets[id]
	if !ok || s.UserID != owner {
		return nil
	}
	return s
}

func (r *SheetRepository) Create(_ context.Context, s *entity.ExpenseSheet) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sheets[s.ID] = copySheet(s)
	return nil
}

func (r *SheetRepository) ListByOwner(_ context.Context, owner string) ([]*entity.ExpenseSheet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []*entity.ExpenseSheet{}
	for _, s := range r.sheets {
		if s.UserID == owner {
			out = append(out, copySheet(s))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *SheetRepository) Get(_ context.Context, id, owner string) (*entity.ExpenseSheet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s := r.owned(id, owner)
	if s == nil {
		return nil, repository.ErrNotFound
	}
	return copySheet(s), nil
}

func (r *SheetRepository) Delete(_ context.Context, id, owner string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.owned(id, owner) == nil {
		return repository.ErrNotFound
	}
	delete(r.sheets, id)
	return nil
}

func (r *SheetRepository) AddExpense(_ context.Context, id, owner string, item entity.ExpenseItem) (*entity.ExpenseSheet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s := r.owned(id, owner)
	if s == nil {
		return nil, repository.ErrNotFound
	}
	s.Expenses = append(s.Expenses, item)
	s.UpdatedAt = time.Now().UTC()
	return copySheet(s), nil
}

func (r *SheetRepository) UpdateExpense(_ context.Context, id, owner, expenseID string, item entity.ExpenseItem) (*entity.ExpenseSheet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s := r.owned(id, owner)
	if s == nil {
		return nil, repository.ErrNotFound
	}
	if !s.ReplaceExpense(expenseID, item) {
		return nil, repository.ErrExpenseNotFound
	}
	s.UpdatedAt = time.Now().UTC()
	return copySheet(s), nil
}

func (r *SheetRepository) RemoveExpense(_ context.Context, id, owner, expenseID string) (*entity.ExpenseSheet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s := r.owned(id, owner)
	if s == nil {
		return nil, repository.ErrNotFound
	}
	s.RemoveExpense(expenseID)
	s.UpdatedAt = time.Now().UTC()
	return copySheet(s), nil
}

var _ repository.SheetRepository = (*SheetRepository)(nil)
