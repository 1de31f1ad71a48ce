package application

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/expensio/expensio/internal/domain/analysis"
	"github.com/expensio/expensio/internal/domain/entity"
	repo "github.com/expensio/expensio/internal/domain/repository"
)

// SheetService owns the expense-sheet use cases. Every operation is scoped by
// the requesting user's id; the repository enforces that a foreign sheet is
// indistinguishable from a missing one.
type SheetService struct {
	Sheets repo.SheetRepository
	Logger *logrus.Logger
}

func NewSheetService(sheets repo.SheetRepository, logger *logrus.Logger) *SheetService {
	return &SheetService{Sheets: sheets, Logger: logger}
}

// CreateSheetInput carries the boundary-validated fields of a new sheet.
type CreateSheetInput struct {
	Name          string
	Month         string
	MonthlySalary float64
	Budgets       []entity.Budget
}

// ExpenseInput carries the full field set of one expense item. Updates
// replace every field; there is no partial patch.
type ExpenseInput struct {
	Date        string
	Category    string
	Description string
	Amount      float64
}

func (in ExpenseInput) toItem(id string) entity.ExpenseItem {
	return entity.ExpenseItem{
		ID:          id,
		Date:        in.Date,
		Category:    in.Category,
		Description: in.Description,
		Amount:      in.Amount,
	}
}

func (s *SheetService) Create(ctx context.Context, owner string, in CreateSheetInput) (*entity.ExpenseSheet, error) {
	now := time.Now().UTC()
	sheet := &entity.ExpenseSheet{
		ID:            uuid.NewString(),
		UserID:        owner,
		Name:          in.Name,
		Month:         in.Month,
		MonthlySalary: in.MonthlySalary,
		Budgets:       in.Budgets,
		Expenses:      []entity.ExpenseItem{},
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.Sheets.Create(ctx, sheet); err != nil {
		return nil, err
	}
	s.Logger.WithFields(logrus.Fields{"sheet_id": sheet.ID, "user_id": owner}).Info("sheet created")
	return sheet, nil
}

func (s *SheetService) List(ctx context.Context, owner string) ([]*entity.ExpenseSheet, error) {
	return s.Sheets.ListByOwner(ctx, owner)
}

func (s *SheetService) Get(ctx context.Context, id, owner string) (*entity.ExpenseSheet, error) {
	return s.Sheets.Get(ctx, id, owner)
}

func (s *SheetService) Delete(ctx context.Context, id, owner string) error {
	if err := s.Sheets.Delete(ctx, id, owner); err != nil {
		return err
	}
	s.Logger.WithFields(logrus.Fields{"sheet_id": id, "user_id": owner}).Info("sheet deleted")
	return nil
}

// AddExpense appends a new item with a fresh id and returns the updated sheet.
func (s *SheetService) AddExpense(ctx context.Context, id, owner string, in ExpenseInput) (*entity.ExpenseSheet, error) {
	return s.Sheets.AddExpense(ctx, id, owner, in.toItem(uuid.NewString()))
}

// UpdateExpense replaces every field of the matching item, keeping its id and
// position.
func (s *SheetService) UpdateExpense(ctx context.Context, id, owner, expenseID string, in ExpenseInput) (*entity.ExpenseSheet, error) {
	return s.Sheets.UpdateExpense(ctx, id, owner, expenseID, in.toItem(expenseID))
}

func (s *SheetService) RemoveExpense(ctx context.Context, id, owner, expenseID string) (*entity.ExpenseSheet, error) {
	return s.Sheets.RemoveExpense(ctx, id, owner, expenseID)
}

// Stats aggregates one sheet.
func (s *SheetService) Stats(ctx context.Context, id, owner string) (*analysis.Stats, error) {
	sheet, err := s.Sheets.Get(ctx, id, owner)
	if err != nil {
		return nil, err
	}
	stats := analysis.SheetStats(sheet)
	return &stats, nil
}

// ComparisonResult bundles both sheets with their delta report.
type ComparisonResult struct {
	Sheet1     *entity.ExpenseSheet `json:"sheet1"`
	Sheet2     *entity.ExpenseSheet `json:"sheet2"`
	Comparison analysis.Comparison  `json:"comparison"`
}

// Compare reads the two sheets independently (no cross-document transaction)
// and computes their deltas. Either sheet missing or foreign yields NotFound.
func (s *SheetService) Compare(ctx context.Context, id1, id2, owner string) (*ComparisonResult, error) {
	a, err := s.Sheets.Get(ctx, id1, owner)
	if err != nil {
		return nil, err
	}
	b, err := s.Sheets.Get(ctx, id2, owner)
	if err != nil {
		return nil, err
	}
	return &ComparisonResult{Sheet1: a, Sheet2: b, Comparison: analysis.Compare(a, b)}, nil
}
