package entity

import (
	"time"
)

// ExpenseItem is one dated, categorized transaction embedded in a sheet.
// Items are addressed by ID only through their parent sheet. Amount is
// unconstrained: refunds show up as negative values.
type ExpenseItem struct {
	ID          string  `json:"id" bson:"id"`
	Date        string  `json:"date" bson:"date"`
	Category    string  `json:"category" bson:"category"`
	Description string  `json:"description" bson:"description"`
	Amount      float64 `json:"amount" bson:"amount"`
}

// Budget allocates an amount to a category label. Budget categories and
// expense categories are independent free-form strings; no correspondence
// between the two is enforced.
type Budget struct {
	Category  string  `json:"category" bson:"category"`
	Allocated float64 `json:"allocated" bson:"allocated"`
}

// ExpenseSheet is the aggregate root for one monthly budget period.
// It is owned by exactly one user; every repository operation filters by
// UserID so a foreign sheet id looks the same as a missing one.
type ExpenseSheet struct {
	ID            string        `json:"id" bson:"id"`
	UserID        string        `json:"user_id" bson:"user_id"`
	Name          string        `json:"name" bson:"name"`
	Month         string        `json:"month" bson:"month"` // "YYYY-MM", not validated
	MonthlySalary float64       `json:"monthly_salary" bson:"monthly_salary"`
	Budgets       []Budget      `json:"budgets" bson:"budgets"`
	Expenses      []ExpenseItem `json:"expenses" bson:"expenses"`
	CreatedAt     time.Time     `json:"created_at" bson:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at" bson:"updated_at"`
}

// FindExpense returns the embedded item with the given id, or nil.
func (s *ExpenseSheet) FindExpense(expenseID string) *ExpenseItem {
	for i := range s.Expenses {
		if s.Expenses[i].ID == expenseID {
			return &s.Expenses[i]
		}
	}
	return nil
}

// ReplaceExpense swaps every field of the matching item while keeping its id
// and its position in the list. Returns false when no item matches.
func (s *ExpenseSheet) ReplaceExpense(expenseID string, item ExpenseItem) bool {
	for i := range s.Expenses {
		if s.Expenses[i].ID == expenseID {
			item.ID = expenseID
			s.Expenses[i] = item
			return true
		}
	}
	return false
}

// RemoveExpense deletes the matching item, preserving the relative order of
// the remaining items. Removing an absent id is a no-op.
func (s *ExpenseSheet) RemoveExpense(expenseID string) {
	for i := range s.Expenses {
		if s.Expenses[i].ID == expenseID {
			s.Expenses = append(s.Expenses[:i], s.Expenses[i+1:]...)
			return
		}
	}
}
