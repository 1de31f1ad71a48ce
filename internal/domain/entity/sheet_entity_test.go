package entity

import (
	"testing"
)

func sheetWithExpenses() *ExpenseSheet {
	return &ExpenseSheet{
		ID:     "s1",
		UserID: "u1",
		Expenses: []ExpenseItem{
			{ID: "a", Date: "2024-01-01", Category: "Food", Amount: 10},
			{ID: "b", Date: "2024-01-02", Category: "Rent", Amount: 20},
			{ID: "c", Date: "2024-01-03", Category: "Food", Amount: 30},
		},
	}
}

func TestReplaceExpenseKeepsIDAndPosition(t *testing.T) {
	s := sheetWithExpenses()
	ok := s.ReplaceExpense("b", ExpenseItem{ID: "ignored", Date: "2024-01-09", Category: "Transport", Description: "bus", Amount: 5})
	if !ok {
		t.Fatal("expected replace to succeed")
	}
	got := s.Expenses[1]
	if got.ID != "b" {
		t.Errorf("id changed: got %q", got.ID)
	}
	if got.Category != "Transport" || got.Date != "2024-01-09" || got.Description != "bus" || got.Amount != 5 {
		t.Errorf("fields not fully replaced: %+v", got)
	}
	if s.Expenses[0].ID != "a" || s.Expenses[2].ID != "c" {
		t.Error("neighbors moved")
	}
}

func TestReplaceExpenseMissing(t *testing.T) {
	s := sheetWithExpenses()
	if s.ReplaceExpense("nope", ExpenseItem{}) {
		t.Error("expected replace of unknown id to fail")
	}
}

func TestRemoveExpensePreservesOrder(t *testing.T) {
	s := sheetWithExpenses()
	s.RemoveExpense("b")
	if len(s.Expenses) != 2 {
		t.Fatalf("len = %d, want 2", len(s.Expenses))
	}
	if s.Expenses[0].ID != "a" || s.Expenses[1].ID != "c" {
		t.Errorf("order broken: %v, %v", s.Expenses[0].ID, s.Expenses[1].ID)
	}
	// absent id is a no-op
	s.RemoveExpense("b")
	if len(s.Expenses) != 2 {
		t.Error("removing absent id changed the list")
	}
}

func TestFindExpense(t *testing.T) {
	s := sheetWithExpenses()
	if e := s.FindExpense("c"); e == nil || e.Amount != 30 {
		t.Errorf("FindExpense(c) = %+v", e)
	}
	if e := s.FindExpense("zz"); e != nil {
		t.Errorf("FindExpense(zz) = %+v, want nil", e)
	}
}
