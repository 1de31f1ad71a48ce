package report

import (
	"bytes"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/expensio/expensio/internal/domain/analysis"
	"github.com/expensio/expensio/internal/domain/entity"
)

func reportSheet() *entity.ExpenseSheet {
	return &entity.ExpenseSheet{
		ID:     "s1",
		UserID: "u1",
		Name:   "January",
		Month:  "2024-01",
		Expenses: []entity.ExpenseItem{
			{ID: "b", Date: "2024-01-20", Category: "Rent", Description: "apartment", Amount: 800},
			{ID: "a", Date: "2024-01-05", Category: "Food", Description: "groceries", Amount: 120.50},
			{ID: "c", Date: "2024-01-12", Category: "Food", Description: "a very long description that should definitely be cut", Amount: 29.50},
		},
		UpdatedAt: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestBuildContent(t *testing.T) {
	s := reportSheet()
	doc := Build(s, analysis.SheetStats(s))

	if doc.Title != "Expense Report: January" {
		t.Errorf("Title = %q", doc.Title)
	}
	if doc.MonthLine != "Month: 2024-01" {
		t.Errorf("MonthLine = %q", doc.MonthLine)
	}
	if doc.Summary[0][1] != "$950.00" {
		t.Errorf("total cell = %q", doc.Summary[0][1])
	}
	if doc.Summary[1][1] != "3" {
		t.Errorf("count cell = %q", doc.Summary[1][1])
	}

	// categories sorted by amount descending
	if len(doc.Categories) != 2 || doc.Categories[0].Category != "Rent" || doc.Categories[1].Category != "Food" {
		t.Fatalf("categories = %+v", doc.Categories)
	}
	if doc.Categories[0].Percent != "84.2%" {
		t.Errorf("Rent percent = %q", doc.Categories[0].Percent)
	}

	// transactions sorted by date ascending
	dates := []string{doc.Transactions[0].Date, doc.Transactions[1].Date, doc.Transactions[2].Date}
	if !reflect.DeepEqual(dates, []string{"2024-01-05", "2024-01-12", "2024-01-20"}) {
		t.Errorf("transaction order = %v", dates)
	}

	long := doc.Transactions[1].Description
	if !strings.HasSuffix(long, "...") || len(long) != descriptionLimit+3 {
		t.Errorf("long description not truncated: %q", long)
	}
	if doc.Transactions[0].Description != "groceries" {
		t.Errorf("short description altered: %q", doc.Transactions[0].Description)
	}
}

func TestBuildZeroTotal(t *testing.T) {
	s := &entity.ExpenseSheet{
		Name:  "Empty",
		Month: "2024-02",
		Expenses: []entity.ExpenseItem{
			{ID: "a", Date: "2024-02-01", Category: "Food", Amount: 0},
		},
	}
	doc := Build(s, analysis.SheetStats(s))
	if doc.Categories[0].Percent != "0.0%" {
		t.Errorf("zero-total percent = %q", doc.Categories[0].Percent)
	}
}

func TestBuildDoesNotMutateSheet(t *testing.T) {
	s := reportSheet()
	before := append([]entity.ExpenseItem{}, s.Expenses...)
	Build(s, analysis.SheetStats(s))
	if !reflect.DeepEqual(before, s.Expenses) {
		t.Error("Build reordered the sheet's expense list")
	}
}

func TestBuildDeterministicOnTies(t *testing.T) {
	s := &entity.ExpenseSheet{
		Name:  "Ties",
		Month: "2024-03",
		Expenses: []entity.ExpenseItem{
			{ID: "1", Date: "2024-03-01", Category: "B", Amount: 10},
			{ID: "2", Date: "2024-03-01", Category: "A", Amount: 10},
		},
	}
	for i := 0; i < 5; i++ {
		doc := Build(s, analysis.SheetStats(s))
		if doc.Categories[0].Category != "A" || doc.Categories[1].Category != "B" {
			t.Fatalf("tie order unstable: %+v", doc.Categories)
		}
	}
}

func TestRenderPDFDeterministic(t *testing.T) {
	s := reportSheet()
	stats := analysis.SheetStats(s)
	first, err := RenderPDF(s, stats)
	if err != nil {
		t.Fatal(err)
	}
	second, err := RenderPDF(s, stats)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(first, second) {
		t.Error("identical input produced different PDF bytes")
	}
	if !bytes.HasPrefix(first, []byte("%PDF")) {
		t.Errorf("output is not a PDF: % x", first[:8])
	}
}
