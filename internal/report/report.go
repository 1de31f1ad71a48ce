package report

import (
	"fmt"
	"sort"

	"github.com/expensio/expensio/internal/domain/analysis"
	"github.com/expensio/expensio/internal/domain/entity"
)

// Document is the fully formatted, layout-independent content of a report.
// Building it is pure: the same sheet and stats always produce identical
// rows, and the inputs are never mutated.
type Document struct {
	Title        string
	MonthLine    string
	Summary      [][2]string
	Categories   []CategoryRow
	Transactions []TransactionRow
}

type CategoryRow struct {
	Category string
	Amount   string
	Percent  string
}

type TransactionRow struct {
	Date        string
	Category    string
	Description string
	Amount      string
}

const descriptionLimit = 30

func money(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}

func truncate(s string, limit int) string {
	if len(s) > limit {
		return s[:limit] + "..."
	}
	return s
}

// Build formats a sheet and its aggregation into table content. Categories
// sort by amount descending (name ascending on ties, to keep the output
// deterministic); transactions sort by date ascending.
func Build(sheet *entity.ExpenseSheet, stats analysis.Stats) Document {
	doc := Document{
		Title:     "Expense Report: " + sheet.Name,
		MonthLine: "Month: " + sheet.Month,
		Summary: [][2]string{
			{"Total Expenses:", money(stats.Total)},
			{"Number of Transactions:", fmt.Sprintf("%d", stats.Count)},
		},
	}

	categories := make([]string, 0, len(stats.ByCategory))
	for cat := range stats.ByCategory {
		categories = append(categories, cat)
	}
	sort.Slice(categories, func(i, j int) bool {
		a, b := stats.ByCategory[categories[i]], stats.ByCategory[categories[j]]
		if a != b {
			return a > b
		}
		return categories[i] < categories[j]
	})
	for _, cat := range categories {
		amount := stats.ByCategory[cat]
		percent := 0.0
		if stats.Total > 0 {
			percent = amount / stats.Total * 100
		}
		doc.Categories = append(doc.Categories, CategoryRow{
			Category: cat,
			Amount:   money(amount),
			Percent:  fmt.Sprintf("%.1f%%", percent),
		})
	}

	expenses := append([]entity.ExpenseItem{}, sheet.Expenses...)
	sort.SliceStable(expenses, func(i, j int) bool {
		return expenses[i].Date < expenses[j].Date
	})
	for _, e := range expenses {
		doc.Transactions = append(doc.Transactions, TransactionRow{
			Date:        e.Date,
			Category:    e.Category,
			Description: truncate(e.Description, descriptionLimit),
			Amount:      money(e.Amount),
		})
	}

	return doc
}
