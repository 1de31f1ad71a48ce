package analysis

import (
	"math"

	"github.com/expensio/expensio/internal/domain/entity"
)

// Pure aggregation over a sheet's expense list. Nothing here touches a store
// or mutates its inputs.

// Stats summarizes one sheet.
type Stats struct {
	Total      float64            `json:"total"`
	ByCategory map[string]float64 `json:"by_category"`
	Count      int                `json:"count"`
}

// Delta is the per-category (or grand-total) comparison between two sheets.
type Delta struct {
	Sheet1        float64 `json:"sheet1"`
	Sheet2        float64 `json:"sheet2"`
	Difference    float64 `json:"difference"`
	PercentChange float64 `json:"percent_change"`
}

// Counts carries the item counts of both compared sheets.
type Counts struct {
	Sheet1 int `json:"sheet1"`
	Sheet2 int `json:"sheet2"`
}

// Comparison is the month-over-month delta report for two sheets.
type Comparison struct {
	Total      Delta            `json:"total"`
	Categories map[string]Delta `json:"categories"`
	Count      Counts           `json:"count"`
}

// Totals returns the grand total and the per-category sums of an expense
// list. Categories appear exactly as the expenses spell them; there is no
// cross-check against the sheet's budgets.
func Totals(expenses []entity.ExpenseItem) (float64, map[string]float64) {
	total := 0.0
	byCategory := make(map[string]float64)
	for _, e := range expenses {
		total += e.Amount
		byCategory[e.Category] += e.Amount
	}
	return total, byCategory
}

// SheetStats computes the stats block served by the stats endpoint.
func SheetStats(s *entity.ExpenseSheet) Stats {
	total, byCategory := Totals(s.Expenses)
	return Stats{Total: total, ByCategory: byCategory, Count: len(s.Expenses)}
}

// percentChange applies the asymmetric zero-baseline rule: with a positive
// baseline it is a true rounded percentage; with a zero baseline it collapses
// to 100 when the other side is positive and 0 otherwise.
func percentChange(from, to float64) float64 {
	if from > 0 {
		return round2((to - from) / from * 100)
	}
	if to > 0 {
		return 100
	}
	return 0
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func delta(from, to float64) Delta {
	return Delta{
		Sheet1:        from,
		Sheet2:        to,
		Difference:    to - from,
		PercentChange: percentChange(from, to),
	}
}

// Compare builds per-category and grand-total deltas between two sheets. The
// category set is the union of both sides; a category absent from one sheet
// contributes 0 for that side.
func Compare(a, b *entity.ExpenseSheet) Comparison {
	totalA, catA := Totals(a.Expenses)
	totalB, catB := Totals(b.Expenses)

	categories := make(map[string]Delta, len(catA)+len(catB))
	for cat, v := range catA {
		categories[cat] = delta(v, catB[cat])
	}
	for cat, v := range catB {
		if _, seen := catA[cat]; !seen {
			categories[cat] = delta(0, v)
		}
	}

	return Comparison{
		Total:      delta(totalA, totalB),
		Categories: categories,
		Count:      Counts{Sheet1: len(a.Expenses), Sheet2: len(b.Expenses)},
	}
}
