package analysis

import (
	"math"
	"testing"

	"github.com/expensio/expensio/internal/domain/entity"
)

const epsilon = 1e-9

func sheet(expenses ...entity.ExpenseItem) *entity.ExpenseSheet {
	return &entity.ExpenseSheet{ID: "s", UserID: "u", Expenses: expenses}
}

func item(category string, amount float64) entity.ExpenseItem {
	return entity.ExpenseItem{Category: category, Amount: amount}
}

func TestSheetStats(t *testing.T) {
	tests := []struct {
		name       string
		expenses   []entity.ExpenseItem
		total      float64
		byCategory map[string]float64
		count      int
	}{
		{
			name:       "empty",
			total:      0,
			byCategory: map[string]float64{},
			count:      0,
		},
		{
			name:       "single item",
			expenses:   []entity.ExpenseItem{item("Food", 85.50)},
			total:      85.50,
			byCategory: map[string]float64{"Food": 85.50},
			count:      1,
		},
		{
			name: "mixed categories with negative amount",
			expenses: []entity.ExpenseItem{
				item("Food", 60), item("Rent", 40), item("Food", -10),
			},
			total:      90,
			byCategory: map[string]float64{"Food": 50, "Rent": 40},
			count:      3,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SheetStats(sheet(tt.expenses...))
			if math.Abs(got.Total-tt.total) > epsilon {
				t.Errorf("Total = %v, want %v", got.Total, tt.total)
			}
			if got.Count != tt.count {
				t.Errorf("Count = %d, want %d", got.Count, tt.count)
			}
			if len(got.ByCategory) != len(tt.byCategory) {
				t.Fatalf("ByCategory = %v, want %v", got.ByCategory, tt.byCategory)
			}
			for cat, want := range tt.byCategory {
				if math.Abs(got.ByCategory[cat]-want) > epsilon {
					t.Errorf("ByCategory[%s] = %v, want %v", cat, got.ByCategory[cat], want)
				}
			}
		})
	}
}

func TestStatsTotalEqualsCategorySum(t *testing.T) {
	s := sheet(item("Food", 12.34), item("Rent", 56.78), item("Food", -3.21), item("Fun", 0))
	got := SheetStats(s)
	sum := 0.0
	for _, v := range got.ByCategory {
		sum += v
	}
	if math.Abs(got.Total-sum) > epsilon {
		t.Errorf("total %v != category sum %v", got.Total, sum)
	}
}

func TestPercentChangeZeroBaseline(t *testing.T) {
	tests := []struct {
		name     string
		from, to float64
		want     float64
	}{
		{"zero to positive", 0, 20, 100},
		{"zero to zero", 0, 0, 0},
		{"positive baseline", 100, 150, 50},
		{"decrease", 200, 150, -25},
		{"rounded", 3, 4, 33.33},
		{"negative baseline treated as zero", -5, 10, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := percentChange(tt.from, tt.to); got != tt.want {
				t.Errorf("percentChange(%v, %v) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestCompareScenario(t *testing.T) {
	a := sheet(item("Food", 60), item("Rent", 40))
	b := sheet(item("Food", 90), item("Rent", 40), item("Transport", 20))

	c := Compare(a, b)

	if c.Total.Sheet1 != 100 || c.Total.Sheet2 != 150 {
		t.Fatalf("totals = %v / %v", c.Total.Sheet1, c.Total.Sheet2)
	}
	if c.Total.Difference != 50 || c.Total.PercentChange != 50 {
		t.Errorf("total delta = %+v", c.Total)
	}
	tr, ok := c.Categories["Transport"]
	if !ok {
		t.Fatal("Transport missing from category union")
	}
	if tr.Sheet1 != 0 || tr.Sheet2 != 20 || tr.Difference != 20 || tr.PercentChange != 100 {
		t.Errorf("Transport delta = %+v", tr)
	}
	food := c.Categories["Food"]
	if food.Difference != 30 || food.PercentChange != 50 {
		t.Errorf("Food delta = %+v", food)
	}
	rent := c.Categories["Rent"]
	if rent.Difference != 0 || rent.PercentChange != 0 {
		t.Errorf("Rent delta = %+v", rent)
	}
	if c.Count.Sheet1 != 2 || c.Count.Sheet2 != 3 {
		t.Errorf("counts = %+v", c.Count)
	}
}

func TestCompareDifferenceAntisymmetric(t *testing.T) {
	a := sheet(item("Food", 60), item("Rent", 40))
	b := sheet(item("Food", 90), item("Transport", 20))

	ab := Compare(a, b)
	ba := Compare(b, a)

	if ab.Total.Difference != -ba.Total.Difference {
		t.Errorf("total difference not antisymmetric: %v vs %v", ab.Total.Difference, ba.Total.Difference)
	}
	for cat, d := range ab.Categories {
		r := ba.Categories[cat]
		if d.Difference != -r.Difference {
			t.Errorf("%s difference not antisymmetric: %v vs %v", cat, d.Difference, r.Difference)
		}
	}
	// percent change is deliberately not symmetric around a zero baseline
	if ab.Categories["Transport"].PercentChange != 100 {
		t.Errorf("Transport forward = %v, want 100", ab.Categories["Transport"].PercentChange)
	}
	if ba.Categories["Transport"].PercentChange != -100 {
		t.Errorf("Transport reverse = %v, want -100", ba.Categories["Transport"].PercentChange)
	}
}

func TestCompareEmptySheets(t *testing.T) {
	c := Compare(sheet(), sheet())
	if c.Total.PercentChange != 0 || c.Total.Difference != 0 {
		t.Errorf("empty compare total = %+v", c.Total)
	}
	if len(c.Categories) != 0 {
		t.Errorf("empty compare categories = %v", c.Categories)
	}
}
