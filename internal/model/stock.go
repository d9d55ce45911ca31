package model

import (
	"fmt"
	"time"
)

const DateLayout = "2006-01-02"

type Category string

const (
	Apple  Category = "APPLE"
	Orange Category = "ORANGE"
	Banana Category = "BANANA"
)

// Categories lists every tracked category in display order.
var Categories = []Category{Apple, Orange, Banana}

func ParseCategory(name string) (Category, error) {
	switch Category(name) {
	case Apple:
		return Apple, nil
	case Orange:
		return Orange, nil
	case Banana:
		return Banana, nil
	default:
		return "", fmt.Errorf("unknown category %q", name)
	}
}

// Label is the title-cased name used in prompts.
func (c Category) Label() string {
	switch c {
	case Apple:
		return "Apple"
	case Orange:
		return "Orange"
	case Banana:
		return "Banana"
	default:
		return string(c)
	}
}

type StockEntry struct {
	Date     time.Time
	Category Category
	Quantity int
}

type TimeseriesPoint struct {
	Date     time.Time
	Category Category
	Quantity int
}

type Totals struct {
	ByCategory map[Category]int
	Grand      int
}

func NewTotals() Totals {
	return Totals{ByCategory: make(map[Category]int, len(Categories))}
}

// Add folds qty into the category's sum and the grand total.
func (t *Totals) Add(c Category, qty int) error {
	if t.ByCategory == nil {
		t.ByCategory = make(map[Category]int, len(Categories))
	}

	switch c {
	case Apple, Orange, Banana:
		t.ByCategory[c] += qty
		t.Grand += qty
		return nil
	default:
		return fmt.Errorf("unknown category %q", c)
	}
}

func (t Totals) Of(c Category) int {
	return t.ByCategory[c]
}

// TotalsFromPoints sums a point set. Unknown categories are reported, not skipped.
func TotalsFromPoints(points []TimeseriesPoint) (Totals, error) {
	totals := NewTotals()
	for _, p := range points {
		if err := totals.Add(p.Category, p.Quantity); err != nil {
			return Totals{}, err
		}
	}
	return totals, nil
}

// DateOf truncates t to its calendar date in UTC.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
