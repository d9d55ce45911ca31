package model

import (
	"errors"
	"testing"
	"time"

	"github.com/go-playground/assert/v2"
)

func TestParseDateRange(t *testing.T) {
	tests := []struct {
		name    string
		start   string
		end     string
		wantErr bool
		days    int
	}{
		{name: "single day", start: "2025-03-01", end: "2025-03-01", days: 1},
		{name: "month", start: "2025-03-01", end: "2025-03-31", days: 31},
		{name: "across leap day", start: "2024-02-28", end: "2024-03-01", days: 3},
		{name: "three centuries", start: "1700-01-01", end: "2025-01-01", days: 118703},
		{name: "full calendar", start: "0001-01-01", end: "9999-12-31", days: 3652059},
		{name: "inverted", start: "2025-03-02", end: "2025-03-01", wantErr: true},
		{name: "missing start", start: "", end: "2025-03-01", wantErr: true},
		{name: "missing end", start: "2025-03-01", end: " ", wantErr: true},
		{name: "bad format", start: "03/01/2025", end: "2025-03-05", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := ParseDateRange(tt.start, tt.end)
			if tt.wantErr {
				assert.Equal(t, true, errors.Is(err, ErrInvalidRange))
				return
			}
			assert.Equal(t, nil, err)
			assert.Equal(t, tt.days, r.Days())
		})
	}
}

func TestTotalsAdd(t *testing.T) {
	totals := NewTotals()

	assert.Equal(t, nil, totals.Add(Apple, 10))
	assert.Equal(t, nil, totals.Add(Orange, 5))
	assert.Equal(t, nil, totals.Add(Apple, 1))
	assert.NotEqual(t, nil, totals.Add(Category("KIWI"), 7))

	assert.Equal(t, 11, totals.Of(Apple))
	assert.Equal(t, 5, totals.Of(Orange))
	assert.Equal(t, 0, totals.Of(Banana))
	assert.Equal(t, 16, totals.Grand)
}

func TestTotalsFromPoints(t *testing.T) {
	d := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	points := []TimeseriesPoint{
		{Date: d, Category: Apple, Quantity: 3},
		{Date: d, Category: Banana, Quantity: 4},
	}

	totals, err := TotalsFromPoints(points)
	assert.Equal(t, nil, err)
	assert.Equal(t, 7, totals.Grand)

	_, err = TotalsFromPoints(append(points, TimeseriesPoint{Date: d, Category: "PEAR", Quantity: 1}))
	assert.NotEqual(t, nil, err)
}

func TestParseCategoryCoversAll(t *testing.T) {
	for _, c := range Categories {
		got, err := ParseCategory(string(c))
		assert.Equal(t, nil, err)
		assert.Equal(t, c, got)
		assert.NotEqual(t, string(c), c.Label())
	}

	_, err := ParseCategory("apple")
	assert.NotEqual(t, nil, err)
}
