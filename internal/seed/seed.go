// Package seed generates the deterministic demo series used by cmd/seeder.
package seed

import (
	"math/rand"
	"time"

	"stockpulse/internal/model"
)

const baseQuantity = 100

// Generate returns days+1 consecutive days of entries ending on end, one
// per category per day. The same seed always yields the same series.
func Generate(end time.Time, days int, seed int64) []model.StockEntry {
	r := rand.New(rand.NewSource(seed))
	start := model.DateOf(end).AddDate(0, 0, -days)

	entries := make([]model.StockEntry, 0, (days+1)*len(model.Categories))
	for i := 0; i <= days; i++ {
		d := start.AddDate(0, 0, i)
		for _, c := range model.Categories {
			drift := r.Intn(21) - 10
			weekly := (i % 7) - 3
			entries = append(entries, model.StockEntry{
				Date:     d,
				Category: c,
				Quantity: max(0, baseQuantity+drift+weekly),
			})
		}
	}
	return entries
}
