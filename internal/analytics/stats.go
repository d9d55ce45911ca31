// Package analytics turns raw per-day stock points into trend statistics and
// renders them into the narrative prompt.
package analytics

import (
	"math"
	"sort"

	"stockpulse/internal/model"
)

const noDate = "-"

// Stats describes one category over a date range.
type Stats struct {
	First     int
	Last      int
	Delta     int
	PctChange float64
	Min       int
	MinDate   string
	Max       int
	MaxDate   string
	Mean      float64
	StdDev    float64
}

func emptyStats() Stats {
	return Stats{MinDate: noDate, MaxDate: noDate}
}

// ComputeStats filters points to category, orders them by date and derives
// the trend figures. An empty slice yields zero values with "-" dates.
func ComputeStats(points []model.TimeseriesPoint, category model.Category) Stats {
	var series []model.TimeseriesPoint
	for _, p := range points {
		if p.Category == category {
			series = append(series, p)
		}
	}

	if len(series) == 0 {
		return emptyStats()
	}

	sort.SliceStable(series, func(i, j int) bool {
		return series[i].Date.Before(series[j].Date)
	})

	first := series[0].Quantity
	last := series[len(series)-1].Quantity
	delta := last - first

	pct := 0.0
	if first != 0 {
		pct = float64(delta) * 100.0 / float64(first)
	}

	minP, maxP := series[0], series[0]
	sum := 0
	for _, p := range series {
		// strict comparisons keep the earliest point on ties
		if p.Quantity < minP.Quantity {
			minP = p
		}
		if p.Quantity > maxP.Quantity {
			maxP = p
		}
		sum += p.Quantity
	}

	n := float64(len(series))
	mean := float64(sum) / n

	var sq float64
	for _, p := range series {
		d := float64(p.Quantity) - mean
		sq += d * d
	}

	return Stats{
		First:     first,
		Last:      last,
		Delta:     delta,
		PctChange: pct,
		Min:       minP.Quantity,
		MinDate:   model.FormatDate(minP.Date),
		Max:       maxP.Quantity,
		MaxDate:   model.FormatDate(maxP.Date),
		Mean:      mean,
		StdDev:    math.Sqrt(sq / n),
	}
}
