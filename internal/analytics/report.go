package analytics

import (
	"fmt"
	"strings"

	"stockpulse/internal/model"
)

const promptIntro = "You are a supply & inventory analyst. Write an impressive, manager-ready summary of fruit stocks."

const promptInstructions = `Write the output in this exact structure (Markdown bullets allowed, no code fences):
**Headline (1 sentence)**
• Key Highlights (3–5 bullets: mention rises/dips, which fruit led, stability/volatility, anomalies, and peak/dip dates)
• KPIs (compact): Apple change, Orange change, Banana change, Highest peak day/value, Lowest dip day/value
• Insight on Seasonality/Pattern (1–2 bullets; infer weekly waves/volatility)
• Action (1 line, specific operational recommendation)
• Risk/Watch (1 line: what to monitor next period)

Keep it concise but insightful. Avoid saying “insufficient information”.
`

type CategoryTrend struct {
	Category model.Category
	Stats    Stats
	Trend    Trend
}

// BuildTrends computes stats and a trend tag for every tracked category.
func BuildTrends(points []model.TimeseriesPoint) []CategoryTrend {
	trends := make([]CategoryTrend, 0, len(model.Categories))
	for _, c := range model.Categories {
		s := ComputeStats(points, c)
		trends = append(trends, CategoryTrend{
			Category: c,
			Stats:    s,
			Trend:    Classify(s.PctChange),
		})
	}
	return trends
}

func formatPct(v float64) string {
	return fmt.Sprintf("%+.1f%%", v)
}

func TrendLine(name string, s Stats, t Trend) string {
	return fmt.Sprintf(
		"%s change %s (%s), first=%d, last=%d, min=%d on %s, max=%d on %s, avg=%.1f, volatility score=%.1f",
		name, formatPct(s.PctChange), t.Marker(),
		s.First, s.Last, s.Min, s.MinDate, s.Max, s.MaxDate, s.Mean, s.StdDev,
	)
}

// ComposePrompt renders the range, totals and per-category trend lines
// followed by the fixed output instructions for the narrative generator.
func ComposePrompt(r model.DateRange, totals model.Totals, trends []CategoryTrend) string {
	var sb strings.Builder

	sb.WriteString(promptIntro)
	sb.WriteString("\n\n")
	sb.WriteString(fmt.Sprintf("Date range: %s to %s  (days=%d)\n",
		model.FormatDate(r.Start), model.FormatDate(r.End), r.Days()))

	sb.WriteString("Totals (sum over range):\n")
	for _, c := range model.Categories {
		sb.WriteString(fmt.Sprintf("  • %-7s %d\n", c.Label()+":", totals.Of(c)))
	}
	sb.WriteString(fmt.Sprintf("  • %-7s %d\n", "Grand:", totals.Grand))
	sb.WriteString("\n")

	sb.WriteString("Per-fruit trend stats (from line chart, emojis show direction/strength):\n")
	for _, ct := range trends {
		sb.WriteString("  ")
		sb.WriteString(TrendLine(string(ct.Category), ct.Stats, ct.Trend))
		sb.WriteString("\n")
	}
	sb.WriteString("\n")

	sb.WriteString(promptInstructions)
	return sb.String()
}
