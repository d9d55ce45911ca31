package analytics

type Trend string

const (
	StrongUp   Trend = "strong-up"
	MildUp     Trend = "mild-up"
	Neutral    Trend = "neutral"
	MildDown   Trend = "mild-down"
	StrongDown Trend = "strong-down"
)

// Classify buckets a percent change. Boundary values fall into the bucket
// further from neutral: -3 is mild-down, -10 is strong-down.
func Classify(pct float64) Trend {
	switch {
	case pct >= 10:
		return StrongUp
	case pct >= 3:
		return MildUp
	case pct > -3:
		return Neutral
	case pct > -10:
		return MildDown
	default:
		return StrongDown
	}
}

func (t Trend) Marker() string {
	switch t {
	case StrongUp:
		return "🔥"
	case MildUp:
		return "👍"
	case Neutral:
		return "😐"
	case MildDown:
		return "⚠️"
	case StrongDown:
		return "🚨"
	default:
		return ""
	}
}
