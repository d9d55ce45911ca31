// Package metrics provides Prometheus metrics for stockpulse.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// SummarizeTotal counts summarize invocations by result status.
	SummarizeTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "stockpulse",
			Name:      "summarize_total",
			Help:      "Total number of summarize invocations",
		},
		[]string{"status"},
	)

	// GenerationDuration measures provider calls.
	GenerationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "stockpulse",
			Name:      "generation_duration_seconds",
			Help:      "Duration of text-generation provider calls in seconds",
			Buckets:   []float64{0.25, 0.5, 1, 2, 5, 10, 20, 30, 60},
		},
		[]string{"provider", "outcome"},
	)

	// SummaryCacheTotal counts narrative cache lookups.
	SummaryCacheTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "stockpulse",
			Name:      "summary_cache_total",
			Help:      "Narrative cache lookups by result",
		},
		[]string{"result"},
	)

	// RateLimitedTotal counts summarize requests rejected by the rate limiter.
	RateLimitedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "stockpulse",
			Name:      "summarize_rate_limited_total",
			Help:      "Summarize requests rejected by the per-client rate limit",
		},
	)
)

func RecordSummarize(status string) {
	SummarizeTotal.WithLabelValues(status).Inc()
}

func RecordGeneration(provider, outcome string, seconds float64) {
	GenerationDuration.WithLabelValues(provider, outcome).Observe(seconds)
}

func RecordCache(result string) {
	SummaryCacheTotal.WithLabelValues(result).Inc()
}
