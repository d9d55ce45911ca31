// Package service drives the summarize pipeline: validate the range, fetch
// the series, compute trends, compose the prompt and hand it to a provider.
package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"time"

	"stockpulse/internal/analytics"
	"stockpulse/internal/metrics"
	"stockpulse/internal/model"
	"stockpulse/pkg/llm"

	"golang.org/x/sync/errgroup"
)

const (
	invalidRangeText = "Invalid date range. Ensure startDate <= endDate and both are YYYY-MM-DD."
	noDataTemplate   = "**Headline**\n• No data found for %s to %s. Try a range within the last 90 seeded days.\n• Action: choose a wider date range that overlaps the seeded demo data.\n"
)

// Failure categories reported in error texts.
const (
	failureSource    = "SourceError"
	failureTransport = "TransportError"
	failureTimeout   = "Timeout"
	failurePanic     = "Panic"
)

type Source interface {
	GetTotals(ctx context.Context, start, end time.Time) (model.Totals, error)
	GetSeries(ctx context.Context, start, end time.Time) ([]model.TimeseriesPoint, error)
}

type Cache interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}

type Options struct {
	// Offline routes generation to the local fallback. Set when no provider
	// credential is configured.
	Offline bool
	Timeout time.Duration
	Cache   Cache
}

type Summarizer struct {
	source    Source
	generator llm.Generator
	opts      Options
}

func NewSummarizer(source Source, generator llm.Generator, opts Options) *Summarizer {
	return &Summarizer{source: source, generator: generator, opts: opts}
}

// Summarize runs the pipeline for an inclusive YYYY-MM-DD range. It always
// returns a result; failures are reported through Status and Text.
func (s *Summarizer) Summarize(ctx context.Context, startDate, endDate string) (res model.SummaryResult) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("summarize panicked", "panic", r, "start", startDate, "end", endDate)
			res = failed(failurePanic, fmt.Errorf("%v", r))
		}
		metrics.RecordSummarize(res.Status)
	}()

	r, err := model.ParseDateRange(startDate, endDate)
	if err != nil {
		slog.Info("summarize rejected", "error", err)
		return model.SummaryResult{Status: model.StatusError, Text: invalidRangeText}
	}

	totals, points, err := s.fetch(ctx, r)
	if err != nil {
		slog.Error("error fetching stock data", "range", r.String(), "error", err)
		return failed(failureSource, err)
	}

	if len(points) == 0 {
		return model.SummaryResult{
			Status: model.StatusOK,
			Text:   fmt.Sprintf(noDataTemplate, model.FormatDate(r.Start), model.FormatDate(r.End)),
		}
	}

	trends := analytics.BuildTrends(points)
	prompt := analytics.ComposePrompt(r, totals, trends)

	if s.opts.Offline || s.generator == nil {
		return model.SummaryResult{Status: model.StatusOK, Text: llm.Fallback(prompt)}
	}

	return s.generate(ctx, prompt)
}

func (s *Summarizer) fetch(ctx context.Context, r model.DateRange) (model.Totals, []model.TimeseriesPoint, error) {
	var totals model.Totals
	var points []model.TimeseriesPoint

	g, gctx := errgroup.WithContext(ctx)

	g.Go(recovered(func() error {
		t, err := s.source.GetTotals(gctx, r.Start, r.End)
		if err != nil {
			return fmt.Errorf("get totals: %w", err)
		}
		totals = t
		return nil
	}))

	g.Go(recovered(func() error {
		p, err := s.source.GetSeries(gctx, r.Start, r.End)
		if err != nil {
			return fmt.Errorf("get series: %w", err)
		}
		points = p
		return nil
	}))

	if err := g.Wait(); err != nil {
		return model.Totals{}, nil, err
	}

	return totals, points, nil
}

func (s *Summarizer) generate(ctx context.Context, prompt string) model.SummaryResult {
	provider := s.generator.Name()
	key := cacheKey(provider, s.generator.Model(), prompt)

	if s.opts.Cache != nil {
		text, ok, err := s.opts.Cache.Get(ctx, key)
		switch {
		case err != nil:
			slog.Warn("summary cache lookup failed", "error", err)
			metrics.RecordCache("error")
		case ok:
			metrics.RecordCache("hit")
			return model.SummaryResult{Status: model.StatusGenerated, Text: text}
		default:
			metrics.RecordCache("miss")
		}
	}

	genCtx := ctx
	if s.opts.Timeout > 0 {
		var cancel context.CancelFunc
		genCtx, cancel = context.WithTimeout(ctx, s.opts.Timeout)
		defer cancel()
	}

	started := time.Now()
	text, err := s.generator.Generate(genCtx, prompt)
	elapsed := time.Since(started).Seconds()

	if err != nil {
		category := failureTransport
		if isTimeout(err) || errors.Is(genCtx.Err(), context.DeadlineExceeded) {
			category = failureTimeout
		}
		metrics.RecordGeneration(provider, category, elapsed)
		slog.Error("error generating summary", "provider", provider, "category", category, "error", err)
		return failed(category, err)
	}

	metrics.RecordGeneration(provider, "success", elapsed)
	slog.Info("summary generated", "provider", provider, "seconds", elapsed)

	if s.opts.Cache != nil && text != llm.NoSummaryText {
		if err := s.opts.Cache.Set(ctx, key, text); err != nil {
			slog.Warn("summary cache store failed", "error", err)
		}
	}

	return model.SummaryResult{Status: model.StatusGenerated, Text: text}
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

// recovered turns a panic inside an errgroup task into its error.
func recovered(fn func() error) func() error {
	return func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("panic: %v", r)
			}
		}()
		return fn()
	}
}

func failed(category string, err error) model.SummaryResult {
	return model.SummaryResult{
		Status: model.StatusError,
		Text:   fmt.Sprintf("Summarize failed: %s: %v", category, err),
	}
}

func cacheKey(provider, model, prompt string) string {
	sum := sha256.Sum256([]byte(provider + "\n" + model + "\n" + prompt))
	return hex.EncodeToString(sum[:])
}
