package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"stockpulse/internal/model"

	"github.com/lib/pq"
)

type StockRepository struct {
	db *sql.DB
}

func NewStockRepository(db *sql.DB) *StockRepository {
	return &StockRepository{db: db}
}

// GetTotals sums quantities per category over the inclusive range.
func (r *StockRepository) GetTotals(ctx context.Context, start, end time.Time) (model.Totals, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT fruit, COALESCE(SUM(quantity), 0)
		FROM stock_entry
		WHERE date BETWEEN $1 AND $2
		GROUP BY fruit
	`, start, end)
	if err != nil {
		return model.Totals{}, err
	}
	defer rows.Close()

	totals := model.NewTotals()
	for rows.Next() {
		var fruit string
		var sum int64
		if err := rows.Scan(&fruit, &sum); err != nil {
			return model.Totals{}, err
		}

		category, err := model.ParseCategory(fruit)
		if err != nil {
			return model.Totals{}, fmt.Errorf("stock_entry totals: %w", err)
		}
		if err := totals.Add(category, int(sum)); err != nil {
			return model.Totals{}, err
		}
	}

	if err := rows.Err(); err != nil {
		return model.Totals{}, err
	}

	return totals, nil
}

// GetSeries returns every point in the inclusive range, ordered by date
// within each category.
func (r *StockRepository) GetSeries(ctx context.Context, start, end time.Time) ([]model.TimeseriesPoint, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT date, fruit, quantity
		FROM stock_entry
		WHERE date BETWEEN $1 AND $2
		ORDER BY fruit ASC, date ASC
	`, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	points := []model.TimeseriesPoint{}
	for rows.Next() {
		var p model.TimeseriesPoint
		var fruit string
		if err := rows.Scan(&p.Date, &fruit, &p.Quantity); err != nil {
			return nil, err
		}

		p.Category, err = model.ParseCategory(fruit)
		if err != nil {
			return nil, fmt.Errorf("stock_entry series: %w", err)
		}
		p.Date = model.DateOf(p.Date)
		points = append(points, p)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return points, nil
}

// SaveEntries inserts entries in one statement and skips (date, fruit)
// pairs that already exist. It returns the number of rows written.
func (r *StockRepository) SaveEntries(ctx context.Context, entries []model.StockEntry) (int64, error) {
	if len(entries) == 0 {
		return 0, nil
	}

	dates := make([]string, len(entries))
	fruits := make([]string, len(entries))
	quantities := make([]int64, len(entries))
	for i, e := range entries {
		if e.Quantity < 0 {
			return 0, fmt.Errorf("entry %s %s: negative quantity %d", model.FormatDate(e.Date), e.Category, e.Quantity)
		}
		dates[i] = model.FormatDate(e.Date)
		fruits[i] = string(e.Category)
		quantities[i] = int64(e.Quantity)
	}

	res, err := r.db.ExecContext(ctx, `
		INSERT INTO stock_entry(date, fruit, quantity)
		SELECT unnest($1::date[]), unnest($2::text[]), unnest($3::int[])
		ON CONFLICT (date, fruit) DO NOTHING
	`, pq.Array(dates), pq.Array(fruits), pq.Array(quantities))
	if err != nil {
		return 0, err
	}

	return res.RowsAffected()
}

func (r *StockRepository) CountEntries(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM stock_entry`).Scan(&count)
	return count, err
}
