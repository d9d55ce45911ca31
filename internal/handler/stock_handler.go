package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"stockpulse/internal/model"

	"github.com/gin-gonic/gin"
)

type StockStore interface {
	GetTotals(ctx context.Context, start, end time.Time) (model.Totals, error)
	GetSeries(ctx context.Context, start, end time.Time) ([]model.TimeseriesPoint, error)
	CountEntries(ctx context.Context) (int, error)
}

type StockHandler struct {
	repository StockStore
}

func NewStockHandler(repository StockStore) *StockHandler {
	return &StockHandler{repository: repository}
}

func (h *StockHandler) GetStocks(c *gin.Context) {
	r, ok := getQueryRange(c)
	if !ok {
		return
	}

	points, err := h.repository.GetSeries(c.Request.Context(), r.Start, r.End)
	if err != nil {
		slog.Error("error fetching series", "range", r.String(), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	res := make([]PointResponse, 0, len(points))
	for _, p := range points {
		res = append(res, PointResponse{
			Date:     model.FormatDate(p.Date),
			Fruit:    string(p.Category),
			Quantity: p.Quantity,
		})
	}

	c.JSON(http.StatusOK, res)
}

func (h *StockHandler) GetKpis(c *gin.Context) {
	r, ok := getQueryRange(c)
	if !ok {
		return
	}

	totals, err := h.repository.GetTotals(c.Request.Context(), r.Start, r.End)
	if err != nil {
		slog.Error("error fetching totals", "range", r.String(), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, toKpiResponse(totals, r.Days()))
}

func (h *StockHandler) GetHealth(c *gin.Context) {
	_, err := h.repository.CountEntries(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "unhealthy",
			"database": "disconnected",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"database": "connected",
	})
}

func toKpiResponse(totals model.Totals, days int) KpiResponse {
	res := KpiResponse{GrandTotal: totals.Grand, Days: days}
	for _, category := range model.Categories {
		switch category {
		case model.Apple:
			res.AppleTotal = totals.Of(category)
		case model.Orange:
			res.OrangeTotal = totals.Of(category)
		case model.Banana:
			res.BananaTotal = totals.Of(category)
		default:
			slog.Warn("category missing from KPI response", "category", category)
		}
	}
	return res
}

func getQueryRange(c *gin.Context) (model.DateRange, bool) {
	r, err := model.ParseDateRange(c.Query("startDate"), c.Query("endDate"))
	if err != nil {
		slog.Warn("invalid query parameter", "startDate", c.Query("startDate"), "endDate", c.Query("endDate"), "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date range. Ensure startDate <= endDate and both are YYYY-MM-DD."})
		return model.DateRange{}, false
	}
	return r, true
}
