package handler

import (
	"context"
	"log/slog"
	"net/http"

	"stockpulse/internal/model"

	"github.com/gin-gonic/gin"
)

type Summarizer interface {
	Summarize(ctx context.Context, startDate, endDate string) model.SummaryResult
}

type SummaryHandler struct {
	summarizer Summarizer
}

func NewSummaryHandler(summarizer Summarizer) *SummaryHandler {
	return &SummaryHandler{summarizer: summarizer}
}

// Summarize always answers 200 with a SummaryResult; a malformed body is
// treated as a missing range and reported through the result status.
func (h *SummaryHandler) Summarize(c *gin.Context) {
	var req SummarizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("invalid summarize body", "error", err)
	}

	res := h.summarizer.Summarize(c.Request.Context(), req.StartDate, req.EndDate)

	slog.Info("summarize finished",
		"status", res.Status,
		"start", req.StartDate,
		"end", req.EndDate,
		"request_id", c.GetString(requestIDKey),
	)

	c.JSON(http.StatusOK, res)
}
