package fiber

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"migration-stats-service/internal/charts/core/domain"
	"migration-stats-service/internal/charts/core/usecase"

	"github.com/gofiber/fiber/v2"
)

type GetChartUseCase interface {
	Execute(ctx context.Context, in usecase.GetChartInput) (*domain.ChartSeries, error)
}

type ChartHandler struct {
	uc GetChartUseCase
}

func NewChartHandler(uc GetChartUseCase) *ChartHandler {
	return &ChartHandler{uc: uc}
}

// GetChart godoc
// @Summary Compute a dashboard chart series
// @Description Buckets per-customer ingestion events into a display-ready series
// @Tags Charts
// @Produce json
// @Param kind path string true "Chart kind: customers | ingestions | monthly"
// @Param window query string false "Day-range window: 60d | all (default 60d)"
// @Param metric query string false "Monthly metric: customers | volume"
// @Param now query int false "Reference time, unix ms (defaults to server time)"
// @Param customer query string false "Restrict to one customer"
// @Success 200 {object} ChartResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /charts/{kind} [get]
func (h *ChartHandler) GetChart(c *fiber.Ctx) error {
	kind := c.Params("kind")

	// The clock stops at this edge: the core only ever sees an
	// explicit reference instant.
	nowMs := time.Now().UnixMilli()
	if nowStr := c.Query("now", ""); nowStr != "" {
		v, err := strconv.ParseInt(nowStr, 10, 64)
		if err != nil {
			return c.Status(http.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid 'now' parameter",
			})
		}
		nowMs = v
	}

	var customerPtr *string
	customer := c.Query("customer", "")
	if customer != "" {
		customerPtr = &customer
	}

	in := usecase.GetChartInput{
		Kind:     kind,
		Window:   c.Query("window", ""),
		Metric:   c.Query("metric", ""),
		NowMs:    nowMs,
		Customer: customerPtr,
	}

	series, err := h.uc.Execute(c.Context(), in)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidChartKind),
			errors.Is(err, usecase.ErrInvalidWindow),
			errors.Is(err, usecase.ErrInvalidMetric),
			errors.Is(err, usecase.ErrInvalidReferenceTime):
			return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
				Error:   "invalid_chart",
				Message: err.Error(),
			})
		default:
			return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
				Error: "internal_server_error",
			})
		}
	}

	resp := ChartResponse{
		Kind:       series.Kind,
		Window:     series.Window,
		GrandTotal: series.GrandTotal,
		MaxCount:   series.MaxCount,
		Points:     make([]SeriesPointResponse, 0, len(series.Points)),
	}
	for _, p := range series.Points {
		resp.Points = append(resp.Points, SeriesPointResponse{
			Label:   p.Label,
			Count:   p.Count,
			Tooltip: p.Tooltip,
		})
	}

	return c.Status(http.StatusOK).JSON(resp)
}
