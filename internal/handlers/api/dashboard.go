package api

import (
	"github.com/gofiber/fiber/v3"

	"seodash/internal/analytics"
	"seodash/internal/db"
)

// predictionMonths is how far back the trend series reaches.
const predictionMonths = 12

// DashboardHandler serves the dashboard KPI and prediction API.
type DashboardHandler struct {
	db *db.DB
}

// NewDashboardHandler creates a new dashboard handler.
func NewDashboardHandler(database *db.DB) *DashboardHandler {
	return &DashboardHandler{db: database}
}

// Overview returns entity totals plus next-month predictions extrapolated
// from monthly keyword fact aggregates.
func (h *DashboardHandler) Overview(c fiber.Ctx) error {
	ctx := c.Context()

	totalKeywords, err := h.db.CountKeywords(ctx)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to fetch totals")
	}
	totalPages, err := h.db.CountPages(ctx)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to fetch totals")
	}
	avgPosition, err := h.db.AvgPagePosition(ctx)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to fetch totals")
	}
	openAlerts, err := h.db.CountOpenAlerts(ctx)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to fetch totals")
	}

	months, err := h.db.MonthlyKeywordAggregates(ctx, predictionMonths)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to fetch monthly aggregates")
	}

	clicksSeries := make([]float64, len(months))
	impressionsSeries := make([]float64, len(months))
	positionSeries := make([]float64, len(months))
	for i, m := range months {
		clicksSeries[i] = m.Clicks
		impressionsSeries[i] = m.Impressions
		positionSeries[i] = m.AvgPosition
	}

	return jsonSuccess(c, fiber.Map{
		"totals": fiber.Map{
			"keywords":     totalKeywords,
			"pages":        totalPages,
			"avg_position": avgPosition,
			"open_alerts":  openAlerts,
		},
		"predictions": fiber.Map{
			"months":      len(months),
			"clicks":      predictOrNil(clicksSeries),
			"impressions": predictOrNil(impressionsSeries),
			// Months with no valid position are dropped, not treated as rank 0.
			"position": predictOrNil(analytics.DropZeros(positionSeries)),
		},
	})
}

// predictOrNil extrapolates the next value, or returns nil when the
// series is too short.
func predictOrNil(series []float64) *float64 {
	prediction, err := analytics.PredictNext(series)
	if err != nil {
		return nil
	}
	return &prediction
}
