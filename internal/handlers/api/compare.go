package api

import (
	"time"

	"github.com/gofiber/fiber/v3"

	"seodash/internal/analytics"
	"seodash/internal/db"
	"seodash/internal/validation"
)

// CompareHandler serves period-over-period comparison rollups.
type CompareHandler struct {
	db *db.DB
}

// NewCompareHandler creates a new compare handler.
func NewCompareHandler(database *db.DB) *CompareHandler {
	return &CompareHandler{db: database}
}

// periodRollups pairs the two periods' aggregates with their deltas.
type periodRollups struct {
	PeriodA analytics.Rollup `json:"period_a"`
	PeriodB analytics.Rollup `json:"period_b"`
	Changes rollupChanges    `json:"changes"`
}

// rollupChanges holds percent changes of period A against period B.
// PositionDelta is previous minus current, so positive means improved.
type rollupChanges struct {
	Clicks        *float64 `json:"clicks"`
	Impressions   *float64 `json:"impressions"`
	CTR           *float64 `json:"ctr"`
	PositionDelta *float64 `json:"position_delta"`
}

// Compare aggregates page and keyword facts over two inclusive date
// ranges. Defaults: period A is the current month to date, period B the
// previous calendar month.
func (h *CompareHandler) Compare(c fiber.Ctx) error {
	now := time.Now()
	defaultA := validation.CurrentMonth(now)
	defaultB := validation.PreviousMonth(now)

	periodA, ok := validation.ParseDateRange(c.Query("a_from"), c.Query("a_to"), defaultA.From, defaultA.To)
	if !ok {
		return jsonError(c, fiber.StatusBadRequest, "invalid period A date range")
	}
	periodB, ok := validation.ParseDateRange(c.Query("b_from"), c.Query("b_to"), defaultB.From, defaultB.To)
	if !ok {
		return jsonError(c, fiber.StatusBadRequest, "invalid period B date range")
	}

	pagesA, err := h.db.PageFactsInRange(c.Context(), periodA.From, periodA.To)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to fetch page facts")
	}
	pagesB, err := h.db.PageFactsInRange(c.Context(), periodB.From, periodB.To)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to fetch page facts")
	}
	keywordsA, err := h.db.KeywordFactsInRange(c.Context(), periodA.From, periodA.To)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to fetch keyword facts")
	}
	keywordsB, err := h.db.KeywordFactsInRange(c.Context(), periodB.From, periodB.To)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to fetch keyword facts")
	}

	const dateLayout = "2006-01-02"
	return jsonSuccess(c, fiber.Map{
		"period_a": fiber.Map{"from": periodA.From.Format(dateLayout), "to": periodA.To.Format(dateLayout)},
		"period_b": fiber.Map{"from": periodB.From.Format(dateLayout), "to": periodB.To.Format(dateLayout)},
		"pages":    compareRollups(analytics.Aggregate(pagesA), analytics.Aggregate(pagesB)),
		"keywords": compareRollups(analytics.Aggregate(keywordsA), analytics.Aggregate(keywordsB)),
	})
}

func compareRollups(a, b analytics.Rollup) periodRollups {
	changes := rollupChanges{
		Clicks:      analytics.PercentChange(float64(a.Clicks), float64(b.Clicks)),
		Impressions: analytics.PercentChange(float64(a.Impressions), float64(b.Impressions)),
	}
	if a.AvgCTR != nil && b.AvgCTR != nil {
		changes.CTR = analytics.PercentChange(*a.AvgCTR, *b.AvgCTR)
	}
	if a.AvgPosition != nil && b.AvgPosition != nil {
		// Positive delta = rank moved toward 1 = improvement.
		delta := analytics.PositionDelta(*b.AvgPosition, *a.AvgPosition)
		changes.PositionDelta = &delta
	}

	return periodRollups{PeriodA: a, PeriodB: b, Changes: changes}
}
