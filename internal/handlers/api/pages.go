package api

import (
	"strconv"

	"github.com/gofiber/fiber/v3"

	"seodash/internal/db"
)

// PageHandler serves the pages read API.
type PageHandler struct {
	db *db.DB
}

// NewPageHandler creates a new page handler.
func NewPageHandler(database *db.DB) *PageHandler {
	return &PageHandler{db: database}
}

// List returns pages with their latest snapshot. quickwins=1 restricts
// the list to pages ranking 4-10, one push away from the first results.
func (h *PageHandler) List(c fiber.Ctx) error {
	status := c.Query("status", "")
	quickWins := c.Query("quickwins", "") == "1"

	limit, err := strconv.Atoi(c.Query("limit", "100"))
	if err != nil || limit < 1 || limit > 500 {
		limit = 100
	}

	pages, err := h.db.ListPages(c.Context(), status, quickWins, limit)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to fetch pages")
	}

	return jsonSuccess(c, fiber.Map{
		"pages": pages,
		"total": len(pages),
	})
}
