package api

import (
	"strconv"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"seodash/internal/db"
)

// keywordsPerPage is the page size of the keywords listing.
const keywordsPerPage = 50

// KeywordHandler serves the keywords read API.
type KeywordHandler struct {
	db *db.DB
}

// NewKeywordHandler creates a new keyword handler.
func NewKeywordHandler(database *db.DB) *KeywordHandler {
	return &KeywordHandler{db: database}
}

// List returns a page of keywords with their metric facts, optionally
// filtered by a substring search on the keyword text.
func (h *KeywordHandler) List(c fiber.Ctx) error {
	search := c.Query("q", "")
	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	keywords, total, err := h.db.ListKeywords(c.Context(), search, (page-1)*keywordsPerPage, keywordsPerPage)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to fetch keywords")
	}

	ids := make([]uuid.UUID, len(keywords))
	for i, kw := range keywords {
		ids[i] = kw.ID
	}
	positions, err := h.db.GetPositionsByKeywordIDs(c.Context(), ids)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to fetch positions")
	}
	for i := range keywords {
		keywords[i].Positions = positions[keywords[i].ID]
	}

	totalPages := (total + keywordsPerPage - 1) / keywordsPerPage

	return jsonSuccess(c, fiber.Map{
		"keywords":    keywords,
		"total":       total,
		"page":        page,
		"total_pages": totalPages,
	})
}
