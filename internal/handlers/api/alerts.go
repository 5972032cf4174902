package api

import (
	"github.com/gofiber/fiber/v3"

	"seodash/internal/db"
)

// AlertHandler serves the read-only alerts API.
type AlertHandler struct {
	db *db.DB
}

// NewAlertHandler creates a new alert handler.
func NewAlertHandler(database *db.DB) *AlertHandler {
	return &AlertHandler{db: database}
}

// List returns alerts newest first, optionally filtered by status.
func (h *AlertHandler) List(c fiber.Ctx) error {
	status := c.Query("status", "")

	alerts, err := h.db.ListAlerts(c.Context(), status, 100)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to fetch alerts")
	}

	return jsonSuccess(c, fiber.Map{
		"alerts": alerts,
		"total":  len(alerts),
	})
}
