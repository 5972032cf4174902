package models

import (
	"time"

	"github.com/google/uuid"
)

// Alert severities and statuses.
const (
	SeverityInfo     = "info"
	SeverityWarning  = "warning"
	SeverityCritical = "critical"

	AlertStatusOpen     = "open"
	AlertStatusResolved = "resolved"
)

// Alert is a read-only notification row. The import pipeline never writes
// alerts; they are populated externally and only surfaced by the API.
type Alert struct {
	ID        uuid.UUID  `json:"id"`
	Type      string     `json:"type"`
	Severity  string     `json:"severity"`
	KeywordID *uuid.UUID `json:"keyword_id"`
	PageID    *uuid.UUID `json:"page_id"`
	Message   *string    `json:"message"`
	Status    string     `json:"status"`
	CreatedAt time.Time  `json:"created_at"`
}
