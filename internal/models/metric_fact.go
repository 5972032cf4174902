package models

import (
	"time"

	"github.com/google/uuid"
)

// Metric fact sources.
const (
	SourceGSC     = "gsc"
	SourceSEMrush = "semrush"
)

// Position is a dated metric fact for a keyword, unique per
// (keyword_id, date, source). All metric values are nullable: the import
// pipeline stores nil for values the source reported as 0 or blank.
type Position struct {
	ID          uuid.UUID `json:"id"`
	KeywordID   uuid.UUID `json:"keyword_id"`
	Date        time.Time `json:"date"`
	Source      string    `json:"source"`
	Position    *float64  `json:"position"`
	Clicks      *int      `json:"clicks"`
	Impressions *int      `json:"impressions"`
	CTR         *float64  `json:"ctr"`
	CreatedAt   time.Time `json:"created_at"`
}

// PageMetric is a dated metric fact for a page, unique per
// (page_id, date, source).
type PageMetric struct {
	ID          uuid.UUID `json:"id"`
	PageID      uuid.UUID `json:"page_id"`
	Date        time.Time `json:"date"`
	Source      string    `json:"source"`
	Clicks      *int      `json:"clicks"`
	Impressions *int      `json:"impressions"`
	CTR         *float64  `json:"ctr"`
	Position    *float64  `json:"position"`
	CreatedAt   time.Time `json:"created_at"`
}
