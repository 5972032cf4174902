package models

import (
	"time"

	"github.com/google/uuid"
)

// Page status values.
const (
	PageStatusActive = "active"
)

// Page represents a tracked URL with its latest-known search snapshot.
// PreviousPosition is a single-slot history: the position value as it was
// immediately before the last import overwrote it.
type Page struct {
	ID               uuid.UUID  `json:"id"`
	URL              string     `json:"url"`
	Title            *string    `json:"title"`
	Status           string     `json:"status"`
	Clicks           *int       `json:"clicks"`
	Impressions      *int       `json:"impressions"`
	CTR              *float64   `json:"ctr"`
	Position         *float64   `json:"position"`
	PreviousPosition *float64   `json:"previous_position"`
	Formation        *string    `json:"formation"`
	GSCDate          *time.Time `json:"gsc_date"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}
