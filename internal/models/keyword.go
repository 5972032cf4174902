package models

import (
	"time"

	"github.com/google/uuid"
)

// Priority values for keywords.
const (
	PriorityP0 = "P0"
	PriorityP1 = "P1"
	PriorityP2 = "P2"
	PriorityP3 = "P3"
)

// Keyword represents a tracked search query. The keyword text is the
// natural key, matched case-insensitively. Volume and difficulty are
// fill-forward attributes: once known, an import never resets them to
// unknown.
type Keyword struct {
	ID             uuid.UUID  `json:"id"`
	Keyword        string     `json:"keyword"`
	Priority       *string    `json:"priority"`
	Intent         *string    `json:"intent"`
	Volume         *int       `json:"volume"`
	Difficulty     *int       `json:"difficulty"`
	AssignedPageID *uuid.UUID `json:"assigned_page_id"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`

	// Positions holds the keyword's metric facts when the query joins them in.
	Positions []Position `json:"positions,omitempty"`
}
