package models

// Import outcome constants
const (
	OutcomeSucceeded = "succeeded"
	OutcomeRejected  = "rejected"
	OutcomeRowError  = "row_error"
)

// ImportCounter represents a per-source import count by outcome.
type ImportCounter struct {
	Source  string
	Outcome string
	Count   int64
}
