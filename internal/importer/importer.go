// Package importer runs the import pipeline: parsed records are
// reconciled against canonical keywords and pages, then dated metric
// facts are written. Each import runs to completion inside one request;
// row and batch failures are collected into the report instead of
// aborting the run.
package importer

import (
	"context"
	"time"

	"github.com/google/uuid"

	"seodash/internal/db"
	"seodash/internal/models"
)

// batchSize bounds the number of rows per storage write. Batch boundaries
// never change a row's outcome; they only cap payload size.
const batchSize = 100

// Store is the storage surface the pipeline writes through.
type Store interface {
	GetKeywordByText(ctx context.Context, text string) (*models.Keyword, error)
	CreateKeyword(ctx context.Context, kw *models.Keyword) error
	FillForwardKeywordMetrics(ctx context.Context, id uuid.UUID, volume, difficulty *int) error
	UpsertPosition(ctx context.Context, pos *models.Position) error
	UpsertPageSnapshots(ctx context.Context, batch []db.PageSnapshot) ([]db.PageUpsertResult, error)
	UpsertPageFacts(ctx context.Context, batch []db.PageFact) (int, error)
}

// Importer drives the import pipeline against a store.
type Importer struct {
	store Store
}

// New creates an importer writing through the given store.
func New(store Store) *Importer {
	return &Importer{store: store}
}

// dateOnly truncates a timestamp to its UTC calendar date, the granularity
// of metric facts.
func dateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
