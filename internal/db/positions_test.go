package db

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"seodash/internal/models"
)

func TestUpsertPositionIdempotent(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	kw := &models.Keyword{Keyword: "idempotent import"}
	if err := db.CreateKeyword(ctx, kw); err != nil {
		t.Fatalf("CreateKeyword() error = %v", err)
	}

	date := time.Date(2026, 8, 21, 0, 0, 0, 0, time.UTC)
	pos := &models.Position{
		KeywordID: kw.ID,
		Date:      date,
		Source:    models.SourceGSC,
		Position:  floatPtr(8.1),
		Clicks:    intPtr(5),
	}
	if err := db.UpsertPosition(ctx, pos); err != nil {
		t.Fatalf("UpsertPosition() error = %v", err)
	}

	// Same key again with new values: one row, last writer wins.
	updated := &models.Position{
		KeywordID: kw.ID,
		Date:      date,
		Source:    models.SourceGSC,
		Position:  floatPtr(6.3),
		Clicks:    intPtr(9),
	}
	if err := db.UpsertPosition(ctx, updated); err != nil {
		t.Fatalf("UpsertPosition() error = %v", err)
	}
	if updated.ID != pos.ID {
		t.Errorf("re-upsert ID = %v, want %v", updated.ID, pos.ID)
	}

	byKeyword, err := db.GetPositionsByKeywordIDs(ctx, []uuid.UUID{kw.ID})
	if err != nil {
		t.Fatalf("GetPositionsByKeywordIDs() error = %v", err)
	}
	facts := byKeyword[kw.ID]
	if len(facts) != 1 {
		t.Fatalf("fact count = %d, want 1", len(facts))
	}
	if facts[0].Position == nil || *facts[0].Position != 6.3 {
		t.Errorf("Position = %v, want 6.3", facts[0].Position)
	}
	if facts[0].Clicks == nil || *facts[0].Clicks != 9 {
		t.Errorf("Clicks = %v, want 9", facts[0].Clicks)
	}
}

func TestUpsertPositionDistinctSources(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	kw := &models.Keyword{Keyword: "two sources"}
	if err := db.CreateKeyword(ctx, kw); err != nil {
		t.Fatalf("CreateKeyword() error = %v", err)
	}

	date := time.Date(2026, 8, 21, 0, 0, 0, 0, time.UTC)
	for _, source := range []string{models.SourceGSC, models.SourceSEMrush} {
		pos := &models.Position{KeywordID: kw.ID, Date: date, Source: source, Position: floatPtr(3)}
		if err := db.UpsertPosition(ctx, pos); err != nil {
			t.Fatalf("UpsertPosition(%s) error = %v", source, err)
		}
	}

	byKeyword, err := db.GetPositionsByKeywordIDs(ctx, []uuid.UUID{kw.ID})
	if err != nil {
		t.Fatalf("GetPositionsByKeywordIDs() error = %v", err)
	}
	if len(byKeyword[kw.ID]) != 2 {
		t.Errorf("fact count = %d, want one per source", len(byKeyword[kw.ID]))
	}
}

func TestKeywordFactsInRange(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	kw := &models.Keyword{Keyword: "ranged"}
	if err := db.CreateKeyword(ctx, kw); err != nil {
		t.Fatalf("CreateKeyword() error = %v", err)
	}

	days := []time.Time{
		time.Date(2026, 7, 15, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
	}
	for i, day := range days {
		pos := &models.Position{KeywordID: kw.ID, Date: day, Source: models.SourceGSC, Clicks: intPtr(i + 1)}
		if err := db.UpsertPosition(ctx, pos); err != nil {
			t.Fatalf("UpsertPosition(%v) error = %v", day, err)
		}
	}

	facts, err := db.KeywordFactsInRange(ctx,
		time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("KeywordFactsInRange() error = %v", err)
	}
	if len(facts) != 2 {
		t.Fatalf("facts = %d, want 2 (range is inclusive both ends)", len(facts))
	}
}
