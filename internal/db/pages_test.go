package db

import (
	"context"
	"testing"
	"time"

	"seodash/internal/models"
)

func TestUpsertPageSnapshotsInsertAndUpdate(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	date := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	first := []PageSnapshot{{
		URL:      "https://example.com/guide",
		Clicks:   intPtr(50),
		Position: floatPtr(8.2),
		Date:     date,
		Status:   models.PageStatusActive,
	}}
	results, err := db.UpsertPageSnapshots(ctx, first)
	if err != nil {
		t.Fatalf("UpsertPageSnapshots() error = %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("results = %d, want 1", len(results))
	}
	if !results[0].Inserted {
		t.Error("first upsert Inserted = false, want true")
	}

	page, err := db.GetPageByURL(ctx, "https://example.com/guide")
	if err != nil {
		t.Fatalf("GetPageByURL() error = %v", err)
	}
	if page.PreviousPosition != nil {
		t.Errorf("PreviousPosition = %v, want nil on insert", *page.PreviousPosition)
	}

	// Second import overwrites position and captures the old one.
	second := []PageSnapshot{{
		URL:      "https://example.com/guide",
		Clicks:   intPtr(80),
		Position: floatPtr(5.4),
		Date:     date.AddDate(0, 1, 0),
		Status:   models.PageStatusActive,
	}}
	results, err = db.UpsertPageSnapshots(ctx, second)
	if err != nil {
		t.Fatalf("UpsertPageSnapshots() error = %v", err)
	}
	if results[0].Inserted {
		t.Error("second upsert Inserted = true, want false")
	}
	if results[0].ID != page.ID {
		t.Errorf("second upsert ID = %v, want %v", results[0].ID, page.ID)
	}

	page, err = db.GetPageByURL(ctx, "https://example.com/guide")
	if err != nil {
		t.Fatalf("GetPageByURL() error = %v", err)
	}
	if page.Position == nil || *page.Position != 5.4 {
		t.Errorf("Position = %v, want 5.4", page.Position)
	}
	if page.PreviousPosition == nil || *page.PreviousPosition != 8.2 {
		t.Errorf("PreviousPosition = %v, want 8.2", page.PreviousPosition)
	}
	if page.Clicks == nil || *page.Clicks != 80 {
		t.Errorf("Clicks = %v, want 80", page.Clicks)
	}
}

func TestUpsertPageSnapshotsEmptyBatch(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	results, err := db.UpsertPageSnapshots(context.Background(), nil)
	if err != nil {
		t.Fatalf("UpsertPageSnapshots(nil) error = %v", err)
	}
	if results != nil {
		t.Errorf("results = %v, want nil", results)
	}
}

func TestListPagesQuickWins(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	date := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	batch := []PageSnapshot{
		{URL: "https://example.com/top", Clicks: intPtr(100), Position: floatPtr(2.1), Date: date, Status: models.PageStatusActive},
		{URL: "https://example.com/close", Clicks: intPtr(40), Position: floatPtr(6.5), Date: date, Status: models.PageStatusActive},
		{URL: "https://example.com/far", Clicks: intPtr(5), Position: floatPtr(24.0), Date: date, Status: models.PageStatusActive},
	}
	if _, err := db.UpsertPageSnapshots(ctx, batch); err != nil {
		t.Fatalf("UpsertPageSnapshots() error = %v", err)
	}

	pages, err := db.ListPages(ctx, "", true, 50)
	if err != nil {
		t.Fatalf("ListPages(quickWins) error = %v", err)
	}
	if len(pages) != 1 {
		t.Fatalf("quick wins = %d pages, want 1", len(pages))
	}
	if pages[0].URL != "https://example.com/close" {
		t.Errorf("quick win = %q, want the position 6.5 page", pages[0].URL)
	}

	pages, err = db.ListPages(ctx, "all", false, 50)
	if err != nil {
		t.Fatalf("ListPages(all) error = %v", err)
	}
	if len(pages) != 3 {
		t.Fatalf("all pages = %d, want 3", len(pages))
	}
	if pages[0].URL != "https://example.com/top" {
		t.Errorf("first page = %q, want ordering by clicks desc", pages[0].URL)
	}
}

func TestAvgPagePosition(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	avg, err := db.AvgPagePosition(ctx)
	if err != nil {
		t.Fatalf("AvgPagePosition() error = %v", err)
	}
	if avg != nil {
		t.Errorf("AvgPagePosition() = %v, want nil with no pages", *avg)
	}

	date := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	batch := []PageSnapshot{
		{URL: "https://example.com/a", Position: floatPtr(4), Date: date, Status: models.PageStatusActive},
		{URL: "https://example.com/b", Position: floatPtr(10), Date: date, Status: models.PageStatusActive},
		{URL: "https://example.com/c", Date: date, Status: models.PageStatusActive},
	}
	if _, err := db.UpsertPageSnapshots(ctx, batch); err != nil {
		t.Fatalf("UpsertPageSnapshots() error = %v", err)
	}

	avg, err = db.AvgPagePosition(ctx)
	if err != nil {
		t.Fatalf("AvgPagePosition() error = %v", err)
	}
	if avg == nil || *avg != 7 {
		t.Errorf("AvgPagePosition() = %v, want 7", avg)
	}
}
