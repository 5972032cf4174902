package db

import (
	"context"
	"testing"
)

func TestIncrementImportCounter(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if err := db.IncrementImportCounter(ctx, "gsc", "succeeded"); err != nil {
			t.Fatalf("IncrementImportCounter() error = %v", err)
		}
	}
	if err := db.IncrementImportCounter(ctx, "semrush", "rejected"); err != nil {
		t.Fatalf("IncrementImportCounter() error = %v", err)
	}

	counters, err := db.GetAllImportCounters(ctx)
	if err != nil {
		t.Fatalf("GetAllImportCounters() error = %v", err)
	}
	if len(counters) != 2 {
		t.Fatalf("counter rows = %d, want 2", len(counters))
	}

	byKey := make(map[string]int64, len(counters))
	for _, c := range counters {
		byKey[c.Source+"/"+c.Outcome] = c.Count
	}
	if byKey["gsc/succeeded"] != 3 {
		t.Errorf("gsc/succeeded = %d, want 3", byKey["gsc/succeeded"])
	}
	if byKey["semrush/rejected"] != 1 {
		t.Errorf("semrush/rejected = %d, want 1", byKey["semrush/rejected"])
	}
}
