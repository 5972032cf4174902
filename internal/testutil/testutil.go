// Package testutil provides test utilities and helpers.
package testutil

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"seodash/internal/db"
)

// TestDB creates a test database connection and returns a cleanup function.
// Tests are skipped when TEST_DATABASE_URL is not set.
func TestDB(t *testing.T) (*db.DB, func()) {
	t.Helper()

	connString := os.Getenv("TEST_DATABASE_URL")
	if connString == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping database test")
	}

	ctx := context.Background()
	database, err := db.New(ctx, connString)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	// Run migrations
	if err := database.RunMigrations(connString); err != nil {
		database.Close()
		t.Fatalf("failed to run migrations: %v", err)
	}

	cleanup := func() {
		cleanupTestData(ctx, database.Pool)
		database.Close()
	}

	return database, cleanup
}

// cleanupTestData removes all test data from the database.
func cleanupTestData(ctx context.Context, pool *pgxpool.Pool) {
	// Delete in order to respect foreign keys
	pool.Exec(ctx, "DELETE FROM alerts")
	pool.Exec(ctx, "DELETE FROM positions")
	pool.Exec(ctx, "DELETE FROM page_metrics_history")
	pool.Exec(ctx, "DELETE FROM keywords")
	pool.Exec(ctx, "DELETE FROM pages")
	pool.Exec(ctx, "DELETE FROM import_counters")
	pool.Exec(ctx, "DELETE FROM users")
}

// CreateTestKeyword creates a test keyword and returns its ID.
func CreateTestKeyword(t *testing.T, database *db.DB, keyword string, volume *int) string {
	t.Helper()
	ctx := context.Background()

	var id string
	err := database.Pool.QueryRow(ctx, `
		INSERT INTO keywords (keyword, volume)
		VALUES ($1, $2)
		RETURNING id
	`, keyword, volume).Scan(&id)
	if err != nil {
		t.Fatalf("failed to create test keyword: %v", err)
	}

	return id
}

// CreateTestPage creates a test page and returns its ID.
func CreateTestPage(t *testing.T, database *db.DB, url string, position *float64) string {
	t.Helper()
	ctx := context.Background()

	var id string
	err := database.Pool.QueryRow(ctx, `
		INSERT INTO pages (url, position)
		VALUES ($1, $2)
		ON CONFLICT (url) DO UPDATE SET position = EXCLUDED.position
		RETURNING id
	`, url, position).Scan(&id)
	if err != nil {
		t.Fatalf("failed to create test page: %v", err)
	}

	return id
}

// CreateTestPosition inserts a position fact for a keyword.
func CreateTestPosition(t *testing.T, database *db.DB, keywordID string, date time.Time, source string, position *float64, clicks *int) {
	t.Helper()
	ctx := context.Background()

	_, err := database.Pool.Exec(ctx, `
		INSERT INTO positions (keyword_id, date, source, position, clicks)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (keyword_id, date, source) DO UPDATE SET
			position = EXCLUDED.position,
			clicks = EXCLUDED.clicks
	`, keywordID, date, source, position, clicks)
	if err != nil {
		t.Fatalf("failed to create test position: %v", err)
	}
}
