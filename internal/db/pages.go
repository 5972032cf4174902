package db

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"seodash/internal/models"
)

// pageColumns is the standard column list for page queries.
const pageColumns = `id, url, title, status, clicks, impressions, ctr, position,
	previous_position, formation, gsc_date, created_at, updated_at`

// PageSnapshot is one import row for the batched page upsert.
type PageSnapshot struct {
	URL         string
	Clicks      *int
	Impressions *int
	CTR         *float64
	Position    *float64
	Date        time.Time
	Status      string
}

// PageUpsertResult reports one upserted page.
type PageUpsertResult struct {
	ID       uuid.UUID
	URL      string
	Inserted bool
}

// UpsertPageSnapshots upserts one batch of page snapshots keyed on url.
// The DO UPDATE clause reads pages.position before overwriting it, so
// previous_position is captured on the same write. Newly inserted pages
// keep previous_position null.
func (d *DB) UpsertPageSnapshots(ctx context.Context, batch []PageSnapshot) ([]PageUpsertResult, error) {
	if len(batch) == 0 {
		return nil, nil
	}

	var sb strings.Builder
	sb.WriteString(`
		INSERT INTO pages (url, clicks, impressions, ctr, position, gsc_date, status)
		VALUES `)

	args := make([]any, 0, len(batch)*7)
	for i, snap := range batch {
		if i > 0 {
			sb.WriteString(", ")
		}
		base := i * 7
		fmt.Fprintf(&sb, "($%d, $%d, $%d, $%d, $%d, $%d, $%d)",
			base+1, base+2, base+3, base+4, base+5, base+6, base+7)
		args = append(args, snap.URL, snap.Clicks, snap.Impressions, snap.CTR, snap.Position, snap.Date, snap.Status)
	}

	sb.WriteString(`
		ON CONFLICT (url) DO UPDATE SET
			previous_position = pages.position,
			clicks = EXCLUDED.clicks,
			impressions = EXCLUDED.impressions,
			ctr = EXCLUDED.ctr,
			position = EXCLUDED.position,
			gsc_date = EXCLUDED.gsc_date,
			status = EXCLUDED.status,
			updated_at = NOW()
		RETURNING id, url, (xmax = 0) AS inserted
	`)

	rows, err := d.Pool.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []PageUpsertResult
	for rows.Next() {
		var r PageUpsertResult
		if err := rows.Scan(&r.ID, &r.URL, &r.Inserted); err != nil {
			return nil, err
		}
		results = append(results, r)
	}
	return results, rows.Err()
}

// GetPageByURL retrieves a page by its natural key.
func (d *DB) GetPageByURL(ctx context.Context, url string) (*models.Page, error) {
	query := `SELECT ` + pageColumns + ` FROM pages WHERE url = $1`

	var p models.Page
	err := d.Pool.QueryRow(ctx, query, url).Scan(
		&p.ID,
		&p.URL,
		&p.Title,
		&p.Status,
		&p.Clicks,
		&p.Impressions,
		&p.CTR,
		&p.Position,
		&p.PreviousPosition,
		&p.Formation,
		&p.GSCDate,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrPageNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// ListPages returns pages ordered by clicks, optionally filtered by status
// and by the quick-win range (position 4-10, close to a first-page jump).
func (d *DB) ListPages(ctx context.Context, status string, quickWins bool, limit int) ([]models.Page, error) {
	sql := `SELECT ` + pageColumns + ` FROM pages`
	var conds []string
	var args []any

	if status != "" && status != "all" {
		args = append(args, status)
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}
	if quickWins {
		conds = append(conds, "position >= 4 AND position <= 10")
	}
	if len(conds) > 0 {
		sql += " WHERE " + strings.Join(conds, " AND ")
	}

	args = append(args, limit)
	sql += fmt.Sprintf(" ORDER BY clicks DESC NULLS LAST, url ASC LIMIT $%d", len(args))

	rows, err := d.Pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var pages []models.Page
	for rows.Next() {
		var p models.Page
		if err := rows.Scan(
			&p.ID,
			&p.URL,
			&p.Title,
			&p.Status,
			&p.Clicks,
			&p.Impressions,
			&p.CTR,
			&p.Position,
			&p.PreviousPosition,
			&p.Formation,
			&p.GSCDate,
			&p.CreatedAt,
			&p.UpdatedAt,
		); err != nil {
			return nil, err
		}
		pages = append(pages, p)
	}
	return pages, rows.Err()
}

// CountPages returns the total number of tracked pages.
func (d *DB) CountPages(ctx context.Context) (int64, error) {
	var n int64
	err := d.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM pages`).Scan(&n)
	return n, err
}

// AvgPagePosition returns the mean of the current page positions, nil when
// no page has a known position.
func (d *DB) AvgPagePosition(ctx context.Context) (*float64, error) {
	var avg *float64
	err := d.Pool.QueryRow(ctx,
		`SELECT AVG(position) FROM pages WHERE position IS NOT NULL AND position > 0`).Scan(&avg)
	return avg, err
}
