package db

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"seodash/internal/analytics"
)

// PageFact is one import row for the batched page history upsert.
type PageFact struct {
	PageID      uuid.UUID
	Date        time.Time
	Source      string
	Clicks      *int
	Impressions *int
	CTR         *float64
	Position    *float64
}

// UpsertPageFacts writes one batch of page metric facts, keyed by
// (page_id, date, source). Re-importing the same day and source rewrites
// the existing rows instead of duplicating them. Returns the number of
// rows written.
func (d *DB) UpsertPageFacts(ctx context.Context, batch []PageFact) (int, error) {
	if len(batch) == 0 {
		return 0, nil
	}

	var sb strings.Builder
	sb.WriteString(`
		INSERT INTO page_metrics_history (page_id, date, source, clicks, impressions, ctr, position)
		VALUES `)

	args := make([]any, 0, len(batch)*7)
	for i, f := range batch {
		if i > 0 {
			sb.WriteString(", ")
		}
		base := i * 7
		fmt.Fprintf(&sb, "($%d, $%d, $%d, $%d, $%d, $%d, $%d)",
			base+1, base+2, base+3, base+4, base+5, base+6, base+7)
		args = append(args, f.PageID, f.Date, f.Source, f.Clicks, f.Impressions, f.CTR, f.Position)
	}

	sb.WriteString(`
		ON CONFLICT (page_id, date, source) DO UPDATE SET
			clicks = EXCLUDED.clicks,
			impressions = EXCLUDED.impressions,
			ctr = EXCLUDED.ctr,
			position = EXCLUDED.position
		RETURNING id
	`)

	rows, err := d.Pool.Query(ctx, sb.String(), args...)
	if err != nil {
		return 0, err
	}
	defer rows.Close()

	written := 0
	for rows.Next() {
		written++
	}
	return written, rows.Err()
}

// PageFactsInRange returns the page metric facts in the inclusive date
// range, reduced to the fields the aggregation engine reads.
func (d *DB) PageFactsInRange(ctx context.Context, from, to time.Time) ([]analytics.MetricRow, error) {
	rows, err := d.Pool.Query(ctx, `
		SELECT clicks, impressions, ctr, position
		FROM page_metrics_history
		WHERE date >= $1 AND date <= $2
	`, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var facts []analytics.MetricRow
	for rows.Next() {
		var f analytics.MetricRow
		if err := rows.Scan(&f.Clicks, &f.Impressions, &f.CTR, &f.Position); err != nil {
			return nil, err
		}
		facts = append(facts, f)
	}
	return facts, rows.Err()
}
