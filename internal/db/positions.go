package db

import (
	"context"
	"time"

	"github.com/google/uuid"

	"seodash/internal/analytics"
	"seodash/internal/models"
)

// UpsertPosition writes one keyword metric fact. The (keyword_id, date,
// source) key makes re-imports idempotent: the same day and source always
// resolves to one row, last writer wins.
func (d *DB) UpsertPosition(ctx context.Context, pos *models.Position) error {
	query := `
		INSERT INTO positions (keyword_id, date, source, position, clicks, impressions, ctr)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (keyword_id, date, source) DO UPDATE SET
			position = EXCLUDED.position,
			clicks = EXCLUDED.clicks,
			impressions = EXCLUDED.impressions,
			ctr = EXCLUDED.ctr
		RETURNING id, created_at
	`
	return d.Pool.QueryRow(ctx, query,
		pos.KeywordID,
		pos.Date,
		pos.Source,
		pos.Position,
		pos.Clicks,
		pos.Impressions,
		pos.CTR,
	).Scan(&pos.ID, &pos.CreatedAt)
}

// GetPositionsByKeywordIDs returns the facts for a set of keywords, newest
// first, grouped by keyword id.
func (d *DB) GetPositionsByKeywordIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID][]models.Position, error) {
	if len(ids) == 0 {
		return map[uuid.UUID][]models.Position{}, nil
	}

	rows, err := d.Pool.Query(ctx, `
		SELECT id, keyword_id, date, source, position, clicks, impressions, ctr, created_at
		FROM positions
		WHERE keyword_id = ANY($1)
		ORDER BY date DESC
	`, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	byKeyword := make(map[uuid.UUID][]models.Position)
	for rows.Next() {
		var p models.Position
		if err := rows.Scan(
			&p.ID,
			&p.KeywordID,
			&p.Date,
			&p.Source,
			&p.Position,
			&p.Clicks,
			&p.Impressions,
			&p.CTR,
			&p.CreatedAt,
		); err != nil {
			return nil, err
		}
		byKeyword[p.KeywordID] = append(byKeyword[p.KeywordID], p)
	}
	return byKeyword, rows.Err()
}

// KeywordFactsInRange returns the keyword metric facts in the inclusive
// date range, reduced to the fields the aggregation engine reads.
func (d *DB) KeywordFactsInRange(ctx context.Context, from, to time.Time) ([]analytics.MetricRow, error) {
	rows, err := d.Pool.Query(ctx, `
		SELECT clicks, impressions, ctr, position
		FROM positions
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

// MonthlyAggregate is one calendar month of summed keyword facts, used as
// input for trend extrapolation. AvgPosition is 0 for a month without any
// valid position fact; the predictor drops those months.
type MonthlyAggregate struct {
	Month       time.Time `json:"month"`
	Clicks      float64   `json:"clicks"`
	Impressions float64   `json:"impressions"`
	AvgPosition float64   `json:"avgPosition"`
}

// MonthlyKeywordAggregates returns per-month rollups over the last
// `months` calendar months, oldest first.
func (d *DB) MonthlyKeywordAggregates(ctx context.Context, months int) ([]MonthlyAggregate, error) {
	rows, err := d.Pool.Query(ctx, `
		SELECT date_trunc('month', date)::date AS month,
			COALESCE(SUM(clicks), 0),
			COALESCE(SUM(impressions), 0),
			COALESCE(AVG(position) FILTER (WHERE position > 0), 0)
		FROM positions
		WHERE date >= date_trunc('month', NOW()) - make_interval(months => $1)
		GROUP BY 1
		ORDER BY 1 ASC
	`, months)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var aggs []MonthlyAggregate
	for rows.Next() {
		var a MonthlyAggregate
		if err := rows.Scan(&a.Month, &a.Clicks, &a.Impressions, &a.AvgPosition); err != nil {
			return nil, err
		}
		aggs = append(aggs, a)
	}
	return aggs, rows.Err()
}
