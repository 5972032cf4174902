package db

import (
	"context"

	"seodash/internal/models"
)

// IncrementImportCounter upserts an import count by source and outcome.
func (d *DB) IncrementImportCounter(ctx context.Context, source, outcome string) error {
	_, err := d.Pool.Exec(ctx, `
		INSERT INTO import_counters (source, outcome, count)
		VALUES ($1, $2, 1)
		ON CONFLICT (source, outcome) DO UPDATE
		SET count = import_counters.count + 1
	`, source, outcome)
	return err
}

// GetAllImportCounters returns all import counter rows for metrics export.
func (d *DB) GetAllImportCounters(ctx context.Context) ([]models.ImportCounter, error) {
	rows, err := d.Pool.Query(ctx, `SELECT source, outcome, count FROM import_counters`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var counters []models.ImportCounter
	for rows.Next() {
		var c models.ImportCounter
		if err := rows.Scan(&c.Source, &c.Outcome, &c.Count); err != nil {
			return nil, err
		}
		counters = append(counters, c)
	}
	return counters, rows.Err()
}
