package db

import (
	"context"

	"seodash/internal/models"
)

// ListAlerts returns alerts newest first, optionally filtered by status.
// The import pipeline never writes this table; it is a read sink.
func (d *DB) ListAlerts(ctx context.Context, status string, limit int) ([]models.Alert, error) {
	query := `
		SELECT id, type, severity, keyword_id, page_id, message, status, created_at
		FROM alerts
	`
	args := []any{limit}
	if status != "" && status != "all" {
		query += ` WHERE status = $2`
		args = append(args, status)
	}
	query += ` ORDER BY created_at DESC LIMIT $1`

	rows, err := d.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var alerts []models.Alert
	for rows.Next() {
		var a models.Alert
		if err := rows.Scan(
			&a.ID,
			&a.Type,
			&a.Severity,
			&a.KeywordID,
			&a.PageID,
			&a.Message,
			&a.Status,
			&a.CreatedAt,
		); err != nil {
			return nil, err
		}
		alerts = append(alerts, a)
	}
	return alerts, rows.Err()
}

// CountOpenAlerts returns the number of alerts still open.
func (d *DB) CountOpenAlerts(ctx context.Context) (int64, error) {
	var n int64
	err := d.Pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM alerts WHERE status = $1`, models.AlertStatusOpen).Scan(&n)
	return n, err
}
