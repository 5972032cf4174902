package db

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"seodash/internal/models"
)

// keywordColumns is the standard column list for keyword queries.
const keywordColumns = `id, keyword, priority, intent, volume, difficulty, assigned_page_id, created_at, updated_at`

// scanKeyword scans a row into a Keyword struct.
func scanKeyword(row pgx.Row) (*models.Keyword, error) {
	var kw models.Keyword
	err := row.Scan(
		&kw.ID,
		&kw.Keyword,
		&kw.Priority,
		&kw.Intent,
		&kw.Volume,
		&kw.Difficulty,
		&kw.AssignedPageID,
		&kw.CreatedAt,
		&kw.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrKeywordNotFound
	}
	if err != nil {
		return nil, err
	}
	return &kw, nil
}

// GetKeywordByText retrieves a keyword by its natural key. The match is
// exact on the trimmed text, case-insensitive.
func (d *DB) GetKeywordByText(ctx context.Context, text string) (*models.Keyword, error) {
	query := `SELECT ` + keywordColumns + ` FROM keywords WHERE LOWER(keyword) = LOWER($1)`
	return scanKeyword(d.Pool.QueryRow(ctx, query, text))
}

// CreateKeyword inserts a new keyword. Volume and difficulty stay null
// when the caller has no known positive value for them.
func (d *DB) CreateKeyword(ctx context.Context, kw *models.Keyword) error {
	query := `
		INSERT INTO keywords (keyword, volume, difficulty)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`

	err := d.Pool.QueryRow(ctx, query, kw.Keyword, kw.Volume, kw.Difficulty).
		Scan(&kw.ID, &kw.CreatedAt, &kw.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicateKeyword
		}
		return err
	}
	return nil
}

// FillForwardKeywordMetrics updates volume and difficulty with incoming
// known values only. A nil argument leaves the stored value untouched, so
// an import can never erase a previously known metric.
func (d *DB) FillForwardKeywordMetrics(ctx context.Context, id uuid.UUID, volume, difficulty *int) error {
	query := `
		UPDATE keywords
		SET volume = COALESCE($1, volume),
			difficulty = COALESCE($2, difficulty),
			updated_at = NOW()
		WHERE id = $3
	`
	result, err := d.Pool.Exec(ctx, query, volume, difficulty, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return ErrKeywordNotFound
	}
	return nil
}

// ListKeywords returns a page of keywords ordered by text, optionally
// filtered by a case-insensitive substring search, with the total count.
func (d *DB) ListKeywords(ctx context.Context, search string, offset, limit int) ([]models.Keyword, int, error) {
	var total int
	var rows pgx.Rows
	var err error

	if search != "" {
		pattern := "%" + search + "%"
		if err = d.Pool.QueryRow(ctx,
			`SELECT COUNT(*) FROM keywords WHERE keyword ILIKE $1`, pattern).Scan(&total); err != nil {
			return nil, 0, err
		}
		rows, err = d.Pool.Query(ctx, `
			SELECT `+keywordColumns+`
			FROM keywords
			WHERE keyword ILIKE $1
			ORDER BY keyword ASC
			OFFSET $2 LIMIT $3
		`, pattern, offset, limit)
	} else {
		if err = d.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM keywords`).Scan(&total); err != nil {
			return nil, 0, err
		}
		rows, err = d.Pool.Query(ctx, `
			SELECT `+keywordColumns+`
			FROM keywords
			ORDER BY keyword ASC
			OFFSET $1 LIMIT $2
		`, offset, limit)
	}
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var keywords []models.Keyword
	for rows.Next() {
		var kw models.Keyword
		if err := rows.Scan(
			&kw.ID,
			&kw.Keyword,
			&kw.Priority,
			&kw.Intent,
			&kw.Volume,
			&kw.Difficulty,
			&kw.AssignedPageID,
			&kw.CreatedAt,
			&kw.UpdatedAt,
		); err != nil {
			return nil, 0, err
		}
		keywords = append(keywords, kw)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return keywords, total, nil
}

// CountKeywords returns the total number of tracked keywords.
func (d *DB) CountKeywords(ctx context.Context) (int64, error) {
	var n int64
	err := d.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM keywords`).Scan(&n)
	return n, err
}
