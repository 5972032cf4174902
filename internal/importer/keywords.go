package importer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"seodash/internal/csvdata"
	"seodash/internal/db"
	"seodash/internal/models"
)

// ImportGSCQueries imports a Search Console query export: one keyword per
// row, found or created by its text, plus one metric fact for the import
// date with source "gsc". Rows are processed independently; a failing row
// is reported with its keyword text and the loop continues.
func (im *Importer) ImportGSCQueries(ctx context.Context, text string, now time.Time) (*KeywordReport, error) {
	records, err := csvdata.Parse(text, csvdata.GSCQueries)
	if err != nil {
		return nil, err
	}

	report := &KeywordReport{TotalProcessed: len(records)}
	date := dateOnly(now)

	for _, rec := range records {
		keywordID, created, err := im.findOrCreateKeyword(ctx, rec.Key, nil, nil)
		if err != nil {
			report.Errors = append(report.Errors, fmt.Sprintf("keyword %q: %v", rec.Key, err))
			continue
		}
		if created {
			report.Stats.KeywordsCreated++
		} else {
			report.Stats.KeywordsExisting++
		}

		pos := &models.Position{
			KeywordID:   keywordID,
			Date:        date,
			Source:      models.SourceGSC,
			Position:    rec.Float(csvdata.FieldPosition),
			Clicks:      rec.Count(csvdata.FieldClicks),
			Impressions: rec.Count(csvdata.FieldImpressions),
			CTR:         rec.Percent(csvdata.FieldCTR),
		}
		if err := im.store.UpsertPosition(ctx, pos); err != nil {
			report.Errors = append(report.Errors, fmt.Sprintf("position %q: %v", rec.Key, err))
			continue
		}
		report.Stats.PositionsCreated++
	}

	return report, nil
}

// ImportSEMrush imports a SEMrush organic export: keywords gain volume and
// difficulty (fill-forward only), and rows ranking above zero produce a
// metric fact with source "semrush".
func (im *Importer) ImportSEMrush(ctx context.Context, text string, now time.Time) (*SEMrushReport, error) {
	records, err := csvdata.Parse(text, csvdata.SEMrush)
	if err != nil {
		return nil, err
	}

	report := &SEMrushReport{TotalProcessed: len(records)}
	date := dateOnly(now)

	for _, rec := range records {
		volume := rec.Count(csvdata.FieldVolume)
		difficulty := rec.Count(csvdata.FieldDifficulty)

		existing, err := im.store.GetKeywordByText(ctx, rec.Key)
		var keywordID uuid.UUID
		switch {
		case err == nil:
			keywordID = existing.ID
			// Only known positive values supersede what is stored; an
			// unknown incoming value never erases a known one.
			if volume != nil || difficulty != nil {
				if err := im.store.FillForwardKeywordMetrics(ctx, keywordID, volume, difficulty); err != nil {
					report.Errors = append(report.Errors, fmt.Sprintf("keyword %q: %v", rec.Key, err))
					continue
				}
				report.Stats.KeywordsUpdated++
			}
		case errors.Is(err, db.ErrKeywordNotFound):
			kw := &models.Keyword{Keyword: rec.Key, Volume: volume, Difficulty: difficulty}
			if err := im.store.CreateKeyword(ctx, kw); err != nil {
				report.Errors = append(report.Errors, fmt.Sprintf("keyword %q: %v", rec.Key, err))
				continue
			}
			keywordID = kw.ID
			report.Stats.KeywordsCreated++
		default:
			report.Errors = append(report.Errors, fmt.Sprintf("keyword %q: %v", rec.Key, err))
			continue
		}

		// SEMrush positions are whole ranks; rows without one carry no fact.
		if position := rec.Count(csvdata.FieldPosition); position != nil {
			rank := float64(*position)
			pos := &models.Position{
				KeywordID: keywordID,
				Date:      date,
				Source:    models.SourceSEMrush,
				Position:  &rank,
			}
			if err := im.store.UpsertPosition(ctx, pos); err != nil {
				report.Errors = append(report.Errors, fmt.Sprintf("position %q: %v", rec.Key, err))
				continue
			}
			report.Stats.PositionsCreated++
		}
	}

	return report, nil
}

// findOrCreateKeyword resolves a keyword natural key to an id, creating
// the keyword when absent. A create that loses a race to a concurrent
// insert falls back to the lookup.
func (im *Importer) findOrCreateKeyword(ctx context.Context, text string, volume, difficulty *int) (uuid.UUID, bool, error) {
	existing, err := im.store.GetKeywordByText(ctx, text)
	if err == nil {
		return existing.ID, false, nil
	}
	if !errors.Is(err, db.ErrKeywordNotFound) {
		return uuid.Nil, false, err
	}

	kw := &models.Keyword{Keyword: text, Volume: volume, Difficulty: difficulty}
	if err := im.store.CreateKeyword(ctx, kw); err != nil {
		if errors.Is(err, db.ErrDuplicateKeyword) {
			if existing, lookupErr := im.store.GetKeywordByText(ctx, text); lookupErr == nil {
				return existing.ID, false, nil
			}
		}
		return uuid.Nil, false, err
	}
	return kw.ID, true, nil
}
