package importer

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"seodash/internal/csvdata"
	"seodash/internal/db"
	"seodash/internal/models"
	"seodash/internal/validation"
)

// ImportGSCPages imports a Search Console page export. Pages are upserted
// in batches keyed on url, capturing each page's pre-import position as
// previous_position, then one metric fact per page is written for the
// import date. A failed batch is recorded by its number and the remaining
// batches still run; failed rows are not retried.
func (im *Importer) ImportGSCPages(ctx context.Context, text string, now time.Time) (*PageReport, error) {
	records, err := csvdata.Parse(text, csvdata.GSCPages)
	if err != nil {
		return nil, err
	}

	date := dateOnly(now)

	// Last row wins when an export repeats a URL, so one upsert statement
	// never touches the same page twice.
	snapshots := make([]db.PageSnapshot, 0, len(records))
	index := make(map[string]int, len(records))
	var rowErrors []string
	for _, rec := range records {
		if ok, msg := validation.ValidateURL(rec.Key); !ok {
			rowErrors = append(rowErrors, fmt.Sprintf("page %q: %s", rec.Key, msg))
			continue
		}
		snap := db.PageSnapshot{
			URL:         rec.Key,
			Clicks:      rec.Count(csvdata.FieldClicks),
			Impressions: rec.Count(csvdata.FieldImpressions),
			CTR:         rec.Percent(csvdata.FieldCTR),
			Position:    rec.Float(csvdata.FieldPosition),
			Date:        date,
			Status:      models.PageStatusActive,
		}
		if i, seen := index[rec.Key]; seen {
			snapshots[i] = snap
			continue
		}
		index[rec.Key] = len(snapshots)
		snapshots = append(snapshots, snap)
	}

	report := &PageReport{TotalProcessed: len(snapshots), Errors: rowErrors}
	pageIDs := make(map[string]uuid.UUID, len(snapshots))

	for i := 0; i < len(snapshots); i += batchSize {
		end := min(i+batchSize, len(snapshots))
		results, err := im.store.UpsertPageSnapshots(ctx, snapshots[i:end])
		if err != nil {
			report.Errors = append(report.Errors, fmt.Sprintf("batch %d: %v", i/batchSize+1, err))
			continue
		}
		for _, r := range results {
			pageIDs[r.URL] = r.ID
			if r.Inserted {
				report.Stats.PagesCreated++
			} else {
				report.Stats.PagesUpdated++
			}
		}
	}

	facts := make([]db.PageFact, 0, len(snapshots))
	for _, snap := range snapshots {
		id, ok := pageIDs[snap.URL]
		if !ok {
			continue
		}
		facts = append(facts, db.PageFact{
			PageID:      id,
			Date:        date,
			Source:      models.SourceGSC,
			Clicks:      snap.Clicks,
			Impressions: snap.Impressions,
			CTR:         snap.CTR,
			Position:    snap.Position,
		})
	}

	for i := 0; i < len(facts); i += batchSize {
		end := min(i+batchSize, len(facts))
		written, err := im.store.UpsertPageFacts(ctx, facts[i:end])
		if err != nil {
			report.Errors = append(report.Errors, fmt.Sprintf("history batch %d: %v", i/batchSize+1, err))
			continue
		}
		report.Stats.HistoryRecords += written
	}

	return report, nil
}
