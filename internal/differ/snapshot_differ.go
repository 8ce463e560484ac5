package differ

import (
	"breachwatch/internal/models"

	"github.com/rs/zerolog"
)

// SnapshotDiffer compares one sitemap fetch against the loaded snapshot and
// classifies each URL as new or updated. Snapshot records are never removed:
// URLs absent from today's fetch pass through untouched.
type SnapshotDiffer struct {
	logger zerolog.Logger
}

// NewSnapshotDiffer creates a new SnapshotDiffer instance
func NewSnapshotDiffer(logger zerolog.Logger) *SnapshotDiffer {
	return &SnapshotDiffer{
		logger: logger.With().Str("component", "SnapshotDiffer").Logger(),
	}
}

// Diff produces the diff result for one run.
//
// Entries are first deduplicated by URL within the fetch, keeping the last
// occurrence at its position, so a URL repeated in one sitemap cannot be
// counted as new twice. Then, in document order: a URL not in the snapshot
// becomes a new record stamped with runDate; a known URL whose lastmod is
// non-empty and differs from the stored value is updated in place and
// reported with its old and new lastmod. An empty lastmod never counts as
// an update. New records are appended after all existing ones.
func (d *SnapshotDiffer) Diff(entries []models.SitemapEntry, records []models.SnapshotRecord, runDate string) models.DiffResult {
	deduped := dedupeByURL(entries)

	snapshot := make([]models.SnapshotRecord, len(records))
	copy(snapshot, records)

	recordIndex := make(map[string]int, len(snapshot))
	for i, rec := range snapshot {
		recordIndex[rec.URL] = i
	}

	var newRecords []models.SnapshotRecord
	var updatedLinks []models.UpdatedLink

	for _, entry := range deduped {
		idx, exists := recordIndex[entry.URL]
		if !exists {
			newRecords = append(newRecords, models.SnapshotRecord{
				URL:         entry.URL,
				LastMod:     entry.LastMod,
				ScrapedDate: runDate,
			})
			continue
		}

		rec := &snapshot[idx]
		if entry.LastMod != "" && entry.LastMod != rec.LastMod {
			updatedLinks = append(updatedLinks, models.UpdatedLink{
				URL:         entry.URL,
				OldLastMod:  rec.LastMod,
				NewLastMod:  entry.LastMod,
				ScrapedDate: runDate,
			})
			rec.LastMod = entry.LastMod
			rec.ScrapedDate = runDate
		}
	}

	snapshot = append(snapshot, newRecords...)

	d.logger.Info().
		Int("scraped", len(deduped)).
		Int("new", len(newRecords)).
		Int("updated", len(updatedLinks)).
		Msg("Comparison complete")

	return models.DiffResult{
		NewRecords:   newRecords,
		UpdatedLinks: updatedLinks,
		Snapshot:     snapshot,
		TotalScraped: len(deduped),
	}
}

// dedupeByURL collapses duplicate URLs within one fetch, keeping the last
// occurrence at its position in document order.
func dedupeByURL(entries []models.SitemapEntry) []models.SitemapEntry {
	seen := make(map[string]bool, len(entries))
	reversed := make([]models.SitemapEntry, 0, len(entries))
	for i := len(entries) - 1; i >= 0; i-- {
		if seen[entries[i].URL] {
			continue
		}
		seen[entries[i].URL] = true
		reversed = append(reversed, entries[i])
	}

	deduped := make([]models.SitemapEntry, 0, len(reversed))
	for i := len(reversed) - 1; i >= 0; i-- {
		deduped = append(deduped, reversed[i])
	}
	return deduped
}
