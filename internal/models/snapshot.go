package models

// SnapshotRecord is one URL in the persisted master file. URL is the unique
// key; records are appended on first sight and mutated in place when the
// sitemap reports a different lastmod. Records are never deleted.
type SnapshotRecord struct {
	URL         string `json:"url"`
	LastMod     string `json:"lastmod"`
	ScrapedDate string `json:"scraped_date"`
}

// UpdatedLink captures an in-place lastmod change for the daily report.
type UpdatedLink struct {
	URL         string `json:"url"`
	OldLastMod  string `json:"old_lastmod"`
	NewLastMod  string `json:"new_lastmod"`
	ScrapedDate string `json:"scraped_date"`
}

// DiffResult holds the outcome of comparing one sitemap fetch against the
// loaded snapshot.
type DiffResult struct {
	NewRecords   []SnapshotRecord
	UpdatedLinks []UpdatedLink
	Snapshot     []SnapshotRecord
	TotalScraped int
}
