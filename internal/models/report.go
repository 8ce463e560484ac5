package models

// DailyReport is the per-run summary persisted to the daily file. It is
// overwritten on every run, not accumulated.
type DailyReport struct {
	Date              string           `json:"date"`
	TotalScrapedToday int              `json:"total_scraped_today"`
	NewLinksCount     int              `json:"new_links_count"`
	UpdatedLinksCount int              `json:"updated_links_count"`
	NewLinks          []SnapshotRecord `json:"new_links"`
	UpdatedLinks      []UpdatedLink    `json:"updated_links"`
}
