package datastore

import (
	"breachwatch/internal/models"

	"github.com/rs/zerolog"
)

// DailyReportStore persists the per-run report file. The file is overwritten
// on every run; it carries no history.
type DailyReportStore struct {
	logger zerolog.Logger
}

// NewDailyReportStore creates a new DailyReportStore instance
func NewDailyReportStore(logger zerolog.Logger) *DailyReportStore {
	return &DailyReportStore{
		logger: logger.With().Str("component", "DailyReportStore").Logger(),
	}
}

// Save writes the daily report to path atomically.
func (s *DailyReportStore) Save(path string, report models.DailyReport) error {
	if err := writeJSONAtomic(path, report); err != nil {
		return err
	}
	s.logger.Debug().Str("path", path).Str("date", report.Date).Msg("Daily report saved")
	return nil
}
