package datastore

import (
	"bytes"
	"encoding/json"
	"os"

	"breachwatch/internal/models"

	"github.com/rs/zerolog"
)

// SnapshotStore persists the master snapshot: every breach-page URL ever
// observed, as an indented JSON array read and written wholesale each run.
type SnapshotStore struct {
	logger zerolog.Logger
}

// NewSnapshotStore creates a new SnapshotStore instance
func NewSnapshotStore(logger zerolog.Logger) *SnapshotStore {
	return &SnapshotStore{
		logger: logger.With().Str("component", "SnapshotStore").Logger(),
	}
}

// Load reads the snapshot from path. A missing file yields an empty
// snapshot. A file that is empty after trimming whitespace, or that holds
// invalid JSON, is treated as corrupt state: a warning is logged and the
// snapshot is reinitialized as empty so the run can continue.
func (s *SnapshotStore) Load(path string) ([]models.SnapshotRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			s.logger.Debug().Str("path", path).Msg("Snapshot file does not exist, starting empty")
			return []models.SnapshotRecord{}, nil
		}
		return nil, err
	}

	if len(bytes.TrimSpace(data)) == 0 {
		s.logger.Warn().Str("path", path).Msg("Snapshot file is empty, reinitializing")
		return []models.SnapshotRecord{}, nil
	}

	var records []models.SnapshotRecord
	if err := json.Unmarshal(data, &records); err != nil {
		s.logger.Warn().Err(err).Str("path", path).Msg("Snapshot file holds invalid JSON, reinitializing")
		return []models.SnapshotRecord{}, nil
	}

	s.logger.Debug().Str("path", path).Int("records", len(records)).Msg("Snapshot loaded")
	return records, nil
}

// Save writes the snapshot to path atomically.
func (s *SnapshotStore) Save(path string, records []models.SnapshotRecord) error {
	if records == nil {
		records = []models.SnapshotRecord{}
	}
	if err := writeJSONAtomic(path, records); err != nil {
		return err
	}
	s.logger.Debug().Str("path", path).Int("records", len(records)).Msg("Snapshot saved")
	return nil
}
