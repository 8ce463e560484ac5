package scheduler

import (
	"database/sql"
	"os"
	"path/filepath"
	"time"

	"breachwatch/internal/common"
	"breachwatch/internal/models"

	"github.com/rs/zerolog"
	_ "modernc.org/sqlite"
)

// DB wraps the SQL database connection holding the run history.
type DB struct {
	db     *sql.DB
	logger zerolog.Logger
}

// NewDB initializes a new DB connection and ensures the schema is set up.
func NewDB(dataSourceName string, logger zerolog.Logger) (*DB, error) {
	dbDir := filepath.Dir(dataSourceName)
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		return nil, common.WrapError(err, "failed to create scheduler database directory: "+dbDir)
	}

	dbInstance, err := sql.Open("sqlite", dataSourceName)
	if err != nil {
		return nil, common.WrapError(err, "sql.Open failed for: "+dataSourceName)
	}

	db := &DB{
		db:     dbInstance,
		logger: logger.With().Str("component", "SchedulerDB").Logger(),
	}

	if err := db.InitSchema(); err != nil {
		db.Close()
		return nil, common.WrapError(err, "failed to initialize schema")
	}

	db.logger.Debug().Str("path", dataSourceName).Msg("Run history database initialized")
	return db, nil
}

// Close closes the database connection.
func (d *DB) Close() error {
	if d.db != nil {
		return d.db.Close()
	}
	return nil
}

// InitSchema creates the run_history table if it doesn't already exist.
func (d *DB) InitSchema() error {
	query := `
	CREATE TABLE IF NOT EXISTS run_history (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		started_at DATETIME NOT NULL,
		finished_at DATETIME,
		status TEXT NOT NULL,
		total_scraped INTEGER DEFAULT 0,
		new_count INTEGER DEFAULT 0,
		updated_count INTEGER DEFAULT 0,
		emails_sent INTEGER DEFAULT 0,
		error TEXT
	);
	`
	if _, err := d.db.Exec(query); err != nil {
		return common.WrapError(err, "failed to create run_history table")
	}
	return nil
}

// RecordRun inserts one completed (or failed) run into the history.
func (d *DB) RecordRun(summary models.RunSummary, startedAt, finishedAt time.Time) error {
	errText := ""
	if len(summary.ErrorMessages) > 0 {
		for i, msg := range summary.ErrorMessages {
			if i > 0 {
				errText += "; "
			}
			errText += msg
		}
	}

	query := `INSERT INTO run_history (started_at, finished_at, status, total_scraped, new_count, updated_count, emails_sent, error)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := d.db.Exec(query,
		startedAt, finishedAt, string(summary.Status),
		summary.TotalScraped, summary.NewCount, summary.UpdatedCount, summary.EmailsSent,
		sql.NullString{String: errText, Valid: errText != ""},
	)
	if err != nil {
		return common.WrapError(err, "failed to insert run history record")
	}

	d.logger.Debug().Str("status", string(summary.Status)).Msg("Run recorded in history")
	return nil
}

// LastRunTime returns the start time of the most recent attempt regardless
// of its outcome, or ok=false when the history is empty. Failed attempts
// count: the cycle cadence is measured from whatever ran last.
func (d *DB) LastRunTime() (time.Time, bool, error) {
	query := `SELECT started_at FROM run_history ORDER BY started_at DESC LIMIT 1`
	var startedAt time.Time
	err := d.db.QueryRow(query).Scan(&startedAt)
	if err == sql.ErrNoRows {
		return time.Time{}, false, nil
	}
	if err != nil {
		return time.Time{}, false, common.WrapError(err, "failed to query last run")
	}
	return startedAt, true, nil
}
