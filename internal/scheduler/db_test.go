package scheduler

import (
	"path/filepath"
	"testing"
	"time"

	"breachwatch/internal/models"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := NewDB(filepath.Join(t.TempDir(), "database", "run_history.db"), zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestDB_LastRunTime_EmptyHistory(t *testing.T) {
	db := newTestDB(t)

	_, ok, err := db.LastRunTime()
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestDB_RecordRun_AndQueryLastRun(t *testing.T) {
	db := newTestDB(t)

	started := time.Date(2024, 1, 2, 9, 0, 0, 0, time.UTC)
	summary := models.RunSummary{
		RunDate:      "2024-01-02",
		TotalScraped: 10,
		NewCount:     3,
		Status:       models.RunStatusCompleted,
	}
	require.NoError(t, db.RecordRun(summary, started, started.Add(5*time.Second)))

	got, ok, err := db.LastRunTime()
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, got.Equal(started), "expected %v, got %v", started, got)
}

func TestDB_LastRunTime_FailedRunsCount(t *testing.T) {
	db := newTestDB(t)

	completed := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	require.NoError(t, db.RecordRun(models.RunSummary{
		Status: models.RunStatusCompleted,
	}, completed, completed.Add(time.Second)))

	failed := time.Date(2024, 1, 2, 9, 0, 0, 0, time.UTC)
	require.NoError(t, db.RecordRun(models.RunSummary{
		Status:        models.RunStatusFailed,
		ErrorMessages: []string{"fetch failed"},
	}, failed, failed.Add(time.Second)))

	got, ok, err := db.LastRunTime()
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, got.Equal(failed), "a failed attempt is still the last run")
}

func TestDB_RecordRun_MostRecentWins(t *testing.T) {
	db := newTestDB(t)

	first := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	second := time.Date(2024, 1, 2, 9, 0, 0, 0, time.UTC)
	for _, started := range []time.Time{first, second} {
		require.NoError(t, db.RecordRun(models.RunSummary{
			Status: models.RunStatusCompleted,
		}, started, started.Add(time.Second)))
	}

	got, ok, err := db.LastRunTime()
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, got.Equal(second))
}
