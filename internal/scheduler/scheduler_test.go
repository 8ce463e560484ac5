package scheduler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"breachwatch/internal/config"
	"breachwatch/internal/models"
	"breachwatch/internal/notifier"
	"breachwatch/internal/orchestrator"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type noopTransport struct{}

func (noopTransport) Deliver(context.Context, models.EmailMessage) error { return nil }

func newTestScheduler(t *testing.T, cycleHours int) *Scheduler {
	t.Helper()
	cfg := config.NewDefaultGlobalConfig()
	cfg.SchedulerConfig.CycleHours = cycleHours

	return &Scheduler{
		cfg:        cfg,
		db:         newTestDB(t),
		logger:     zerolog.Nop(),
		retryDelay: defaultRetryDelay,
	}
}

func TestScheduler_TimeUntilNextRun_NoHistory(t *testing.T) {
	s := newTestScheduler(t, 24)

	wait, err := s.timeUntilNextRun()
	require.NoError(t, err)
	assert.Equal(t, time.Duration(0), wait, "first run happens immediately")
}

func TestScheduler_TimeUntilNextRun_RecentCompletedRun(t *testing.T) {
	s := newTestScheduler(t, 24)

	started := time.Now().Add(-1 * time.Hour)
	require.NoError(t, s.db.RecordRun(models.RunSummary{
		Status: models.RunStatusCompleted,
	}, started, started.Add(time.Second)))

	wait, err := s.timeUntilNextRun()
	require.NoError(t, err)
	assert.Greater(t, wait, 22*time.Hour)
	assert.LessOrEqual(t, wait, 23*time.Hour)
}

func TestScheduler_TimeUntilNextRun_StaleCompletedRun(t *testing.T) {
	s := newTestScheduler(t, 24)

	started := time.Now().Add(-48 * time.Hour)
	require.NoError(t, s.db.RecordRun(models.RunSummary{
		Status: models.RunStatusCompleted,
	}, started, started.Add(time.Second)))

	wait, err := s.timeUntilNextRun()
	require.NoError(t, err)
	assert.Equal(t, time.Duration(0), wait)
}

func TestScheduler_TimeUntilNextRun_FailedRunPacesNextCycle(t *testing.T) {
	s := newTestScheduler(t, 24)

	started := time.Now().Add(-1 * time.Hour)
	require.NoError(t, s.db.RecordRun(models.RunSummary{
		Status:        models.RunStatusFailed,
		ErrorMessages: []string{"fetch failed"},
	}, started, started.Add(time.Second)))

	wait, err := s.timeUntilNextRun()
	require.NoError(t, err)
	assert.Greater(t, wait, 22*time.Hour, "a failed cycle must not loop back immediately")
	assert.LessOrEqual(t, wait, 23*time.Hour)
}

func TestScheduler_RunCycle_BoundedRetries(t *testing.T) {
	var requests atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	dir := t.TempDir()
	cfg := config.NewDefaultGlobalConfig()
	cfg.SitemapConfig.SitemapURL = server.URL
	cfg.StorageConfig.MasterFile = filepath.Join(dir, "master.json")
	cfg.StorageConfig.DailyFile = filepath.Join(dir, "daily.json")
	cfg.SchedulerConfig.RetryAttempts = 2

	n := notifier.NewEmailNotifierWithTransport(noopTransport{}, zerolog.Nop())
	orch := orchestrator.NewOrchestrator(cfg, zerolog.Nop(), n)

	s := &Scheduler{
		cfg:          cfg,
		db:           newTestDB(t),
		logger:       zerolog.Nop(),
		orchestrator: orch,
		retryDelay:   time.Millisecond,
	}

	s.runCycle(context.Background())

	assert.Equal(t, int64(3), requests.Load(), "initial attempt plus two retries, then stop")

	var historyRows int
	require.NoError(t, s.db.db.QueryRow(`SELECT COUNT(*) FROM run_history`).Scan(&historyRows))
	assert.Equal(t, 3, historyRows, "every attempt is recorded")
}

func TestScheduler_RunCycle_StopsRetryingAfterSuccess(t *testing.T) {
	var requests atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		_, _ = w.Write([]byte(`<?xml version="1.0"?><urlset></urlset>`))
	}))
	defer server.Close()

	dir := t.TempDir()
	cfg := config.NewDefaultGlobalConfig()
	cfg.SitemapConfig.SitemapURL = server.URL
	cfg.StorageConfig.MasterFile = filepath.Join(dir, "master.json")
	cfg.StorageConfig.DailyFile = filepath.Join(dir, "daily.json")
	cfg.SchedulerConfig.RetryAttempts = 2

	n := notifier.NewEmailNotifierWithTransport(noopTransport{}, zerolog.Nop())
	orch := orchestrator.NewOrchestrator(cfg, zerolog.Nop(), n)

	s := &Scheduler{
		cfg:          cfg,
		db:           newTestDB(t),
		logger:       zerolog.Nop(),
		orchestrator: orch,
		retryDelay:   time.Millisecond,
	}

	s.runCycle(context.Background())

	assert.Equal(t, int64(1), requests.Load(), "a successful run is not retried")
}

func TestScheduler_CycleDuration(t *testing.T) {
	assert.Equal(t, 12*time.Hour, newTestScheduler(t, 12).cycleDuration())
	assert.Equal(t, time.Duration(config.DefaultCycleHours)*time.Hour, newTestScheduler(t, 0).cycleDuration())
}
