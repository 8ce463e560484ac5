package scheduler

import (
	"context"
	"sync"
	"time"

	"breachwatch/internal/common"
	"breachwatch/internal/config"
	"breachwatch/internal/orchestrator"

	"github.com/rs/zerolog"
)

// defaultRetryDelay spaces retry attempts within one cycle.
const defaultRetryDelay = 5 * time.Minute

// Scheduler drives the automated mode: one run per cycle, with the cycle
// cadence persisted in a SQLite run history so a process restart does not
// trigger an extra run inside the current interval. A failed run is retried
// a bounded number of times with a fixed delay; after that the scheduler
// waits out the regular cycle before trying again.
type Scheduler struct {
	cfg          *config.GlobalConfig
	db           *DB
	logger       zerolog.Logger
	orchestrator *orchestrator.Orchestrator
	retryDelay   time.Duration
	isRunning    bool
	mu           sync.Mutex
}

// NewScheduler creates a new Scheduler instance
func NewScheduler(cfg *config.GlobalConfig, logger zerolog.Logger, orch *orchestrator.Orchestrator) (*Scheduler, error) {
	db, err := NewDB(cfg.SchedulerConfig.SQLiteDBPath, logger)
	if err != nil {
		return nil, common.WrapError(err, "failed to initialize run history database")
	}

	return &Scheduler{
		cfg:          cfg,
		db:           db,
		logger:       logger.With().Str("component", "Scheduler").Logger(),
		orchestrator: orch,
		retryDelay:   defaultRetryDelay,
	}, nil
}

// Close releases the scheduler's resources.
func (s *Scheduler) Close() error {
	return s.db.Close()
}

// Start runs the cycle loop until the context is cancelled. The first run
// happens immediately unless the history shows a run within the current
// interval.
func (s *Scheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.isRunning {
		s.mu.Unlock()
		return common.NewError("scheduler is already running")
	}
	s.isRunning = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.isRunning = false
		s.mu.Unlock()
	}()

	s.logger.Info().Int("cycle_hours", s.cfg.SchedulerConfig.CycleHours).Msg("Starting automated scrape scheduler")

	for {
		wait, err := s.timeUntilNextRun()
		if err != nil {
			s.logger.Error().Err(err).Msg("Failed to determine next run time, running immediately")
			wait = 0
		}

		if wait > 0 {
			s.logger.Info().Time("next_run", time.Now().Add(wait)).Msg("Waiting for next cycle")
			select {
			case <-ctx.Done():
				s.logger.Info().Msg("Context cancelled, exiting scheduler loop")
				return ctx.Err()
			case <-time.After(wait):
			}
		}

		select {
		case <-ctx.Done():
			s.logger.Info().Msg("Context cancelled, exiting scheduler loop")
			return ctx.Err()
		default:
		}

		s.runCycle(ctx)
	}
}

// runCycle executes one run, retrying a failed run up to the configured
// number of attempts with a fixed delay between attempts. Every attempt is
// recorded in the history. Once retries are exhausted the cycle is over; the
// next try happens a full cycle after the last attempt.
func (s *Scheduler) runCycle(ctx context.Context) {
	maxRetries := s.cfg.SchedulerConfig.RetryAttempts

	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			s.logger.Info().
				Int("attempt", attempt).
				Int("max_retries", maxRetries).
				Dur("delay", s.retryDelay).
				Msg("Retrying scrape cycle after delay")
			select {
			case <-ctx.Done():
				s.logger.Info().Msg("Context cancelled during retry delay")
				return
			case <-time.After(s.retryDelay):
			}
		}

		startedAt := time.Now()
		summary, err := s.orchestrator.ExecuteRun(ctx)
		finishedAt := time.Now()

		if dbErr := s.db.RecordRun(summary, startedAt, finishedAt); dbErr != nil {
			s.logger.Error().Err(dbErr).Msg("Failed to record run in history")
		}

		if err == nil {
			return
		}
		s.logger.Error().Err(err).Int("attempt", attempt).Msg("Scrape cycle failed")

		if ctx.Err() != nil {
			return
		}
	}

	s.logger.Error().Int("attempts", maxRetries+1).Msg("Scrape cycle failed after all retries, waiting for next cycle")
}

// timeUntilNextRun computes how long to wait before the next cycle based on
// the last recorded attempt, successful or not. A failed cycle therefore
// paces the next try the same way a completed one does instead of looping
// back immediately.
func (s *Scheduler) timeUntilNextRun() (time.Duration, error) {
	cycle := s.cycleDuration()

	lastRun, ok, err := s.db.LastRunTime()
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, nil
	}

	next := lastRun.Add(cycle)
	wait := time.Until(next)
	if wait < 0 {
		return 0, nil
	}
	return wait, nil
}

// cycleDuration returns the configured cycle length
func (s *Scheduler) cycleDuration() time.Duration {
	hours := s.cfg.SchedulerConfig.CycleHours
	if hours <= 0 {
		hours = config.DefaultCycleHours
	}
	return time.Duration(hours) * time.Hour
}
