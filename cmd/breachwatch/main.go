package main

import (
	"context"
	"errors"
	stdlog "log"
	"os"
	"os/signal"
	"syscall"

	"breachwatch/internal/config"
	"breachwatch/internal/logger"
	"breachwatch/internal/models"
	"breachwatch/internal/notifier"
	"breachwatch/internal/orchestrator"
	"breachwatch/internal/scheduler"

	"github.com/rs/zerolog"
)

func main() {
	flags := ParseFlags()

	gCfg, err := config.LoadGlobalConfig(flags.ConfigFile)
	if err != nil {
		stdlog.Fatalf("[FATAL] Could not load config using path '%s': %v", flags.ConfigFile, err)
	}

	config.ApplyEnvOverrides(gCfg)

	if flags.Mode != "" {
		gCfg.Mode = flags.Mode
	}

	zLogger, err := logger.New(gCfg.LogConfig)
	if err != nil {
		stdlog.Fatalf("[FATAL] Could not initialize logger: %v", err)
	}

	if err := config.ValidateConfig(gCfg); err != nil {
		zLogger.Fatal().Err(err).Msg("Configuration validation failed")
	}
	zLogger.Info().Str("mode", gCfg.Mode).Msg("Configuration loaded and validated")

	emailNotifier := notifier.NewEmailNotifier(&gCfg.NotificationConfig, zLogger)
	orch := orchestrator.NewOrchestrator(gCfg, zLogger, emailNotifier)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigChan
		zLogger.Info().Str("signal", sig.String()).Msg("Received interrupt signal, shutting down")
		cancel()
	}()

	switch gCfg.Mode {
	case config.ModeAutomated:
		runAutomated(ctx, gCfg, zLogger, orch)
	default:
		summary, err := orch.ExecuteRun(ctx)
		logSummary(zLogger, summary)
		if err != nil {
			os.Exit(1)
		}
	}
}

// runAutomated hands control to the scheduler until interrupted.
func runAutomated(ctx context.Context, gCfg *config.GlobalConfig, zLogger zerolog.Logger, orch *orchestrator.Orchestrator) {
	sched, err := scheduler.NewScheduler(gCfg, zLogger, orch)
	if err != nil {
		zLogger.Fatal().Err(err).Msg("Failed to initialize scheduler")
	}
	defer sched.Close()

	if err := sched.Start(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			zLogger.Info().Msg("Scheduler stopped")
			return
		}
		zLogger.Error().Err(err).Msg("Scheduler error")
		os.Exit(1)
	}
}

func logSummary(zLogger zerolog.Logger, summary models.RunSummary) {
	event := zLogger.Info()
	if summary.Status == models.RunStatusFailed {
		event = zLogger.Error()
	}
	event.
		Str("status", string(summary.Status)).
		Str("run_date", summary.RunDate).
		Int("total_scraped", summary.TotalScraped).
		Int("new", summary.NewCount).
		Int("updated", summary.UpdatedCount).
		Int("emails_sent", summary.EmailsSent).
		Msg("Run finished")
}
