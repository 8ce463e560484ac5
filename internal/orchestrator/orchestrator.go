package orchestrator

import (
	"context"
	"time"

	"breachwatch/internal/config"
	"breachwatch/internal/datastore"
	"breachwatch/internal/differ"
	"breachwatch/internal/models"
	"breachwatch/internal/notifier"
	"breachwatch/internal/reporter"
	"breachwatch/internal/sitemap"

	"github.com/rs/zerolog"
)

// Orchestrator executes one end-to-end run: fetch the sitemap, diff against
// the snapshot, persist state, and email the report. The pipeline is fully
// sequential; any fatal step aborts the run with the error propagated.
type Orchestrator struct {
	cfg           *config.GlobalConfig
	logger        zerolog.Logger
	fetcher       *sitemap.Fetcher
	parser        *sitemap.Parser
	snapshotStore *datastore.SnapshotStore
	dailyStore    *datastore.DailyReportStore
	snapDiffer    *differ.SnapshotDiffer
	reportBuilder *reporter.ReportBuilder
	emailNotifier *notifier.EmailNotifier
}

// NewOrchestrator creates a new Orchestrator instance
func NewOrchestrator(cfg *config.GlobalConfig, logger zerolog.Logger, emailNotifier *notifier.EmailNotifier) *Orchestrator {
	componentLogger := logger.With().Str("component", "Orchestrator").Logger()

	return &Orchestrator{
		cfg:           cfg,
		logger:        componentLogger,
		fetcher:       sitemap.NewFetcher(&cfg.SitemapConfig, logger),
		parser:        sitemap.NewParser(&cfg.SitemapConfig, logger),
		snapshotStore: datastore.NewSnapshotStore(logger),
		dailyStore:    datastore.NewDailyReportStore(logger),
		snapDiffer:    differ.NewSnapshotDiffer(logger),
		reportBuilder: reporter.NewReportBuilder(logger),
		emailNotifier: emailNotifier,
	}
}

// ExecuteRun performs one run. The returned RunSummary is populated in both
// the success and failure cases; the error is non-nil whenever the run must
// be reported as failed. Corrupt snapshot state is the one recovered
// condition: it is logged inside the store and the run continues from an
// empty snapshot.
func (o *Orchestrator) ExecuteRun(ctx context.Context) (models.RunSummary, error) {
	startTime := time.Now()
	runDate := startTime.UTC().Format("2006-01-02")

	summary := models.GetDefaultRunSummary()
	summary.RunDate = runDate

	o.logger.Info().Str("run_date", runDate).Msg("Daily scrape started")

	fail := func(err error) (models.RunSummary, error) {
		summary.Status = models.RunStatusFailed
		summary.ErrorMessages = append(summary.ErrorMessages, err.Error())
		summary.Duration = time.Since(startTime)
		o.logger.Error().Err(err).Msg("Daily scrape failed")
		return summary, err
	}

	xmlData, err := o.fetcher.Fetch(ctx, o.cfg.SitemapConfig.SitemapURL)
	if err != nil {
		return fail(err)
	}

	entries, err := o.parser.Parse(xmlData)
	if err != nil {
		return fail(err)
	}
	o.logger.Info().Int("urls_found", len(entries)).Msg("Sitemap parsed")

	records, err := o.snapshotStore.Load(o.cfg.StorageConfig.MasterFile)
	if err != nil {
		return fail(err)
	}
	o.logger.Info().Int("existing_urls", len(records)).Msg("Snapshot loaded")

	result := o.snapDiffer.Diff(entries, records, runDate)
	summary.TotalScraped = result.TotalScraped
	summary.NewCount = len(result.NewRecords)
	summary.UpdatedCount = len(result.UpdatedLinks)

	if err := o.snapshotStore.Save(o.cfg.StorageConfig.MasterFile, result.Snapshot); err != nil {
		return fail(err)
	}

	dailyReport := o.reportBuilder.BuildDailyReport(result, runDate)
	if err := o.dailyStore.Save(o.cfg.StorageConfig.DailyFile, dailyReport); err != nil {
		return fail(err)
	}
	o.logger.Info().Msg("Master and daily JSON saved")

	messages := o.reportBuilder.BuildEmails(result.NewRecords, runDate, o.cfg.NotificationConfig.MaxLinksPerEmail)
	delivery := o.emailNotifier.SendAll(ctx, messages)
	summary.EmailsSent = delivery.Sent

	if err := delivery.Err(); err != nil {
		return fail(err)
	}

	summary.Duration = time.Since(startTime)
	o.logger.Info().
		Int("new", summary.NewCount).
		Int("updated", summary.UpdatedCount).
		Int("emails_sent", summary.EmailsSent).
		Dur("duration", summary.Duration).
		Msg("Daily scrape completed successfully")

	return summary, nil
}
