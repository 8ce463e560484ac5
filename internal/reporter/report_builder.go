package reporter

import (
	"fmt"
	"strings"

	"breachwatch/internal/config"
	"breachwatch/internal/models"

	"github.com/rs/zerolog"
)

// ReportBuilder formats the daily JSON report and the plain-text email
// bodies. It is pure formatting over already-validated data and never fails.
type ReportBuilder struct {
	logger zerolog.Logger
}

// NewReportBuilder creates a new ReportBuilder instance
func NewReportBuilder(logger zerolog.Logger) *ReportBuilder {
	return &ReportBuilder{
		logger: logger.With().Str("component", "ReportBuilder").Logger(),
	}
}

// BuildDailyReport assembles the per-run report from the diff result.
func (rb *ReportBuilder) BuildDailyReport(result models.DiffResult, runDate string) models.DailyReport {
	newLinks := result.NewRecords
	if newLinks == nil {
		newLinks = []models.SnapshotRecord{}
	}
	updatedLinks := result.UpdatedLinks
	if updatedLinks == nil {
		updatedLinks = []models.UpdatedLink{}
	}

	return models.DailyReport{
		Date:              runDate,
		TotalScrapedToday: result.TotalScraped,
		NewLinksCount:     len(newLinks),
		UpdatedLinksCount: len(updatedLinks),
		NewLinks:          newLinks,
		UpdatedLinks:      updatedLinks,
	}
}

// BuildEmails formats the run's emails. With no new links it produces a
// single status email. Otherwise new links are split into consecutive
// chunks of at most maxPerEmail, one email per chunk, each labeled
// "part i of n". The subject is identical across all emails of a run.
func (rb *ReportBuilder) BuildEmails(newLinks []models.SnapshotRecord, runDate string, maxPerEmail int) []models.EmailMessage {
	subject := fmt.Sprintf(EmailSubjectFormat, runDate)

	if len(newLinks) == 0 {
		rb.logger.Debug().Str("date", runDate).Msg("No new URLs, building status email")
		return []models.EmailMessage{{
			Subject: subject,
			Body:    fmt.Sprintf(noNewLinksBodyFormat, runDate),
		}}
	}

	if maxPerEmail <= 0 {
		maxPerEmail = config.DefaultMaxLinksPerEmail
	}

	totalParts := (len(newLinks) + maxPerEmail - 1) / maxPerEmail
	messages := make([]models.EmailMessage, 0, totalParts)

	for part := 0; part < totalParts; part++ {
		start := part * maxPerEmail
		end := start + maxPerEmail
		if end > len(newLinks) {
			end = len(newLinks)
		}

		var sb strings.Builder
		fmt.Fprintf(&sb, "Date: %s\n", runDate)
		fmt.Fprintf(&sb, "New BreachSense URLs found: %d\n", len(newLinks))
		fmt.Fprintf(&sb, "Part %d of %d\n\n", part+1, totalParts)
		for _, link := range newLinks[start:end] {
			fmt.Fprintf(&sb, " - %s\n", link.URL)
		}

		messages = append(messages, models.EmailMessage{
			Subject: subject,
			Body:    sb.String(),
		})
	}

	rb.logger.Debug().
		Int("new_links", len(newLinks)).
		Int("emails", len(messages)).
		Msg("Email bodies built")

	return messages
}
