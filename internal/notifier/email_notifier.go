package notifier

import (
	"context"
	"errors"

	"breachwatch/internal/common"
	"breachwatch/internal/config"
	"breachwatch/internal/models"

	"github.com/rs/zerolog"
)

// EmailNotifier sends the run's report emails. Each chunk is an independent
// delivery: a failed chunk does not stop later chunks, and the per-chunk
// outcomes are collected into a DeliveryResult.
type EmailNotifier struct {
	transport MailTransport
	logger    zerolog.Logger
}

// NewEmailNotifier creates an EmailNotifier backed by the SMTP transport
func NewEmailNotifier(cfg *config.NotificationConfig, logger zerolog.Logger) *EmailNotifier {
	return NewEmailNotifierWithTransport(newSMTPTransport(cfg), logger)
}

// NewEmailNotifierWithTransport creates an EmailNotifier with a caller-supplied
// transport
func NewEmailNotifierWithTransport(transport MailTransport, logger zerolog.Logger) *EmailNotifier {
	return &EmailNotifier{
		transport: transport,
		logger:    logger.With().Str("component", "EmailNotifier").Logger(),
	}
}

// DeliveryResult aggregates per-chunk delivery outcomes for one run.
type DeliveryResult struct {
	Attempted int
	Sent      int
	Errors    []error
}

// Err returns nil when every delivery succeeded, otherwise an aggregate
// error covering all failed chunks.
func (r DeliveryResult) Err() error {
	if len(r.Errors) == 0 {
		return nil
	}
	return common.NewError("%d of %d emails failed to send: %w", len(r.Errors), r.Attempted, errors.Join(r.Errors...))
}

// Send delivers a single email.
func (n *EmailNotifier) Send(ctx context.Context, msg models.EmailMessage) error {
	if err := n.transport.Deliver(ctx, msg); err != nil {
		n.logger.Error().Err(err).Str("subject", msg.Subject).Msg("Email delivery failed")
		return err
	}
	n.logger.Info().Str("subject", msg.Subject).Msg("Email sent")
	return nil
}

// SendAll attempts every message and reports the aggregate outcome. Chunks
// already delivered are not rolled back when a later chunk fails.
func (n *EmailNotifier) SendAll(ctx context.Context, msgs []models.EmailMessage) DeliveryResult {
	result := DeliveryResult{Attempted: len(msgs)}

	for i, msg := range msgs {
		if err := n.Send(ctx, msg); err != nil {
			result.Errors = append(result.Errors, common.NewError("email %d of %d: %w", i+1, len(msgs), err))
			continue
		}
		result.Sent++
	}

	return result
}
