package notifier

import (
	"context"
	"time"

	"breachwatch/internal/common"
	"breachwatch/internal/config"
	"breachwatch/internal/models"

	"github.com/wneessen/go-mail"
)

// MailTransport delivers one formatted email. Implementations open a fresh
// connection per delivery; nothing is pooled across the emails of a run.
type MailTransport interface {
	Deliver(ctx context.Context, msg models.EmailMessage) error
}

// smtpTransport sends mail over SMTP with implicit TLS, authenticating with
// the configured credentials on every delivery.
type smtpTransport struct {
	cfg *config.NotificationConfig
}

// newSMTPTransport creates an SMTP transport from the notification config
func newSMTPTransport(cfg *config.NotificationConfig) *smtpTransport {
	return &smtpTransport{cfg: cfg}
}

// Deliver runs one connect/authenticate/send/disconnect cycle.
func (t *smtpTransport) Deliver(ctx context.Context, msg models.EmailMessage) error {
	timeout := time.Duration(t.cfg.TimeoutSecs) * time.Second
	if t.cfg.TimeoutSecs <= 0 {
		timeout = time.Duration(config.DefaultSMTPTimeoutSecs) * time.Second
	}

	client, err := mail.NewClient(t.cfg.SMTPHost,
		mail.WithPort(t.cfg.SMTPPort),
		mail.WithSSL(),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(t.cfg.SMTPUser),
		mail.WithPassword(t.cfg.SMTPPassword),
		mail.WithTimeout(timeout),
	)
	if err != nil {
		return common.WrapError(err, "failed to build SMTP client")
	}

	m := mail.NewMsg()
	if err := m.From(t.cfg.EmailFrom); err != nil {
		return common.WrapError(err, "invalid sender address: "+t.cfg.EmailFrom)
	}
	if err := m.To(t.cfg.EmailTo...); err != nil {
		return common.WrapError(err, "invalid recipient address")
	}
	m.Subject(msg.Subject)
	m.SetBodyString(mail.TypeTextPlain, msg.Body)

	if err := client.DialAndSendWithContext(ctx, m); err != nil {
		return common.WrapError(err, "failed to send email via SMTP")
	}
	return nil
}
