package config

// NotificationConfig defines configuration for email delivery. SMTP
// credentials are normally supplied via environment variables (see
// ApplyEnvOverrides), the file only carries the non-secret knobs.
type NotificationConfig struct {
	SMTPHost         string   `json:"smtp_host,omitempty" yaml:"smtp_host,omitempty"`
	SMTPPort         int      `json:"smtp_port,omitempty" yaml:"smtp_port,omitempty" validate:"omitempty,min=1,max=65535"`
	SMTPUser         string   `json:"smtp_user,omitempty" yaml:"smtp_user,omitempty"`
	SMTPPassword     string   `json:"-" yaml:"-"`
	EmailFrom        string   `json:"email_from,omitempty" yaml:"email_from,omitempty"`
	EmailTo          []string `json:"email_to,omitempty" yaml:"email_to,omitempty"`
	TimeoutSecs      int      `json:"timeout_secs,omitempty" yaml:"timeout_secs,omitempty" validate:"omitempty,min=1"`
	MaxLinksPerEmail int      `json:"max_links_per_email,omitempty" yaml:"max_links_per_email,omitempty" validate:"omitempty,min=1"`
}

// NewDefaultNotificationConfig creates default notification configuration
func NewDefaultNotificationConfig() NotificationConfig {
	return NotificationConfig{
		SMTPPort:         DefaultSMTPPort,
		EmailTo:          []string{},
		TimeoutSecs:      DefaultSMTPTimeoutSecs,
		MaxLinksPerEmail: DefaultMaxLinksPerEmail,
	}
}
