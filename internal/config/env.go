package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variable names for SMTP credentials. These match the
// deployment convention of keeping secrets out of the config file.
const (
	EnvSMTPHost     = "SMTP_HOST"
	EnvSMTPPort     = "SMTP_PORT"
	EnvSMTPUser     = "SMTP_USER"
	EnvSMTPPassword = "SMTP_PASSWORD"
	EnvEmailFrom    = "EMAIL_FROM"
	EnvEmailTo      = "EMAIL_TO"
)

// ApplyEnvOverrides loads a .env file if present and overlays SMTP
// credentials from the environment onto the notification config. Values
// already set in the environment win over the config file. EMAIL_FROM falls
// back to SMTP_USER when neither is set explicitly.
func ApplyEnvOverrides(cfg *GlobalConfig) {
	// A missing .env file is the normal case outside of local development.
	_ = godotenv.Load()

	nc := &cfg.NotificationConfig

	if v := os.Getenv(EnvSMTPHost); v != "" {
		nc.SMTPHost = v
	}
	if v := os.Getenv(EnvSMTPPort); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			nc.SMTPPort = port
		}
	}
	if v := os.Getenv(EnvSMTPUser); v != "" {
		nc.SMTPUser = v
	}
	if v := os.Getenv(EnvSMTPPassword); v != "" {
		nc.SMTPPassword = v
	}
	if v := os.Getenv(EnvEmailFrom); v != "" {
		nc.EmailFrom = v
	}
	if v := os.Getenv(EnvEmailTo); v != "" {
		nc.EmailTo = splitRecipients(v)
	}

	if nc.EmailFrom == "" {
		nc.EmailFrom = nc.SMTPUser
	}
}

// splitRecipients splits a comma-separated recipient list, dropping empty
// entries left by trailing commas.
func splitRecipients(raw string) []string {
	parts := strings.Split(raw, ",")
	recipients := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			recipients = append(recipients, trimmed)
		}
	}
	return recipients
}
