package config

import (
	"errors"
	"fmt"
	"strings"

	"breachwatch/internal/common"

	"github.com/go-playground/validator/v10"
)

// ValidateConfig performs validation on the GlobalConfig structure. It runs
// the struct-tag rules plus the credential checks that must fail fast before
// any network activity.
func ValidateConfig(cfg *GlobalConfig) error {
	validate := validator.New()

	_ = validate.RegisterValidation("loglevel", func(fl validator.FieldLevel) bool {
		level := strings.ToLower(fl.Field().String())
		switch level {
		case "", "debug", "info", "warn", "error", "fatal", "panic":
			return true
		default:
			return false
		}
	})

	_ = validate.RegisterValidation("logformat", func(fl validator.FieldLevel) bool {
		format := strings.ToLower(fl.Field().String())
		switch format {
		case "", "console", "json":
			return true
		default:
			return false
		}
	})

	_ = validate.RegisterValidation("mode", func(fl validator.FieldLevel) bool {
		mode := strings.ToLower(fl.Field().String())
		switch mode {
		case "", ModeOnetime, ModeAutomated:
			return true
		default:
			return false
		}
	})

	if err := validate.Struct(cfg); err != nil {
		var errs validator.ValidationErrors
		if errors.As(err, &errs) {
			var msgs []string
			for _, e := range errs {
				msg := fmt.Sprintf("Validation failed for '%s': rule '%s'", e.StructNamespace(), e.Tag())
				if e.Param() != "" {
					msg += fmt.Sprintf(" (expected: %s)", e.Param())
				}
				msgs = append(msgs, msg)
			}
			return common.NewError("configuration validation failed:\n  %s", strings.Join(msgs, "\n  "))
		}
		return common.WrapError(err, "configuration validation error")
	}

	if strings.ToLower(cfg.Mode) == ModeAutomated && cfg.SchedulerConfig.SQLiteDBPath == "" {
		return common.NewValidationError("sqlite_db_path", "", "run history database path is required in automated mode")
	}

	return validateCredentials(&cfg.NotificationConfig)
}

// validateCredentials checks the SMTP settings that have no sensible
// defaults. Missing values abort the run before anything else happens.
func validateCredentials(nc *NotificationConfig) error {
	if nc.SMTPHost == "" {
		return common.NewValidationError("smtp_host", nc.SMTPHost, "SMTP host is required (set SMTP_HOST)")
	}
	if nc.SMTPUser == "" {
		return common.NewValidationError("smtp_user", nc.SMTPUser, "SMTP user is required (set SMTP_USER)")
	}
	if nc.SMTPPassword == "" {
		return common.NewValidationError("smtp_password", "<redacted>", "SMTP password is required (set SMTP_PASSWORD)")
	}
	if nc.EmailFrom == "" {
		return common.NewValidationError("email_from", nc.EmailFrom, "sender address is required (set EMAIL_FROM or SMTP_USER)")
	}
	if len(nc.EmailTo) == 0 {
		return common.NewValidationError("email_to", nc.EmailTo, "at least one recipient is required (set EMAIL_TO)")
	}
	return nil
}
