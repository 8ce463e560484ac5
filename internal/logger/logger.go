package logger

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"breachwatch/internal/common"
	"breachwatch/internal/config"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// New builds the application logger from LogConfig. Output always goes to
// the console; a rotating file writer is added when log_file is set.
// Unrecognized level or format strings fall back to the defaults rather
// than failing the run.
func New(cfg config.LogConfig) (zerolog.Logger, error) {
	level := parseLevel(cfg.LogLevel)

	writers := []io.Writer{consoleWriter(cfg.LogFormat)}

	if cfg.LogFile != "" {
		fileWriter, err := newFileWriter(cfg)
		if err != nil {
			return zerolog.Nop(), err
		}
		writers = append(writers, fileWriter)
	}

	multiWriter := zerolog.MultiLevelWriter(writers...)
	logger := zerolog.New(multiWriter).
		Level(level).
		With().
		Timestamp().
		Logger()

	return logger, nil
}

// parseLevel maps the configured level string to a zerolog level
func parseLevel(level string) zerolog.Level {
	parsed, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || parsed == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return parsed
}

// consoleWriter returns the console-facing writer for the configured format
func consoleWriter(format string) io.Writer {
	if strings.ToLower(format) == "json" {
		return os.Stderr
	}
	return zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}
}

// newFileWriter creates a rotating file writer for the configured log file
func newFileWriter(cfg config.LogConfig) (io.Writer, error) {
	dir := filepath.Dir(cfg.LogFile)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, common.WrapError(err, "failed to create log directory: "+dir)
	}

	maxSize := cfg.MaxLogSizeMB
	if maxSize <= 0 {
		maxSize = config.DefaultMaxLogSizeMB
	}
	maxBackups := cfg.MaxLogBackups
	if maxBackups <= 0 {
		maxBackups = config.DefaultMaxLogBackups
	}

	return &lumberjack.Logger{
		Filename:   cfg.LogFile,
		MaxSize:    maxSize,
		MaxBackups: maxBackups,
	}, nil
}
