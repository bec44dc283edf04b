// Package logging provides structured logging utilities.
//
// Logs are formatted in a compact console style with colors:
// [LEVEL] [COMPONENT] [HH:MM:SS] message key=value
package logging

import (
	"log/slog"
	"os"

	"github.com/bookkept/matchd/internal/infrastructure/config"
)

// NewLogger creates a structured logger based on config.
func NewLogger(cfg config.LoggingConfig) *slog.Logger {
	level := slog.LevelInfo
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn", "warning":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	if cfg.Format == "json" {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}

	return slog.New(NewConsoleHandler(os.Stdout, opts))
}

// NewLoggerWithComponent creates a logger with a component prefix (e.g.
// "api", "reconcile"). Useful for scoped loggers handed to subsystems.
func NewLoggerWithComponent(cfg config.LoggingConfig, component string) *slog.Logger {
	logger := NewLogger(cfg)
	return logger.With("component", component)
}
