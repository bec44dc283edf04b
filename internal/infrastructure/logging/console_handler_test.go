package logging

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConsoleHandler_Format(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewConsoleHandler(&buf, nil))

	logger.Info("match accepted", "score", 80.0, "method", "score")

	line := buf.String()
	assert.True(t, strings.HasPrefix(line, "[INFO]"), "got %q", line)
	assert.Contains(t, line, "match accepted")
	assert.Contains(t, line, "score=80")
	assert.Contains(t, line, "method=score")
	// No ANSI colors when not writing to a terminal.
	assert.NotContains(t, line, "\033[")
}

func TestConsoleHandler_ComponentBracket(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewConsoleHandler(&buf, nil)).With("component", "api")

	logger.Info("listening")

	line := buf.String()
	assert.Contains(t, line, "[api]")
	// Shown in brackets, not repeated as an attr.
	assert.NotContains(t, line, "component=api")
}

func TestConsoleHandler_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	opts := &slog.HandlerOptions{Level: slog.LevelWarn}
	logger := slog.New(NewConsoleHandler(&buf, opts))

	logger.Debug("hidden")
	logger.Info("hidden too")
	logger.Warn("visible")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "visible")
}
