package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := []byte(`
server:
  port: 9090
  allowed_origins:
    - http://localhost:3000
matcher:
  threshold: 80
observability:
  logging:
    level: debug
`)
	require.NoError(t, os.WriteFile(path, content, 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, 80.0, cfg.Matcher.Threshold)
	assert.Equal(t, "debug", cfg.Observability.Logging.Level)
}

func TestLoad_ExpandsEnvVars(t *testing.T) {
	t.Setenv("MATCHD_TEST_LEVEL", "warn")

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := []byte("observability:\n  logging:\n    level: ${MATCHD_TEST_LEVEL}\n")
	require.NoError(t, os.WriteFile(path, content, 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Observability.Logging.Level)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("MATCHD_PORT", "8088")
	t.Setenv("MATCHD_THRESHOLD", "72.5")
	t.Setenv("MATCHD_ALLOWED_ORIGINS", "http://a.test, http://b.test")
	t.Setenv("LOG_LEVEL", "error")

	cfg := LoadFromEnv()
	assert.Equal(t, 8088, cfg.Server.Port)
	assert.Equal(t, 72.5, cfg.Matcher.Threshold)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, "error", cfg.Observability.Logging.Level)
}

func TestLoadOrEnvWithPath_FallsBack(t *testing.T) {
	cfg := LoadOrEnvWithPath(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NotNil(t, cfg)
	assert.Equal(t, 8080, cfg.Server.Port)
}
