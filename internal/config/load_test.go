package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configEnvVars = []string{
	"SCRY_SERVER_PORT",
	"SCRY_SERVER_LOG_LEVEL",
	"SCRY_SERVER_SHUTDOWN_TIMEOUT",
	"SCRY_DECK_PATH",
	"SCRY_SESSION_SHUFFLE_ON_START",
	"SCRY_SESSION_SEED",
	"SCRY_CORS_ALLOWED_ORIGINS",
}

// clearEnv unsets every variable the loader reads for the duration of the
// test. t.Setenv registers the restore; the Unsetenv makes the variable truly
// absent so a dotenv file is allowed to set it.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, name := range configEnvVars {
		t.Setenv(name, "")
		require.NoError(t, os.Unsetenv(name))
	}
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// TestLoadDefaults verifies that Load fills in defaults when nothing is set.
func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()

	require.NoError(t, err, "Load() should not return an error with default values")
	require.NotNil(t, cfg)
	assert.Equal(t, 8080, cfg.Server.Port, "Default server port should be 8080")
	assert.Equal(t, "info", cfg.Server.LogLevel, "Default log level should be 'info'")
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Empty(t, cfg.Deck.Path, "Default deck is the built-in one")
	assert.False(t, cfg.Session.ShuffleOnStart)
	assert.Zero(t, cfg.Session.Seed)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
}

// TestLoadFromEnv verifies that Load correctly reads values from environment variables.
func TestLoadFromEnv(t *testing.T) {
	clearEnv(t)
	deckPath := writeFile(t, t.TempDir(), "deck.yaml", "title: x\n")

	t.Setenv("SCRY_SERVER_PORT", "9090")
	t.Setenv("SCRY_SERVER_LOG_LEVEL", "debug")
	t.Setenv("SCRY_SERVER_SHUTDOWN_TIMEOUT", "3s")
	t.Setenv("SCRY_DECK_PATH", deckPath)
	t.Setenv("SCRY_SESSION_SHUFFLE_ON_START", "true")
	t.Setenv("SCRY_SESSION_SEED", "42")
	t.Setenv("SCRY_CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.LogLevel)
	assert.Equal(t, 3*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, deckPath, cfg.Deck.Path)
	assert.True(t, cfg.Session.ShuffleOnStart)
	assert.Equal(t, uint64(42), cfg.Session.Seed)
	assert.Equal(t, []string{"http://localhost:3000", "http://localhost:5173"}, cfg.CORS.AllowedOrigins)
}

// TestLoadFromFile verifies file values and that environment variables win over them.
func TestLoadFromFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	path := writeFile(t, dir, "config.yaml", `
server:
  port: 7000
  log_level: warn
session:
  shuffle_on_start: true
  seed: 5
cors:
  allowed_origins:
    - https://study.example.com
`)
	t.Setenv("SCRY_SERVER_PORT", "7100")

	cfg, err := Load(WithConfigFile(path))

	require.NoError(t, err)
	assert.Equal(t, 7100, cfg.Server.Port, "environment overrides file")
	assert.Equal(t, "warn", cfg.Server.LogLevel)
	assert.True(t, cfg.Session.ShuffleOnStart)
	assert.Equal(t, uint64(5), cfg.Session.Seed)
	assert.Equal(t, []string{"https://study.example.com"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout, "defaults still apply")
}

// TestLoadFromEnvFile verifies dotenv support and that real env vars take precedence.
func TestLoadFromEnvFile(t *testing.T) {
	clearEnv(t)
	envPath := writeFile(t, t.TempDir(), "test.env",
		"SCRY_SERVER_PORT=7070\nSCRY_SERVER_LOG_LEVEL=error\n")
	t.Setenv("SCRY_SERVER_LOG_LEVEL", "debug")

	cfg, err := Load(WithEnvFile(envPath))

	require.NoError(t, err)
	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.LogLevel, "existing variables are not overridden by the env file")
}

// TestLoadValidationErrors verifies that invalid configuration is rejected.
func TestLoadValidationErrors(t *testing.T) {
	testCases := []struct {
		name string
		env  map[string]string
	}{
		{name: "port too large", env: map[string]string{"SCRY_SERVER_PORT": "70000"}},
		{name: "negative port", env: map[string]string{"SCRY_SERVER_PORT": "-1"}},
		{name: "unknown log level", env: map[string]string{"SCRY_SERVER_LOG_LEVEL": "verbose"}},
		{name: "zero shutdown timeout", env: map[string]string{"SCRY_SERVER_SHUTDOWN_TIMEOUT": "0s"}},
		{name: "missing deck file", env: map[string]string{"SCRY_DECK_PATH": "/definitely/not/here.yaml"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tc.env {
				t.Setenv(k, v)
			}

			cfg, err := Load()
			assert.Error(t, err)
			assert.Nil(t, cfg)
		})
	}
}

func TestLoadMissingExplicitFiles(t *testing.T) {
	clearEnv(t)
	missing := filepath.Join(t.TempDir(), "nope.yaml")

	_, err := Load(WithConfigFile(missing))
	assert.Error(t, err)

	_, err = Load(WithEnvFile(filepath.Join(t.TempDir(), "nope.env")))
	assert.Error(t, err)
}
