package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, 5*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, 10*time.Second, cfg.Server.QueueTimeout)
	assert.Equal(t, "redis://localhost:6379/0", cfg.Redis.URL)
	assert.Equal(t, 24*time.Hour, cfg.Redis.MatchTTL)
	assert.False(t, cfg.Telemetry.Enabled)
	assert.Equal(t, 2*time.Second, cfg.Client.PollInterval)
	assert.Equal(t, time.Second, cfg.Client.ThinkTime)
	assert.Equal(t, 3, cfg.Client.MaxPollFailures)
	assert.Equal(t, 3, cfg.Client.BoardSize)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	// Given
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("CLIENT_POLL_INTERVAL", "500ms")
	t.Setenv("OTEL_ENABLED", "true")

	// When
	cfg, err := Load("")

	// Then
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())
	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, 500*time.Millisecond, cfg.Client.PollInterval)
	assert.True(t, cfg.Telemetry.Enabled)
}

func TestLoad_File(t *testing.T) {
	// Given
	path := filepath.Join(t.TempDir(), "config.yml")
	yml := `
log-level: warn
server:
  addr: ":7070"
sqlite:
  path: /tmp/devices.db
client:
  server-url: http://example.test:7070
  board-size: 5
  difficulty: hard
`
	require.NoError(t, os.WriteFile(path, []byte(yml), 0o600))

	// When
	cfg, err := Load(path)

	// Then
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, cfg.SlogLevel())
	assert.Equal(t, ":7070", cfg.Server.Addr)
	assert.Equal(t, "/tmp/devices.db", cfg.SQLite.Path)
	assert.Equal(t, "http://example.test:7070", cfg.Client.ServerURL)
	assert.Equal(t, 5, cfg.Client.BoardSize)
	assert.Equal(t, "hard", cfg.Client.Difficulty)
	assert.Equal(t, 2*time.Second, cfg.Client.PollInterval, "unset keys keep their defaults")
}

func TestMustLoad_MissingFilePanics(t *testing.T) {
	assert.Panics(t, func() {
		MustLoad(filepath.Join(t.TempDir(), "missing.yml"))
	})
}

func TestConfig_SlogLevel(t *testing.T) {
	tests := []struct {
		level string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"verbose", slog.LevelInfo},
	}
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			cfg := &Config{LogLevel: tt.level}
			if got := cfg.SlogLevel(); got != tt.want {
				t.Errorf("SlogLevel() = %v, want %v", got, tt.want)
			}
		})
	}
}
