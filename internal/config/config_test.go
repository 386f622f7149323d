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

	assert.Equal(t, "http://localhost:8080", cfg.ServerURL)
	assert.NotEmpty(t, cfg.DataDir)
	assert.Equal(t, 3, cfg.Sync.MaxRetries)
	assert.Equal(t, time.Second, cfg.Sync.InitialDelay)
	assert.Equal(t, 30*time.Second, cfg.Sync.MaxDelay)
	assert.Equal(t, slog.LevelInfo, cfg.SlogLevel())
}

func TestLoad_FromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
server_url: https://audiobooks.example.com
data_dir: /var/lib/listenup
log_level: debug
sync:
  max_retries: 5
  initial_delay: 2s
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "https://audiobooks.example.com", cfg.ServerURL)
	assert.Equal(t, 5, cfg.Sync.MaxRetries)
	assert.Equal(t, 2*time.Second, cfg.Sync.InitialDelay)
	// Unset keys keep their defaults
	assert.Equal(t, 30*time.Second, cfg.Sync.MaxDelay)
	assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("LISTENUP_SERVER_URL", "https://env.example.com")
	t.Setenv("LISTENUP_SYNC_MAX_RETRIES", "7")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "https://env.example.com", cfg.ServerURL)
	assert.Equal(t, 7, cfg.Sync.MaxRetries)
}

func TestLoad_MissingExplicitFileFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestConfig_DerivedPaths(t *testing.T) {
	cfg := &Config{DataDir: "/data/listenup"}
	assert.Equal(t, "/data/listenup/client.db", cfg.ClientDBPath())
	assert.Equal(t, "/data/listenup/search.db", cfg.SearchIndexPath())
}

func TestConfig_SlogLevel(t *testing.T) {
	assert.Equal(t, slog.LevelWarn, (&Config{LogLevel: "warn"}).SlogLevel())
	assert.Equal(t, slog.LevelError, (&Config{LogLevel: "ERROR"}).SlogLevel())
	assert.Equal(t, slog.LevelInfo, (&Config{LogLevel: "bogus"}).SlogLevel())
}
