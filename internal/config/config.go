package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is the client configuration, loaded from a YAML file with
// LISTENUP_* environment overrides.
type Config struct {
	// ServerURL is the base URL of the ListenUp server
	ServerURL string `mapstructure:"server_url"`
	// DataDir holds the local database and search index
	DataDir string `mapstructure:"data_dir"`
	// LogLevel is one of debug, info, warn, error
	LogLevel string `mapstructure:"log_level"`

	Sync SyncConfig `mapstructure:"sync"`
}

// SyncConfig tunes the sync engine.
type SyncConfig struct {
	MaxRetries   int           `mapstructure:"max_retries"`
	InitialDelay time.Duration `mapstructure:"initial_delay"`
	MaxDelay     time.Duration `mapstructure:"max_delay"`
	PingInterval time.Duration `mapstructure:"ping_interval"`
}

// Load reads the configuration. A non-empty path forces that file;
// otherwise config.yaml is looked up in the data dir and the working
// directory. A missing config file is fine, defaults and environment
// cover everything.
func Load(path string) (*Config, error) {
	v := viper.New()

	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	defaultDataDir := filepath.Join(home, ".listenup")

	v.SetDefault("server_url", "http://localhost:8080")
	v.SetDefault("data_dir", defaultDataDir)
	v.SetDefault("log_level", "info")
	v.SetDefault("sync.max_retries", 3)
	v.SetDefault("sync.initial_delay", time.Second)
	v.SetDefault("sync.max_delay", 30*time.Second)
	v.SetDefault("sync.ping_interval", 30*time.Second)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(defaultDataDir)
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("LISTENUP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}

// ClientDBPath is the bbolt database location.
func (c *Config) ClientDBPath() string {
	return filepath.Join(c.DataDir, "client.db")
}

// SearchIndexPath is the sqlite search index location.
func (c *Config) SearchIndexPath() string {
	return filepath.Join(c.DataDir, "search.db")
}

// SlogLevel maps the configured level name onto slog.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
