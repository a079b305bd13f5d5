// Package config centralises runtime configuration for the tracker CLI.
// Precedence: built-in defaults, then an optional YAML config file, then
// environment variable overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Config captures runtime configuration values.
type Config struct {
	DataPath  string `yaml:"data_path" env:"TRACKER_DATA_PATH"`
	FeedLimit int    `yaml:"feed_limit" env:"TRACKER_FEED_LIMIT"`
	LogLevel  string `yaml:"log_level" env:"TRACKER_LOG_LEVEL"`
	NoColor   bool   `yaml:"no_color" env:"TRACKER_NO_COLOR"`
}

// Default returns the built-in configuration. State lives under ~/.tracker
// when a home directory is resolvable, the working directory otherwise.
func Default() Config {
	dataPath := "tracker.db"
	if home, err := os.UserHomeDir(); err == nil {
		dataPath = filepath.Join(home, ".tracker", "tracker.db")
	}
	return Config{
		DataPath:  dataPath,
		FeedLimit: 10,
		LogLevel:  "info",
	}
}

// DefaultFilePath returns the conventional config file location, or ""
// when no home directory is resolvable.
func DefaultFilePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tracker", "config.yaml")
}

// Load builds the effective configuration. A missing file at path is not an
// error; an unreadable or malformed one is.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		path = DefaultFilePath()
	}
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("parse config file %s: %w", path, err)
			}
		case os.IsNotExist(err):
			// defaults apply
		default:
			return Config{}, fmt.Errorf("read config file %s: %w", path, err)
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	if cfg.FeedLimit <= 0 {
		return Config{}, fmt.Errorf("feed_limit must be greater than zero")
	}
	if cfg.DataPath == "" {
		return Config{}, fmt.Errorf("data_path is required")
	}
	return cfg, nil
}
