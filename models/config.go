// Package models defines the data structures shared across the extraction
// and scaling pipeline.
package models

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds runtime configuration for the CLI. Values come from
// config.yaml when present and may be overridden by CLI flags.
type Config struct {
	OutputDir   string   `yaml:"output_dir"`
	Format      string   `yaml:"format"` // json or yaml
	CacheDir    string   `yaml:"cache_dir"`
	CacheTTL    string   `yaml:"cache_ttl"`
	WorkerCount int      `yaml:"workers"`
	Sites       []string `yaml:"sites"` // enabled site-specific extractors, empty means all
}

// DefaultConfig returns the configuration used when no config file exists.
func DefaultConfig() *Config {
	return &Config{
		OutputDir:   "recipes",
		Format:      "json",
		CacheDir:    ".cache",
		CacheTTL:    "24h",
		WorkerCount: 4,
	}
}

// LoadConfig reads a yaml config file, falling back to defaults when the
// file is absent.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.WorkerCount <= 0 {
		cfg.WorkerCount = 4
	}
	if cfg.Format != "json" && cfg.Format != "yaml" {
		return nil, fmt.Errorf("unsupported output format: %s", cfg.Format)
	}
	return cfg, nil
}

// TTL parses the cache TTL duration, defaulting to 24h on bad input.
func (c *Config) TTL() time.Duration {
	d, err := time.ParseDuration(c.CacheTTL)
	if err != nil || d < 0 {
		return 24 * time.Hour
	}
	return d
}
