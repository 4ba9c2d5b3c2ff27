// Package config loads and persists the auctionview YAML configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Defaults applied when the config file is absent or fields are unset.
const (
	DefaultEndpoint = "https://api.agrimarket.example.com"
	DefaultPageSize = 10

	// DefaultTotalPages is the pager bound. The endpoint returns no
	// pagination metadata, so the total page count is configuration, not
	// server truth.
	DefaultTotalPages = 10

	DefaultTimeoutSeconds = 15
)

// LoggingConfig controls log output.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"`
}

// Config is the persisted application configuration.
type Config struct {
	// Endpoint is the base URL of the auction results service.
	Endpoint string `yaml:"endpoint"`

	// PageSize is the fixed number of records requested per page.
	PageSize int `yaml:"page_size"`

	// TotalPages bounds the pager. See DefaultTotalPages.
	TotalPages int `yaml:"total_pages"`

	// TimeoutSeconds bounds a single page fetch.
	TimeoutSeconds int `yaml:"timeout_seconds"`

	Logging LoggingConfig `yaml:"logging"`
}

// Default returns a Config populated with default values.
func Default() *Config {
	return &Config{
		Endpoint:       DefaultEndpoint,
		PageSize:       DefaultPageSize,
		TotalPages:     DefaultTotalPages,
		TimeoutSeconds: DefaultTimeoutSeconds,
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Path returns the config file location under the user config directory.
func Path() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolving user config dir: %w", err)
	}
	return filepath.Join(dir, "auctionview", "config.yaml"), nil
}

// Load reads the config file at path, applying defaults for any unset
// fields. A missing file yields the defaults without error.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	cfg.applyDefaults()

	return cfg, nil
}

// Save writes cfg to path, creating parent directories as needed.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Validate checks field values that would break fetching or paging.
func (c *Config) Validate() error {
	if c.Endpoint == "" {
		return errors.New("endpoint must not be empty")
	}
	if c.PageSize < 1 {
		return fmt.Errorf("page_size must be >= 1, got %d", c.PageSize)
	}
	if c.TotalPages < 1 {
		return fmt.Errorf("total_pages must be >= 1, got %d", c.TotalPages)
	}
	if c.TimeoutSeconds < 1 {
		return fmt.Errorf("timeout_seconds must be >= 1, got %d", c.TimeoutSeconds)
	}
	return nil
}

func (c *Config) applyDefaults() {
	d := Default()
	if c.Endpoint == "" {
		c.Endpoint = d.Endpoint
	}
	if c.PageSize == 0 {
		c.PageSize = d.PageSize
	}
	if c.TotalPages == 0 {
		c.TotalPages = d.TotalPages
	}
	if c.TimeoutSeconds == 0 {
		c.TimeoutSeconds = d.TimeoutSeconds
	}
	if c.Logging.Level == "" {
		c.Logging.Level = d.Logging.Level
	}
	if c.Logging.Format == "" {
		c.Logging.Format = d.Logging.Format
	}
}
