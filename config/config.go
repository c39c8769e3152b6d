// Package config holds runtime configuration for the scoutbook binary.
// Values come from an optional YAML file, with environment variables taking
// precedence for deployment overrides.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Environment variable names.
const (
	EnvMaxUploadBytes = "SCOUTBOOK_MAX_UPLOAD_BYTES"
	EnvHTTPAddr       = "SCOUTBOOK_HTTP_ADDR"
	EnvPostgresDSN    = "SCOUTBOOK_POSTGRES_DSN"
)

// Defaults.
const (
	// DefaultMaxUploadBytes is the default maximum accepted PDF size (20 MiB).
	DefaultMaxUploadBytes int64 = 20 << 20

	DefaultHTTPAddr = ":8080"
)

// Config is the runtime configuration.
type Config struct {
	// MaxUploadBytes caps the size of an uploaded or opened gamebook PDF.
	MaxUploadBytes int64 `yaml:"max_upload_bytes"`

	// HTTPAddr is the listen address of the extraction API.
	HTTPAddr string `yaml:"http_addr"`

	// PostgresDSN, when set, enables document persistence.
	PostgresDSN string `yaml:"postgres_dsn"`

	// SkipMalformedPlays opts in to dropping play events that fail
	// validation instead of aborting the drive.
	SkipMalformedPlays bool `yaml:"skip_malformed_plays"`
}

// MaxUploadMB returns the upload limit in whole megabytes.
func (c *Config) MaxUploadMB() int64 { return c.MaxUploadBytes >> 20 }

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		MaxUploadBytes: DefaultMaxUploadBytes,
		HTTPAddr:       DefaultHTTPAddr,
	}
}

// Load reads the configuration. path may be empty, in which case only
// defaults and environment variables apply. A missing or invalid environment
// value falls back silently; a malformed YAML file is an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file %s: %w", path, err)
		}
	}

	applyEnv(cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv(EnvMaxUploadBytes); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
			cfg.MaxUploadBytes = n
		}
	}
	if v := os.Getenv(EnvHTTPAddr); v != "" {
		cfg.HTTPAddr = v
	}
	if v := os.Getenv(EnvPostgresDSN); v != "" {
		cfg.PostgresDSN = v
	}
}
