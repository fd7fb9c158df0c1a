// Package config defines service configuration structures and loading hooks.
package config

import (
	"fmt"
	"strings"
	"time"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// LogFormat selects the log handler: text or json.
	LogFormat string `koanf:"log_format"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// MaxInputBytes bounds accepted payloads.
	MaxInputBytes int `koanf:"max_input_bytes"`

	// UpstreamTimezone is the IANA zone of structured-format activity dates.
	UpstreamTimezone string `koanf:"upstream_timezone"`

	// SnapshotHistory is the number of highscore snapshots kept per player.
	SnapshotHistory int `koanf:"snapshot_history"`

	// RequestTimeoutMS bounds each API request.
	RequestTimeoutMS int `koanf:"request_timeout_ms"`

	// DedupeSize is the number of highscore payload fingerprints remembered
	// (0 = unbounded).
	DedupeSize int `koanf:"dedupe_size"`
}

// New creates a Config with defaults.
func New() *Config {
	return &Config{
		LogLevel:         "info",
		LogFormat:        "text",
		Addr:             ":9080",
		MaxInputBytes:    1 << 20,
		UpstreamTimezone: "UTC",
		SnapshotHistory:  10,
		RequestTimeoutMS: 30_000,
		DedupeSize:       10_000,
	}
}

// Validate reports the first invalid setting, wrapped in ErrInvalidConfig.
func (c *Config) Validate() error {
	switch strings.ToLower(strings.TrimSpace(c.LogLevel)) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("%w: log_level %q", ErrInvalidConfig, c.LogLevel)
	}
	switch strings.ToLower(strings.TrimSpace(c.LogFormat)) {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log_format %q", ErrInvalidConfig, c.LogFormat)
	}
	if strings.TrimSpace(c.Addr) == "" {
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	}
	if c.MaxInputBytes <= 0 {
		return fmt.Errorf("%w: max_input_bytes must be positive", ErrInvalidConfig)
	}
	if c.SnapshotHistory <= 0 {
		return fmt.Errorf("%w: snapshot_history must be positive", ErrInvalidConfig)
	}
	if c.RequestTimeoutMS <= 0 {
		return fmt.Errorf("%w: request_timeout_ms must be positive", ErrInvalidConfig)
	}
	if c.DedupeSize < 0 {
		return fmt.Errorf("%w: dedupe_size must not be negative", ErrInvalidConfig)
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	return nil
}

// Location resolves UpstreamTimezone.
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.UpstreamTimezone)
	if err != nil {
		return nil, fmt.Errorf("%w: upstream_timezone %q: %v", ErrInvalidConfig, c.UpstreamTimezone, err)
	}
	return loc, nil
}

// RequestTimeout returns RequestTimeoutMS as a duration.
func (c *Config) RequestTimeout() time.Duration {
	return time.Duration(c.RequestTimeoutMS) * time.Millisecond
}
