// Package config loads xmlsense configuration from TOML files.
//
// Configuration is optional: a missing file yields the defaults, and every
// field has a sensible zero-config value. Loaded values are validated before
// use so the rest of the program never sees an out-of-range setting.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/dshills/xmlsense/internal/search"
)

// Errors returned by configuration operations.
var (
	// ErrValidationFailed indicates a setting is out of range.
	ErrValidationFailed = errors.New("validation failed")
)

// ParseError reports a TOML parse failure with its source path.
type ParseError struct {
	Path    string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error in %s: %s", e.Path, e.Message)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Config is the root configuration.
type Config struct {
	Server  ServerConfig  `toml:"server"`
	Search  SearchConfig  `toml:"search"`
	Scoring ScoringConfig `toml:"scoring"`
	Catalog CatalogConfig `toml:"catalog"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Addr            string `toml:"addr"`
	LogLevel        string `toml:"log_level"`
	RequestTimeoutS int    `toml:"request_timeout_seconds"`
	ShutdownGraceS  int    `toml:"shutdown_grace_seconds"`
}

// RequestTimeout returns the per-request timeout.
func (s ServerConfig) RequestTimeout() time.Duration {
	return time.Duration(s.RequestTimeoutS) * time.Second
}

// ShutdownGrace returns how long graceful shutdown may take.
func (s ServerConfig) ShutdownGrace() time.Duration {
	return time.Duration(s.ShutdownGraceS) * time.Second
}

// SearchConfig configures candidate ranking.
type SearchConfig struct {
	MaxResults         int  `toml:"max_results"`
	MinScore           int  `toml:"min_score"`
	CaseSensitive      bool `toml:"case_sensitive"`
	Parallel           bool `toml:"parallel"`
	SearchDescriptions bool `toml:"search_descriptions"`
	SearchDataTypes    bool `toml:"search_data_types"`
	LabelWeight        int  `toml:"label_weight"`
}

// ScoringConfig configures the fuzzy scorer.
type ScoringConfig struct {
	// Script is an optional Lua file providing a custom score function.
	Script    string `toml:"script"`
	CacheSize int    `toml:"cache_size"`
}

// CatalogConfig configures the candidate catalog.
type CatalogConfig struct {
	// Path replaces the built-in catalog when set.
	Path string `toml:"path"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:            ":8143",
			LogLevel:        "info",
			RequestTimeoutS: 10,
			ShutdownGraceS:  5,
		},
		Search: SearchConfig{
			MaxResults:  0,
			MinScore:    0,
			Parallel:    true,
			LabelWeight: 1,
		},
		Scoring: ScoringConfig{
			CacheSize: 1024,
		},
	}
}

// Load reads configuration from path. A missing file is not an error and
// yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, &ParseError{Path: path, Message: err.Error(), Err: err}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks all settings are in range.
func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return fmt.Errorf("%w: server.addr must not be empty", ErrValidationFailed)
	}
	switch c.Server.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: server.log_level %q is not one of debug, info, warn, error", ErrValidationFailed, c.Server.LogLevel)
	}
	if c.Server.RequestTimeoutS <= 0 {
		return fmt.Errorf("%w: server.request_timeout_seconds must be positive", ErrValidationFailed)
	}
	if c.Server.ShutdownGraceS <= 0 {
		return fmt.Errorf("%w: server.shutdown_grace_seconds must be positive", ErrValidationFailed)
	}
	if c.Search.MaxResults < 0 {
		return fmt.Errorf("%w: search.max_results must not be negative", ErrValidationFailed)
	}
	if c.Search.MinScore < 0 {
		return fmt.Errorf("%w: search.min_score must not be negative", ErrValidationFailed)
	}
	if c.Search.LabelWeight < 0 {
		return fmt.Errorf("%w: search.label_weight must not be negative", ErrValidationFailed)
	}
	if c.Scoring.CacheSize < 0 {
		return fmt.Errorf("%w: scoring.cache_size must not be negative", ErrValidationFailed)
	}
	return nil
}

// SearchOptions converts the search section into ranking options.
func (c *Config) SearchOptions() *search.Options {
	opts := search.DefaultOptions().
		WithMaxResults(c.Search.MaxResults).
		WithMinScore(c.Search.MinScore).
		WithCaseSensitive(c.Search.CaseSensitive).
		WithParallel(c.Search.Parallel).
		WithDescriptionSearch(c.Search.SearchDescriptions).
		WithDataTypeSearch(c.Search.SearchDataTypes)
	if c.Search.LabelWeight > 0 {
		opts = opts.WithLabelWeight(c.Search.LabelWeight)
	}
	return opts
}
