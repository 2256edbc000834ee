package types

import (
	"errors"
	"time"
)

// Config holds storage location and cache tuning for opening a Store.
type Config struct {
	DataDir string `json:"data_dir" yaml:"data_dir"`

	// Cache TTLs in seconds. Zero means the built-in default.
	CacheTTLSeconds     int `json:"cache_ttl_seconds" yaml:"cache_ttl_seconds"`
	SearchTTLSeconds    int `json:"search_ttl_seconds" yaml:"search_ttl_seconds"`
	AnalyticsTTLSeconds int `json:"analytics_ttl_seconds" yaml:"analytics_ttl_seconds"`
}

// Built-in cache TTLs. Search results are query-specific and low-reuse, so
// they expire fast; aggregate analytics change slowly and are kept longer.
const (
	DefaultCacheTTL     = 5 * time.Minute
	DefaultSearchTTL    = 1 * time.Minute
	DefaultAnalyticsTTL = 10 * time.Minute
)

// Config validation errors.
var (
	ErrTTLNegative = errors.New("cache TTL must not be negative")
)

// Validate checks that the Config is well-formed. It returns a sentinel
// error from this package on failure.
func (c Config) Validate() error {
	if c.CacheTTLSeconds < 0 || c.SearchTTLSeconds < 0 || c.AnalyticsTTLSeconds < 0 {
		return ErrTTLNegative
	}
	return nil
}

// CacheTTL returns the configured default cache TTL, or DefaultCacheTTL.
func (c Config) CacheTTL() time.Duration {
	if c.CacheTTLSeconds > 0 {
		return time.Duration(c.CacheTTLSeconds) * time.Second
	}
	return DefaultCacheTTL
}

// SearchTTL returns the configured search-result TTL, or DefaultSearchTTL.
func (c Config) SearchTTL() time.Duration {
	if c.SearchTTLSeconds > 0 {
		return time.Duration(c.SearchTTLSeconds) * time.Second
	}
	return DefaultSearchTTL
}

// AnalyticsTTL returns the configured analytics TTL, or DefaultAnalyticsTTL.
func (c Config) AnalyticsTTL() time.Duration {
	if c.AnalyticsTTLSeconds > 0 {
		return time.Duration(c.AnalyticsTTLSeconds) * time.Second
	}
	return DefaultAnalyticsTTL
}
