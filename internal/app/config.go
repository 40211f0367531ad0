package app

import (
	"os"
	"strconv"
)

// Config holds application-wide configuration.
type Config struct {
	// Debug enables debug logging and source locations in log records.
	Debug bool

	// CatalogPath points at a YAML catalog file; empty uses the embedded
	// default catalog.
	CatalogPath string

	// StoragePath is the directory where preferences are stored; empty
	// uses the platform default.
	StoragePath string
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{}
}

// ConfigFromEnv creates a configuration from environment variables:
// EXPANDABLE_DEBUG, EXPANDABLE_CATALOG and EXPANDABLE_STORAGE_PATH.
func ConfigFromEnv() *Config {
	cfg := DefaultConfig()

	if debugStr := os.Getenv("EXPANDABLE_DEBUG"); debugStr != "" {
		if debug, err := strconv.ParseBool(debugStr); err == nil {
			cfg.Debug = debug
		}
	}
	if path := os.Getenv("EXPANDABLE_CATALOG"); path != "" {
		cfg.CatalogPath = path
	}
	if path := os.Getenv("EXPANDABLE_STORAGE_PATH"); path != "" {
		cfg.StoragePath = path
	}

	return cfg
}
