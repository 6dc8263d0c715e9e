// Package config provides centralized configuration management for PrixLens.
package config

import (
	"os"
	"path/filepath"
	"time"
)

// Config is the root configuration for PrixLens.
type Config struct {
	Service ServiceConfig `mapstructure:"service"`
	Store   StoreConfig   `mapstructure:"store"`
	Logging LoggingConfig `mapstructure:"logging"`
	Output  OutputConfig  `mapstructure:"output"`
}

// ServiceConfig describes the upstream suggestion service. BaseURL is fixed
// for the lifetime of the process; commands read it once at startup.
type ServiceConfig struct {
	BaseURL          string        `mapstructure:"base_url"`
	Timeout          time.Duration `mapstructure:"timeout"`
	DefaultLibrary   string        `mapstructure:"default_library"`
	DefaultPriceType string        `mapstructure:"default_price_type"`
}

// StoreConfig describes the local search-journal database.
type StoreConfig struct {
	Driver    string `mapstructure:"driver"`
	Path      string `mapstructure:"path"`
	URL       string `mapstructure:"url"`
	AuthToken string `mapstructure:"auth_token"`
}

// LoggingConfig controls CLI log output.
type LoggingConfig struct {
	// Level is one of: trace, debug, info, warn, error
	Level string `mapstructure:"level"`
}

// OutputConfig holds rendering defaults.
type OutputConfig struct {
	// Format is the default output format: table, json, markdown
	Format string `mapstructure:"format"`
}

// DefaultStorePath returns the default location of the journal database.
func DefaultStorePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join("data", "prixlens.db")
	}
	return filepath.Join(home, ".local", "share", "prixlens", "prixlens.db")
}
