package config

import (
	"fmt"
	"strings"
	"sync"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
)

var (
	// appConfig holds the current application configuration
	appConfig *Config
	configMu  sync.RWMutex
)

// SetDefaults installs default configuration values on the shared viper
// instance. Called from command initialization before any Load.
func SetDefaults() {
	// Upstream service defaults; the original deployment runs the suggestion
	// backend on the loopback interface.
	viper.SetDefault("service.base_url", "http://127.0.0.1:5000")
	viper.SetDefault("service.timeout", "10s")
	viper.SetDefault("service.default_library", "")
	viper.SetDefault("service.default_price_type", "Moyen")

	// Store defaults
	viper.SetDefault("store.driver", "libsql")
	viper.SetDefault("store.path", DefaultStorePath())
	viper.SetDefault("store.url", "")
	viper.SetDefault("store.auth_token", "")

	// Logging defaults
	viper.SetDefault("logging.level", "info")

	// Output defaults
	viper.SetDefault("output.format", "table")
}

// Load decodes the merged viper state (defaults, config file, environment,
// bound flags) into a typed Config and caches it for GetConfig.
func Load() (*Config, error) {
	cfg := &Config{}

	decoderOpts := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	))

	if err := viper.Unmarshal(cfg, decoderOpts); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if strings.TrimSpace(cfg.Store.URL) == "" && strings.TrimSpace(cfg.Store.Path) == "" {
		cfg.Store.Path = DefaultStorePath()
	}

	setConfig(cfg)

	return cfg, nil
}

// GetConfig returns the current application configuration (thread-safe).
func GetConfig() *Config {
	configMu.RLock()
	defer configMu.RUnlock()
	return appConfig
}

// setConfig updates the current configuration (thread-safe).
func setConfig(cfg *Config) {
	configMu.Lock()
	defer configMu.Unlock()
	appConfig = cfg
}
