// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New() to build a Config with defaults; Load layers file and env.
// - External errors must be wrapped via this package's error helpers.
package config

import (
	"github.com/okian/regista/internal/domain/analysis"
)

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// DataPath points at the preloaded FBRef CSV export. Empty disables
	// preloading; uploads still work.
	DataPath string `koanf:"data_path"`

	// WatchData reloads the preloaded file when it changes on disk.
	WatchData bool `koanf:"watch_data"`

	// DefaultMaxAge is the inclusive age bound applied when a request
	// omits max_age.
	DefaultMaxAge int `koanf:"default_max_age"`

	// DefaultMin90s is the inclusive playing-time bound applied when a
	// request omits min_90s.
	DefaultMin90s float64 `koanf:"default_min_90s"`

	// DefaultPosition is the primary position code applied when a
	// request omits position.
	DefaultPosition string `koanf:"default_position"`

	// MaxResultLimit caps GET /leaderboard?limit.
	MaxResultLimit int `koanf:"max_result_limit"`
}

// New creates a Config with defaults.
func New() *Config {
	p := analysis.DefaultParams()
	return &Config{
		LogLevel:        "info",
		Addr:            ":9080",
		DataPath:        "data/big5_players.csv",
		WatchData:       true,
		DefaultMaxAge:   p.MaxAge,
		DefaultMin90s:   p.MinNineties,
		DefaultPosition: p.Position,
		MaxResultLimit:  500,
	}
}
