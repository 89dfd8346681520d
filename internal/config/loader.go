package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if REGISTA_CONFIG is set
//  3. env (prefix REGISTA_)
func Load(ctx context.Context) (*Config, error) {
	base := New()

	k := koanf.New(".")

	if path := os.Getenv("REGISTA_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
		}
	}

	// Environment variables: REGISTA_ADDR, REGISTA_DATA_PATH, ...
	// Map env keys like REGISTA_DATA_PATH -> data_path (flat keys).
	// Preserve underscores to match koanf tags on the struct.
	envProvider := env.Provider("REGISTA_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "regista_")
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
	}

	// Unmarshal into a copy
	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch {
	case c.Addr == "":
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	case c.DefaultMaxAge < 0:
		return fmt.Errorf("%w: default_max_age must not be negative", ErrInvalidConfig)
	case c.DefaultMin90s < 0:
		return fmt.Errorf("%w: default_min_90s must not be negative", ErrInvalidConfig)
	case c.MaxResultLimit < 1:
		return fmt.Errorf("%w: max_result_limit must be positive", ErrInvalidConfig)
	}
	return nil
}
