// Package config loads the simulator's YAML-backed defaults: a
// defaultConfig(), overridden by whatever the file at path contains,
// with an "empty path = defaults only" fallback and post-load sanity
// clamps.
package config

import (
	"os"

	yaml "github.com/goccy/go-yaml"
)

// Config is the shape of the optional YAML file passed to Load.
type Config struct {
	DefaultMaxPrio int    `yaml:"default_maxprio"` // 4 by default
	TracePath      string `yaml:"trace_path"`      // "" means a generated procsim-trace-<uuid>.csv name
}

func defaultConfig() Config {
	return Config{
		DefaultMaxPrio: 4,
		TracePath:      "",
	}
}

// Load reads YAML and overrides defaults; empty path = defaults only.
func Load(path string) Config {
	cfg := defaultConfig()

	if path == "" {
		return cfg
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg
	}

	_ = yaml.Unmarshal(data, &cfg)

	if cfg.DefaultMaxPrio <= 0 {
		cfg.DefaultMaxPrio = 4
	}

	return cfg
}
