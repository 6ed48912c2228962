// Package config loads process configuration from the environment.
package config

import (
	"github.com/caarlos0/env/v11"
)

// Config holds the environment-tunable settings. Nothing here changes
// command semantics; it only controls diagnostics.
type Config struct {
	LogLevel string `env:"USERADM_LOG_LEVEL" envDefault:"warn"`
}

// Load parses the environment. A malformed environment never fails the
// process; defaults are used instead.
func Load() Config {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{LogLevel: "warn"}
	}
	return cfg
}
