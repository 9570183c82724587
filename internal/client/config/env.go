package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv overlays Config with the LUFA_* environment variables that are
// set. Unset variables leave the current values alone. Panics when a value
// cannot be parsed (e.g. a malformed LUFA_TIMEOUT).
func parseEnv(cfg *Config) {
	if err := env.Parse(cfg); err != nil {
		panic(fmt.Errorf("parse env: %w", err))
	}
}
