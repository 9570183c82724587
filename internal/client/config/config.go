package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"
)

// Config holds runtime settings for the Lufa CLI.
//
// Fields:
//   - BaseURL: scheme and host of the Lufa site, without the language segment.
//   - Language: site language, "en" or "fr".
//   - Timeout: whole-request timeout of the HTTP client.
//   - Email: default login email; the password is always prompted for.
//   - LogLevel: slog level name (debug, info, warn, error).
type Config struct {
	BaseURL  string        `env:"LUFA_BASE_URL"`
	Language string        `env:"LUFA_LANGUAGE"`
	Timeout  time.Duration `env:"LUFA_TIMEOUT"`
	Email    string        `env:"LUFA_EMAIL"`
	LogLevel string        `env:"LUFA_LOG_LEVEL"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = "https://montreal.lufa.com"
	c.Language = "en"
	c.Timeout = 30 * time.Second
	c.Email = ""
	c.LogLevel = "warn"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), the environment and command-line flags. Later sources
// take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}

// SlogLevel maps LogLevel onto a slog level.
func (c *Config) SlogLevel() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(c.LogLevel))); err != nil {
		return 0, fmt.Errorf("log level %q: %w", c.LogLevel, err)
	}
	return lvl, nil
}
