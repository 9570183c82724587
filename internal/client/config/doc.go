// Package config loads runtime configuration for the Lufa CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via -c or --config.
//  3. LUFA_* environment variables (see parseEnv).
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-u, --base-url string    site base URL
//	-l, --language string    site language (en, fr)
//	-t, --timeout duration   request timeout
//	-e, --email string       login email
//	-v, --verbose            log at debug level
//
// Environment
//
//	LUFA_BASE_URL, LUFA_LANGUAGE, LUFA_TIMEOUT, LUFA_EMAIL, LUFA_LOG_LEVEL
//
// # JSON schema
//
// Durations can be either strings like "10s" or integer nanoseconds:
//
//	{
//	  "base_url": "https://montreal.lufa.com",
//	  "language": "fr",
//	  "timeout": "10s",
//	  "email": "bob@example.com",
//	  "log_level": "info"
//	}
package config
