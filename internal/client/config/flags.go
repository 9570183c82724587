package config

import (
	"os"

	"github.com/dmitrijs2005/lufa/internal/flagx"
	"github.com/spf13/pflag"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-u, --base-url string   site base URL
//	-l, --language string   site language (en, fr)
//	-t, --timeout duration  request timeout (e.g. 10s)
//	-e, --email string      login email
//	-v, --verbose           log at debug level
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:],
		[]string{"-u", "--base-url", "-l", "--language", "-t", "--timeout", "-e", "--email"},
		"-v", "--verbose")

	fs := pflag.NewFlagSet("main", pflag.ContinueOnError)

	fs.StringVarP(&cfg.BaseURL, "base-url", "u", cfg.BaseURL, "site base URL")
	fs.StringVarP(&cfg.Language, "language", "l", cfg.Language, "site language (en, fr)")
	fs.DurationVarP(&cfg.Timeout, "timeout", "t", cfg.Timeout, "request timeout")
	fs.StringVarP(&cfg.Email, "email", "e", cfg.Email, "login email")
	verbose := fs.BoolP("verbose", "v", false, "log at debug level")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	if *verbose {
		cfg.LogLevel = "debug"
	}
}
