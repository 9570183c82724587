package config

import (
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	// Test cases
	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{name: "short flags", args: []string{"cmd", "-u", "http://localhost:9090", "-l", "fr", "-t", "10s", "-e", "bob@example.com"},
			expected: &Config{BaseURL: "http://localhost:9090", Language: "fr", Timeout: 10 * time.Second, Email: "bob@example.com"}},
		{name: "long flags with equals", args: []string{"cmd", "--base-url=http://h", "--timeout=1m", "--verbose"},
			expected: &Config{BaseURL: "http://h", Timeout: time.Minute, LogLevel: "debug"}},
		{name: "unknown flags ignored", args: []string{"cmd", "-x", "1", "-c", "conf.json", "-v"},
			expected: &Config{LogLevel: "debug"}},
		{name: "incorrect timeout", args: []string{"cmd", "-t", "abc"}, expectPanic: true, expected: &Config{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args

			config := &Config{}

			if !tt.expectPanic {
				require.NotPanics(t, func() { parseFlags(config) })
				assert.Empty(t, cmp.Diff(config, tt.expected))
			} else {
				require.Panics(t, func() { parseFlags(config) })
			}
		})
	}
}
