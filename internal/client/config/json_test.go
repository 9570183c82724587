package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, dir, name string, data map[string]any) string {
	t.Helper()
	if dir == "" {
		dir = t.TempDir()
	}
	if name == "" {
		name = "cfg.json"
	}
	path := filepath.Join(dir, name)
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJson_SourcesAndPrecedence(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	dir := t.TempDir()
	pathFlag := writeTempJSON(t, dir, "flag.json", map[string]any{
		"base_url": "https://www.example",
		"timeout":  "10s",
	})

	t.Run("loads from flags", func(t *testing.T) {
		os.Args = []string{"testbin", "--config", pathFlag}

		cfg := &Config{Language: "fr"}
		parseJson(cfg)

		assert.Equal(t, "https://www.example", cfg.BaseURL)
		assert.Equal(t, 10*time.Second, cfg.Timeout)
		assert.Equal(t, "fr", cfg.Language, "keys absent from the file are kept")
	})

	t.Run("integer nanoseconds", func(t *testing.T) {
		path := writeTempJSON(t, dir, "ns.json", map[string]any{"timeout": 1500000000})
		os.Args = []string{"testbin", "-c", path}

		cfg := &Config{}
		parseJson(cfg)

		assert.Equal(t, 1500*time.Millisecond, cfg.Timeout)
	})

	t.Run("no CONFIG and no flags → no changes", func(t *testing.T) {
		os.Args = []string{"testbin"}

		cfg := &Config{
			BaseURL: "https://defaults",
			Timeout: 42 * time.Second,
		}
		parseJson(cfg)

		assert.Equal(t, "https://defaults", cfg.BaseURL)
		assert.Equal(t, 42*time.Second, cfg.Timeout)
	})

	t.Run("invalid JSON → panics", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ this is not valid json`), 0o600))

		os.Args = []string{"testbin", "--config", bad}

		cfg := &Config{}
		require.Panics(t, func() { parseJson(cfg) })
	})

	t.Run("invalid duration → panics", func(t *testing.T) {
		path := writeTempJSON(t, dir, "dur.json", map[string]any{"timeout": true})
		os.Args = []string{"testbin", "-c", path}

		cfg := &Config{}
		require.Panics(t, func() { parseJson(cfg) })
	})
}
