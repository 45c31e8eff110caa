package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "treesearch.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestNewConfigDefaults(t *testing.T) {
	t.Parallel()
	cfg := NewConfig()
	require.Equal(t, "bfs", cfg.Frontier)
	require.Equal(t, defaultMaxSteps, cfg.MaxSteps)
	require.Equal(t, defaultTimeout, cfg.Timeout)
	require.Equal(t, "info", cfg.Log.Level)
	require.Equal(t, "text", cfg.Log.Format)
	require.NoError(t, cfg.Validate())

	cfg = NewConfig(WithFrontier("dfs"), WithMaxSteps(10), WithTimeout(time.Second), WithBaseCost(2))
	require.Equal(t, "dfs", cfg.Frontier)
	require.Equal(t, 10, cfg.MaxSteps)
	require.Equal(t, time.Second, cfg.Timeout)
	require.Equal(t, 2.0, cfg.BaseCost)
}

func TestLoad(t *testing.T) {
	t.Parallel()

	t.Run("Full", func(t *testing.T) {
		t.Parallel()
		path := writeFile(t, `
frontier: ucs
max_steps: 500
timeout: 2s
base_cost: 1.5
log:
  level: debug
  format: json
`)
		cfg, err := Load(path)
		require.NoError(t, err)
		require.Equal(t, Config{
			Frontier: "ucs",
			MaxSteps: 500,
			Timeout:  2 * time.Second,
			BaseCost: 1.5,
			Log:      LogConfig{Level: "debug", Format: "json"},
		}, cfg)
	})

	t.Run("PartialKeepsDefaults", func(t *testing.T) {
		t.Parallel()
		cfg, err := Load(writeFile(t, "max_steps: 3\n"))
		require.NoError(t, err)
		require.Equal(t, "bfs", cfg.Frontier)
		require.Equal(t, 3, cfg.MaxSteps)
		require.Equal(t, defaultTimeout, cfg.Timeout)
		require.Equal(t, "text", cfg.Log.Format)
	})

	t.Run("OptionsOverrideFile", func(t *testing.T) {
		t.Parallel()
		cfg, err := Load(writeFile(t, "frontier: dfs\n"), WithFrontier("bfs"))
		require.NoError(t, err)
		require.Equal(t, "bfs", cfg.Frontier)
	})

	t.Run("Missing", func(t *testing.T) {
		t.Parallel()
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		require.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("Invalid", func(t *testing.T) {
		t.Parallel()
		for name, content := range map[string]string{
			"frontier":  "frontier: astar\n",
			"steps":     "max_steps: -1\n",
			"level":     "log:\n  level: loud\n",
			"format":    "log:\n  format: xml\n",
			"malformed": "frontier: [\n",
		} {
			_, err := Load(writeFile(t, content))
			require.Error(t, err, name)
		}
	})
}
