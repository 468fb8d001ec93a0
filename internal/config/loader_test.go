package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Chdir(dir)
	return dir
}

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	var fromYAML TetrisConfig
	require.NoError(t, yaml.Unmarshal(DefaultYAML(), &fromYAML))
	assert.Equal(t, DefaultTetrisConfig(), fromYAML)
	require.NoError(t, fromYAML.Validate())
}

func TestLoadTetrisDefault(t *testing.T) {
	isolate(t)

	cfg, err := LoadTetris("")
	require.NoError(t, err)
	assert.Equal(t, 300*time.Millisecond, cfg.DropInterval())
	assert.Equal(t, []string{" "}, cfg.Keys.Drop)
}

func TestLoadTetrisCustomPartial(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "mine.yaml")
	require.NoError(t, os.WriteFile(path, []byte("timing:\n  drop_interval_ms: 150\nkeys:\n  drop: [\"enter\"]\n"), 0o600))

	cfg, err := LoadTetris(path)
	require.NoError(t, err)
	assert.Equal(t, 150*time.Millisecond, cfg.DropInterval())
	assert.Equal(t, []string{"enter"}, cfg.Keys.Drop)
	// untouched sections keep their defaults
	assert.Equal(t, []string{"left", "h"}, cfg.Keys.Left)
	assert.Equal(t, "[]", cfg.Display.Block)
}

func TestLoadTetrisCustomErrors(t *testing.T) {
	dir := isolate(t)

	_, err := LoadTetris(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)

	broken := filepath.Join(dir, "broken.yaml")
	require.NoError(t, os.WriteFile(broken, []byte("timing: [unclosed"), 0o600))
	_, err = LoadTetris(broken)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config")

	invalid := filepath.Join(dir, "invalid.yaml")
	require.NoError(t, os.WriteFile(invalid, []byte("timing:\n  drop_interval_ms: 0\n"), 0o600))
	_, err = LoadTetris(invalid)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLoadTetrisSearchOrder(t *testing.T) {
	dir := isolate(t)

	local := filepath.Join(dir, "configs")
	require.NoError(t, os.MkdirAll(local, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(local, "tetris.yaml"), []byte("timing:\n  drop_interval_ms: 500\n"), 0o600))

	cfg, err := LoadTetris("")
	require.NoError(t, err)
	assert.Equal(t, 500, cfg.Timing.DropIntervalMS)

	user := filepath.Join(dir, ".tetris", "configs")
	require.NoError(t, os.MkdirAll(user, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(user, "tetris.yaml"), []byte("timing:\n  drop_interval_ms: 200\n"), 0o600))

	cfg, err = LoadTetris("")
	require.NoError(t, err)
	assert.Equal(t, 200, cfg.Timing.DropIntervalMS, "user config wins over local config")
}

func TestLoadTetrisSkipsInvalidUserConfig(t *testing.T) {
	dir := isolate(t)

	user := filepath.Join(dir, ".tetris", "configs")
	require.NoError(t, os.MkdirAll(user, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(user, "tetris.yaml"), []byte("timing:\n  drop_interval_ms: -1\n"), 0o600))

	cfg, err := LoadTetris("")
	require.NoError(t, err)
	assert.Equal(t, 300, cfg.Timing.DropIntervalMS)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*TetrisConfig)
		errMsg string
	}{
		{"defaults", func(*TetrisConfig) {}, ""},
		{"negative interval", func(c *TetrisConfig) { c.Timing.DropIntervalMS = -5 }, "drop_interval_ms"},
		{"empty binding", func(c *TetrisConfig) { c.Keys.Pause = nil }, "keys.pause"},
		{"narrow block", func(c *TetrisConfig) { c.Display.Block = "#" }, "display.block"},
		{"wide empty", func(c *TetrisConfig) { c.Display.Empty = " . " }, "display.empty"},
		{"unicode block", func(c *TetrisConfig) { c.Display.Block = "██" }, ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultTetrisConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.errMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, ErrInvalidConfig)
			assert.Contains(t, err.Error(), tc.errMsg)
		})
	}
}
