package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "klondike.hcl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
game {
  draw_count    = 3
  undo_capacity = 50
  seed          = 42
  log_level     = "debug"
}
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Game.DrawCount)
	assert.Equal(t, 50, cfg.Game.UndoCapacity)
	assert.Equal(t, int64(42), cfg.Game.Seed)
	assert.Equal(t, "debug", cfg.Game.LogLevel)
}

func TestLoadConfigDefaults(t *testing.T) {
	path := writeConfig(t, `
game {
  seed = 7
}
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 1, cfg.Game.DrawCount)
	assert.Equal(t, 100, cfg.Game.UndoCapacity)
	assert.Equal(t, "info", cfg.Game.LogLevel)
	assert.Equal(t, int64(7), cfg.Game.Seed)
}

func TestLoadConfigInvalidDrawCount(t *testing.T) {
	path := writeConfig(t, `
game {
  draw_count = 2
}
`)

	_, err := LoadConfig(path)
	assert.ErrorContains(t, err, "draw_count")
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.hcl"))
	assert.ErrorContains(t, err, "not found")
}

func TestLoadConfigBadSyntax(t *testing.T) {
	path := writeConfig(t, `game {`)
	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestDefaultConfigValid(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())
}
