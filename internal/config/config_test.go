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
	path := filepath.Join(t.TempDir(), "flyoutkit.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadMissingFileFallsBackToDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
[menu]
placement = "right"
open_offset = 6.0

[log]
level = "debug"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "right", cfg.Menu.Placement)
	assert.Equal(t, float32(6), cfg.Menu.OpenOffset)
	assert.Equal(t, "debug", cfg.Log.Level)

	// Untouched sections keep their defaults.
	assert.Equal(t, Default().Window, cfg.Window)
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Run("unknown placement", func(t *testing.T) {
		path := writeConfig(t, `
[menu]
placement = "diagonal"
`)
		_, err := Load(path)
		assert.ErrorContains(t, err, "unknown placement")
	})

	t.Run("non-positive window", func(t *testing.T) {
		path := writeConfig(t, `
[window]
width = 0.0
height = 600.0
`)
		_, err := Load(path)
		assert.ErrorContains(t, err, "must be positive")
	})

	t.Run("malformed toml", func(t *testing.T) {
		path := writeConfig(t, `[menu`)
		_, err := Load(path)
		assert.Error(t, err)
	})
}
