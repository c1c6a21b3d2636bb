package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTheme(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "classic", cfg.Theme)
	assert.False(t, cfg.NoColor)
	assert.Empty(t, cfg.DataDir)
}

func TestLoadWithoutConfigFileUsesDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "classic", cfg.Theme)
}

func TestLoadReadsConfigFile(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)

	dir := filepath.Join(xdg, "dixit")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("theme: neon\nno_color: true\ndata_dir: /tmp/dixit-data\n"), 0o644))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "neon", cfg.Theme)
	assert.True(t, cfg.NoColor)
	assert.Equal(t, "/tmp/dixit-data", cfg.DataDir)
}

func TestInvalidThemeFallsBackToClassic(t *testing.T) {
	cfg := &Config{Theme: "disco"}
	cfg.normalize()
	assert.Equal(t, "classic", cfg.Theme)
}
