package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.True(t, cfg.Warning)
	assert.False(t, cfg.Quiet)
	assert.False(t, cfg.Debug)
	assert.False(t, cfg.Exceptions)
	assert.Equal(t, "\n", cfg.Newline)
	assert.Equal(t, "%.8g", cfg.Format)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir()) // no config file
	t.Setenv("NUMCTL_FORMAT", "%.3f")
	t.Setenv("NUMCTL_QUIET", "true")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "%.3f", cfg.Format)
	assert.True(t, cfg.Quiet)
	assert.True(t, cfg.Warning, "untouched fields keep defaults")
}

func TestLoadFileOverlay(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "numctl"), 0o755))
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, "numctl", "config.yaml"),
		[]byte("format: \"%.4g\"\nwarning: false\n"), 0o644))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "%.4g", cfg.Format)
	assert.False(t, cfg.Warning)
}

func TestLoadEnvBeatsFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "numctl"), 0o755))
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, "numctl", "config.yaml"),
		[]byte("format: \"%.4g\"\n"), 0o644))
	t.Setenv("NUMCTL_FORMAT", "%.2f")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "%.2f", cfg.Format)
}

func TestLoadBadFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "numctl"), 0o755))
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, "numctl", "config.yaml"),
		[]byte(":\tnot yaml"), 0o644))

	_, err := Load()
	assert.Error(t, err)
}
