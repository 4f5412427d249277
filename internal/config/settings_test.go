package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSettings(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "storm.yml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_MissingDefaultFileUsesDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load(DefaultPath)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, "5.0", cfg.Policy.Rate)
	assert.Equal(t, "100", cfg.Policy.Money)
}

func TestLoad_MissingExplicitFileFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	require.Error(t, err)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := writeSettings(t, `
locale: en-US
seed: 9
chart_window: 30
sound: false
policy:
  rate: "3.25"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "en-US", cfg.Locale)
	assert.Equal(t, uint64(9), cfg.Seed)
	assert.Equal(t, 30, cfg.ChartWindow)
	assert.False(t, cfg.Sound)
	assert.Equal(t, "3.25", cfg.Policy.Rate)
	assert.Equal(t, "100", cfg.Policy.Money)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeSettings(t, "locale: en-US\nseed: 9\n")
	t.Setenv("STORM_LOCALE", "zh-CN")
	t.Setenv("STORM_SEED", "11")
	t.Setenv("STORM_DEFAULT_MONEY", "120")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "zh-CN", cfg.Locale)
	assert.Equal(t, uint64(11), cfg.Seed)
	assert.Equal(t, "120", cfg.Policy.Money)
}

func TestLoad_ConfigPathFromEnv(t *testing.T) {
	path := writeSettings(t, "chart_window: 5\n")
	t.Setenv("STORM_CONFIG", path)

	cfg, err := Load(DefaultPath)
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.ChartWindow)
}

func TestLoad_RejectsBadValues(t *testing.T) {
	_, err := Load(writeSettings(t, "chart_window: -1\n"))
	assert.Error(t, err)

	_, err = Load(writeSettings(t, "seed: [1, 2\n"))
	assert.Error(t, err)

	path := writeSettings(t, "")
	t.Setenv("STORM_SEED", "many")
	_, err = Load(path)
	assert.Error(t, err)
}
