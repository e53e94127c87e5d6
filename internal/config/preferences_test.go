package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigDir_UsesXDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	assert.Equal(t, filepath.Join(dir, "lifecount"), ConfigDir())
	assert.Equal(t, filepath.Join(dir, "lifecount", "config.toml"), PreferencesPath())
}

func TestLoadPreferences_MissingFileGivesDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	prefs, err := LoadPreferences()
	require.NoError(t, err)
	assert.Equal(t, DefaultPreferences(), prefs)
	assert.False(t, PreferencesExist())
}

func TestLoadPreferencesFrom_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := "[display]\ncurrency_symbol = \"$\"\n\n[sweep]\nmax = 12.5\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	prefs, err := LoadPreferencesFrom(path)
	require.NoError(t, err)
	assert.Equal(t, "$", prefs.Display.CurrencySymbol)
	assert.Equal(t, "console", prefs.Display.DefaultFormat)
	assert.True(t, prefs.History.Enabled)
	assert.Equal(t, 12.5, prefs.Sweep.Max)
	assert.Equal(t, 1.0, prefs.Sweep.Step)
}

func TestLoadPreferencesFrom_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[display\n"), 0o600))

	_, err := LoadPreferencesFrom(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing preferences")
}

func TestSavePreferences_RoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	prefs := DefaultPreferences()
	prefs.Display.DefaultFormat = "html"
	prefs.History.Enabled = false
	prefs.History.DBPath = "/tmp/runs.db"

	require.NoError(t, SavePreferences(prefs))
	assert.True(t, PreferencesExist())

	loaded, err := LoadPreferences()
	require.NoError(t, err)
	assert.Equal(t, prefs, loaded)
}

func TestHistoryPath(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	prefs := DefaultPreferences()
	assert.Equal(t, filepath.Join(dir, "lifecount", "history.db"), prefs.HistoryPath())

	prefs.History.DBPath = "/data/h.db"
	assert.Equal(t, "/data/h.db", prefs.HistoryPath())
}
