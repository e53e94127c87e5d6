package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

const appName = "lifecount"

// Preferences holds per-user settings, separate from scenario files.
type Preferences struct {
	Display DisplayPreferences `toml:"display"`
	History HistoryPreferences `toml:"history"`
	Sweep   SweepPreferences   `toml:"sweep"`
}

// DisplayPreferences controls how figures are rendered.
type DisplayPreferences struct {
	CurrencySymbol string `toml:"currency_symbol"`
	DefaultFormat  string `toml:"default_format"`
}

// HistoryPreferences controls the run history database.
type HistoryPreferences struct {
	Enabled bool   `toml:"enabled"`
	DBPath  string `toml:"db_path,omitempty"`
}

// SweepPreferences holds the default growth-rate range for sensitivity runs, in percent.
type SweepPreferences struct {
	Min  float64 `toml:"min"`
	Max  float64 `toml:"max"`
	Step float64 `toml:"step"`
}

// DefaultPreferences returns the default preferences.
func DefaultPreferences() Preferences {
	return Preferences{
		Display: DisplayPreferences{
			CurrencySymbol: "¥",
			DefaultFormat:  "console",
		},
		History: HistoryPreferences{
			Enabled: true,
		},
		Sweep: SweepPreferences{
			Min:  0,
			Max:  8,
			Step: 1,
		},
	}
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appName)
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", appName)
}

// PreferencesPath returns the full path to the preferences file.
func PreferencesPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// HistoryPath returns the history database location, defaulting next to the preferences file.
func (p Preferences) HistoryPath() string {
	if p.History.DBPath != "" {
		return p.History.DBPath
	}
	return filepath.Join(ConfigDir(), "history.db")
}

// LoadPreferences reads the preferences file, returning defaults if it doesn't exist.
func LoadPreferences() (Preferences, error) {
	return LoadPreferencesFrom(PreferencesPath())
}

// LoadPreferencesFrom reads preferences from path. Keys missing from the file keep their defaults.
func LoadPreferencesFrom(path string) (Preferences, error) {
	prefs := DefaultPreferences()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return prefs, nil
		}
		return prefs, fmt.Errorf("reading preferences: %w", err)
	}

	if err := toml.Unmarshal(data, &prefs); err != nil {
		return prefs, fmt.Errorf("parsing preferences: %w", err)
	}

	return prefs, nil
}

// SavePreferences writes the preferences to the default location.
func SavePreferences(prefs Preferences) error {
	return SavePreferencesTo(prefs, PreferencesPath())
}

// SavePreferencesTo writes the preferences to path, creating its directory.
func SavePreferencesTo(prefs Preferences, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating preferences file: %w", err)
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(prefs)
}

// PreferencesExist returns true if a preferences file exists on disk.
func PreferencesExist() bool {
	_, err := os.Stat(PreferencesPath())
	return err == nil
}
