// Package config holds the finplan application configuration: directories,
// display currency, bank statement formats, and category rules.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds all finplan configuration.
type Config struct {
	General    GeneralConfig         `toml:"general"`
	Appearance AppearanceConfig      `toml:"appearance,omitempty"`
	Banks      map[string]BankFormat `toml:"banks,omitempty"`
	Categories map[string][]string   `toml:"categories,omitempty"`
}

// GeneralConfig holds general preferences.
type GeneralConfig struct {
	ScenarioDir   string `toml:"scenario_dir,omitempty"`
	StatementsDir string `toml:"statements_dir,omitempty"`
	Currency      string `toml:"currency"`
}

// AppearanceConfig holds TUI display preferences.
type AppearanceConfig struct {
	Theme string `toml:"theme,omitempty"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{
			ScenarioDir: filepath.Join(ConfigDir(), "scenarios"),
			Currency:    "DKK",
		},
	}
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "finplan")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "finplan")
}

// ConfigPath returns the full path to the config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(ConfigPath())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	dir := ConfigDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(ConfigPath(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(ConfigPath())
	return err == nil
}
