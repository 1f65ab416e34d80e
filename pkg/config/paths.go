package config

import (
	"os"
	"path/filepath"
)

// Path returns the default config file location.
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// Dir returns the config directory using XDG standard (~/.config/echotab/).
func Dir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, AppName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", AppName), nil
}

// DataDir returns the profile directory using XDG standard
// (~/.local/share/echotab/profiles/).
func DataDir() (string, error) {
	if dataHome := os.Getenv("XDG_DATA_HOME"); dataHome != "" {
		return filepath.Join(dataHome, AppName, "profiles"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".local", "share", AppName, "profiles"), nil
}

// ProfileDir returns Store.Dir, or [DataDir] when it is unset.
func (c Config) ProfileDir() (string, error) {
	if c.Store.Dir != "" {
		return c.Store.Dir, nil
	}
	return DataDir()
}
