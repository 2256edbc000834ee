// Package paths resolves configuration and data directory locations.
package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

// CWD-relative directory names used when no override is active.
const (
	DefaultConfigDirName = ".lantern"
	DefaultDataDirName   = ".lantern-db"
)

// Environment variable names for directory overrides.
const (
	EnvConfigDir = "LANTERN_CONFIG_DIR"
	EnvDataDir   = "LANTERN_DATA_DIR"
)

// platformDir holds platform-detection functions that can be overridden in tests.
var platformDir = struct {
	homeDir       func() (string, error)
	userConfigDir func() (string, error)
}{
	homeDir:       os.UserHomeDir,
	userConfigDir: os.UserConfigDir,
}

// DefaultConfigDir returns the platform-specific default configuration directory.
//
// Linux:   $XDG_CONFIG_HOME/lantern (fallback ~/.config/lantern)
// macOS:   ~/Library/Application Support/lantern
// Windows: %APPDATA%/lantern
func DefaultConfigDir() (string, error) {
	switch runtime.GOOS {
	case "linux":
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "lantern"), nil
		}
		home, err := platformDir.homeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".config", "lantern"), nil
	default:
		// macOS and Windows use os.UserConfigDir which returns
		// ~/Library/Application Support on macOS and %APPDATA% on Windows.
		dir, err := platformDir.userConfigDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, "lantern"), nil
	}
}

// DefaultDataDir returns the platform-specific default data directory.
//
// Linux:   $XDG_DATA_HOME/lantern (fallback ~/.local/share/lantern)
// macOS:   ~/Library/Application Support/lantern
// Windows: %APPDATA%/lantern
func DefaultDataDir() (string, error) {
	switch runtime.GOOS {
	case "linux":
		if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
			return filepath.Join(xdg, "lantern"), nil
		}
		home, err := platformDir.homeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".local", "share", "lantern"), nil
	default:
		// macOS and Windows: same as config dir.
		dir, err := platformDir.userConfigDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, "lantern"), nil
	}
}

// ResolveConfigDir returns the configuration directory following the
// precedence chain: flag > LANTERN_CONFIG_DIR env > DefaultConfigDir().
func ResolveConfigDir(flag string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if env := os.Getenv(EnvConfigDir); env != "" {
		return filepath.Abs(env)
	}
	return DefaultConfigDir()
}

// ResolveDataDir returns the data directory following the precedence
// chain: flag > configYAMLValue > LANTERN_DATA_DIR env > CWD default.
//
// The CWD-relative default ($(CWD)/.lantern-db) keeps a journal next to
// the directory it was opened from when nothing else is configured.
func ResolveDataDir(flag, configYAMLValue string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if configYAMLValue != "" {
		return filepath.Abs(configYAMLValue)
	}
	if env := os.Getenv(EnvDataDir); env != "" {
		return filepath.Abs(env)
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(cwd, DefaultDataDirName), nil
}
