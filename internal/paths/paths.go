// Package paths resolves configuration and data directory locations.
package paths

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// AppName names the per-user directories.
const AppName = "phonebook"

// Environment variable names for directory overrides.
const (
	EnvConfigDir = "PHONEBOOK_CONFIG_DIR"
	EnvDataDir   = "PHONEBOOK_DATA_DIR"
)

// platformDir holds platform-detection functions that can be overridden in tests.
var platformDir = struct {
	goos          string
	homeDir       func() (string, error)
	userConfigDir func() (string, error)
}{
	goos:          runtime.GOOS,
	homeDir:       os.UserHomeDir,
	userConfigDir: os.UserConfigDir,
}

// DefaultConfigDir returns the platform-specific default configuration directory.
//
// Linux:   $XDG_CONFIG_HOME/phonebook (fallback ~/.config/phonebook)
// macOS:   ~/Library/Application Support/phonebook
// Windows: %APPDATA%/phonebook
func DefaultConfigDir() (string, error) {
	return userDir("XDG_CONFIG_HOME", ".config")
}

// DefaultDataDir returns the platform-specific default data directory.
//
// Linux:   $XDG_DATA_HOME/phonebook (fallback ~/.local/share/phonebook)
// macOS:   ~/Library/Application Support/phonebook
// Windows: %APPDATA%/phonebook
func DefaultDataDir() (string, error) {
	return userDir("XDG_DATA_HOME", filepath.Join(".local", "share"))
}

// userDir applies the XDG rules on Linux and os.UserConfigDir elsewhere.
func userDir(xdgEnv, homeRel string) (string, error) {
	if platformDir.goos != "linux" {
		dir, err := platformDir.userConfigDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, AppName), nil
	}
	if xdg := os.Getenv(xdgEnv); xdg != "" {
		return filepath.Join(xdg, AppName), nil
	}
	home, err := platformDir.homeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, homeRel, AppName), nil
}

// ResolveConfigDir returns the configuration directory following the precedence
// chain: flag > PHONEBOOK_CONFIG_DIR env > DefaultConfigDir().
func ResolveConfigDir(flag string) (string, error) {
	if flag != "" {
		return Abs(flag)
	}
	if env := os.Getenv(EnvConfigDir); env != "" {
		return Abs(env)
	}
	return DefaultConfigDir()
}

// ResolveDataDir returns the data directory following the precedence chain:
// flag > configValue (data_dir in config.yaml) > PHONEBOOK_DATA_DIR env >
// DefaultDataDir().
func ResolveDataDir(flag, configValue string) (string, error) {
	for _, v := range []string{flag, configValue, os.Getenv(EnvDataDir)} {
		if v != "" {
			return Abs(v)
		}
	}
	return DefaultDataDir()
}

// Abs expands a leading "~/" to the home directory and makes the result
// absolute.
func Abs(path string) (string, error) {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := platformDir.homeDir()
		if err != nil {
			return "", err
		}
		path = filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return filepath.Abs(path)
}
