// Package paths resolves configuration and data directory locations for the
// snakecube CLI.
package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

// CWD-relative directory names.
const (
	DefaultConfigDirName = ".snakecube"
	DefaultDataDirName   = ".snakecube-db"
)

// Environment variable names for directory overrides.
const (
	EnvConfigDir = "SNAKECUBE_CONFIG_DIR"
	EnvDataDir   = "SNAKECUBE_DATA_DIR"
)

// platformDir holds platform-detection functions that can be overridden in tests.
var platformDir = struct {
	homeDir       func() (string, error)
	userConfigDir func() (string, error)
}{
	homeDir:       os.UserHomeDir,
	userConfigDir: os.UserConfigDir,
}

// defaultDir picks the platform directory for the app. On Linux the xdgEnv
// variable wins, falling back to homeSuffix under the home directory. On
// macOS and Windows os.UserConfigDir is used, which returns
// ~/Library/Application Support and %APPDATA% respectively.
func defaultDir(xdgEnv string, homeSuffix ...string) (string, error) {
	if runtime.GOOS != "linux" {
		dir, err := platformDir.userConfigDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, "snakecube"), nil
	}
	if xdg := os.Getenv(xdgEnv); xdg != "" {
		return filepath.Join(xdg, "snakecube"), nil
	}
	home, err := platformDir.homeDir()
	if err != nil {
		return "", err
	}
	parts := append([]string{home}, homeSuffix...)
	return filepath.Join(append(parts, "snakecube")...), nil
}

// DefaultConfigDir returns the platform-specific default configuration
// directory: $XDG_CONFIG_HOME/snakecube on Linux (fallback
// ~/.config/snakecube), the user config dir elsewhere.
func DefaultConfigDir() (string, error) {
	return defaultDir("XDG_CONFIG_HOME", ".config")
}

// DefaultDataDir returns the platform-specific default data directory:
// $XDG_DATA_HOME/snakecube on Linux (fallback ~/.local/share/snakecube),
// the user config dir elsewhere.
func DefaultDataDir() (string, error) {
	return defaultDir("XDG_DATA_HOME", ".local", "share")
}

// ResolveConfigDir returns the configuration directory following the
// precedence chain: flag > SNAKECUBE_CONFIG_DIR env > DefaultConfigDir().
func ResolveConfigDir(flag string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if env := os.Getenv(EnvConfigDir); env != "" {
		return filepath.Abs(env)
	}
	return DefaultConfigDir()
}

// ResolveDataDir returns the data directory following the precedence chain:
// flag > config file value > SNAKECUBE_DATA_DIR env > $(CWD)/.snakecube-db.
func ResolveDataDir(flag, configValue string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if configValue != "" {
		return filepath.Abs(configValue)
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
