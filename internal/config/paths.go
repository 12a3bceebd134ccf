// Package config provides configuration loading, validation, and path resolution.
package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// ConfigPathEnvVar is the environment variable name for overriding
// where Spool looks for its config file.
const ConfigPathEnvVar = "SPOOL_CONFIG"

// FileName is the config file name Spool looks for.
const FileName = "spool.yaml"

// DefaultPath returns the config file path used when none is given on the
// command line. The path is determined in the following order of precedence:
//
//  1. SPOOL_CONFIG environment variable (if set and non-empty)
//  2. ./spool.yaml, when one exists in the working directory
//  3. Platform-specific user config directory:
//     - macOS/Linux: $XDG_CONFIG_HOME/spool/spool.yaml or ~/.config/spool/spool.yaml
//     - Windows: %APPDATA%\spool\spool.yaml
//
// The file may not exist; callers decide whether that is an error.
func DefaultPath() string {
	if env := os.Getenv(ConfigPathEnvVar); env != "" {
		return env
	}

	if _, err := os.Stat(FileName); err == nil {
		return FileName
	}

	return filepath.Join(UserConfigDir(), FileName)
}

// UserConfigDir returns the per-user Spool configuration directory.
// On Unix: ~/.config/spool (or XDG_CONFIG_HOME/spool)
// On Windows: %APPDATA%\spool
func UserConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "spool")
	}

	if runtime.GOOS == "windows" {
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "spool")
		}
	}

	homeDir, err := os.UserHomeDir()
	if err != nil || homeDir == "" {
		return "."
	}
	return filepath.Join(homeDir, ".config", "spool")
}
