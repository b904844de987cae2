// SPDX-FileCopyrightText: 2025 The Shaker Authors
// SPDX-License-Identifier: EUPL-1.2

package config

import (
	"os"
	"path/filepath"
	"strings"
)

// EnvConfigPath overrides the config file location.
const EnvConfigPath = "SHAKER_CONFIG"

// FileName is the config file name inside the application config directory.
const FileName = "config.toml"

// AppDir is the application directory under the XDG config home.
const AppDir = "shaker"

// GetXDGConfigHome returns XDG config directory.
func GetXDGConfigHome() string {
	return GetXDGConfigHomeWithEnv(os.Getenv("XDG_CONFIG_HOME"))
}

// GetXDGConfigHomeWithEnv returns XDG config directory with custom environment override for testing.
func GetXDGConfigHomeWithEnv(xdgConfigHome string) string {
	if xdgConfigHome != "" {
		return xdgConfigHome
	}

	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".config")
	}

	return ""
}

// GetConfigPath returns the config file path, honouring SHAKER_CONFIG.
func GetConfigPath() string {
	return GetConfigPathWithEnv(os.Getenv(EnvConfigPath), os.Getenv("XDG_CONFIG_HOME"))
}

// GetConfigPathWithEnv resolves the config file path from explicit environment values.
func GetConfigPathWithEnv(override, xdgConfigHome string) string {
	if override != "" {
		return ExpandPath(override)
	}

	return filepath.Join(GetXDGConfigHomeWithEnv(xdgConfigHome), AppDir, FileName)
}

// ExpandPath expands a leading ~ and $XDG_CONFIG_HOME.
func ExpandPath(path string) string {
	return ExpandPathWithEnv(path, "")
}

// ExpandPathWithEnv expands paths with a custom XDG config home for testing.
func ExpandPathWithEnv(path, xdgConfigHome string) string {
	if after, found := strings.CutPrefix(path, "~/"); found {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, after)
		}
	}

	if after, found := strings.CutPrefix(path, "$XDG_CONFIG_HOME"); found {
		configHome := xdgConfigHome
		if configHome == "" {
			configHome = GetXDGConfigHome()
		}

		return configHome + after
	}

	return path
}
