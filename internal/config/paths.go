// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// =============================================================================
// XDG PATH RESOLUTION
// =============================================================================

// appDirName is the per-application directory under the XDG base dirs.
const appDirName = "simplechat"

// ConfigDir returns the simplechat config directory, honoring
// XDG_CONFIG_HOME and falling back to ~/.config.
func ConfigDir() (string, error) {
	if base := os.Getenv("XDG_CONFIG_HOME"); base != "" {
		return filepath.Join(base, appDirName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, ".config", appDirName), nil
}

// DataDir returns the simplechat data directory, honoring XDG_DATA_HOME
// and falling back to ~/.local/share. Chats, prompts, and the token
// usage file live here unless the config points elsewhere.
func DataDir() (string, error) {
	if base := os.Getenv("XDG_DATA_HOME"); base != "" {
		return filepath.Join(base, appDirName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, ".local", "share", appDirName), nil
}

// ConfigPathTOML returns the default TOML config file path.
func ConfigPathTOML() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// ConfigPathJSON returns the default JSON config file path.
func ConfigPathJSON() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// TokenUsagePath returns the default token usage file inside dataDir.
func TokenUsagePath(dataDir string) string {
	return filepath.Join(dataDir, "token_usage.json")
}

// HistoryPath returns the input history file used by the interactive
// prompt.
func HistoryPath() (string, error) {
	dir, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "history"), nil
}
