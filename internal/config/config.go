// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides unified configuration loading for simplechat.
//
// Supports both TOML and JSON configuration formats, with sensible
// defaults and environment variable overrides.
//
// Configuration file locations (in order of precedence):
//   - path given with --config
//   - $XDG_CONFIG_HOME/simplechat/config.toml
//   - $XDG_CONFIG_HOME/simplechat/config.json
//   - Built-in defaults
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete simplechat configuration.
//
// Unrecognized keys in the file are ignored so configs can be shared
// across versions without breaking startup.
type Config struct {
	// APIKeyFile is the path to a file holding the API key.
	APIKeyFile string `toml:"api_key_file" json:"api_key_file"`

	// Model is the completion model requested from the API.
	Model string `toml:"model" json:"model"`

	// ChatDir is the directory where named .chat files live.
	ChatDir string `toml:"default_chat_dir" json:"default_chat_dir"`
	// ChatDirAlias accepts the older chats_dir spelling.
	ChatDirAlias string `toml:"chats_dir" json:"chats_dir"`

	// PromptDir is the directory where named .prompt files live.
	PromptDir string `toml:"default_prompt_dir" json:"default_prompt_dir"`
	// PromptDirAlias accepts the older prompts_dir spelling.
	PromptDirAlias string `toml:"prompts_dir" json:"prompts_dir"`

	// UseClipboard copies each assistant reply to the system clipboard.
	UseClipboard bool `toml:"use_clipboard" json:"use_clipboard"`

	// TokenUsageFile is the path of the cumulative token counter file.
	TokenUsageFile string `toml:"token_usage_file" json:"token_usage_file"`

	// TermWidth caps the rendered output width (0 = detect from terminal).
	TermWidth int `toml:"term_width" json:"term_width"`

	// Colors holds the display palette.
	Colors ColorConfig `toml:"colors" json:"colors"`
}

// ColorConfig contains the hex color palette for terminal output.
type ColorConfig struct {
	User      string `toml:"user" json:"user"`
	Assistant string `toml:"assistant" json:"assistant"`
	System    string `toml:"system" json:"system"`
	Error     string `toml:"error" json:"error"`
	Info      string `toml:"info" json:"info"`
}

// =============================================================================
// DEFAULT CONFIGURATION
// =============================================================================

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Model:          "gpt-4o-mini",
		ChatDir:        "",
		PromptDir:      "",
		UseClipboard:   false,
		TokenUsageFile: "",
		TermWidth:      0,

		Colors: ColorConfig{
			User:      "#00d7ff",
			Assistant: "#5fff87",
			System:    "#8a8a8a",
			Error:     "#ff5f5f",
			Info:      "#ffd75f",
		},
	}
}

// =============================================================================
// LOAD FUNCTIONS
// =============================================================================

// Load loads configuration from the default config locations.
// Tries TOML first, then JSON, and falls back to defaults. A missing
// config file is not an error; a malformed one is warned about and the
// defaults are used, so a broken config never blocks a session. An
// explicit --config path goes through LoadFromPath instead, where a
// parse failure is fatal. Environment overrides are applied last.
func Load() (*Config, error) {
	for _, pathFn := range []func() (string, error){ConfigPathTOML, ConfigPathJSON} {
		path, err := pathFn()
		if err != nil {
			continue
		}
		if _, statErr := os.Stat(path); statErr != nil {
			continue
		}
		cfg, err := LoadFromPath(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: ignoring %s: %v\n", path, err)
			break
		}
		return cfg, nil
	}

	cfg := Default()
	cfg.ApplyEnvOverrides()
	if err := fillDefaults(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFromPath loads configuration from a specific file path. A .json
// suffix selects the JSON decoder; anything else is treated as TOML.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()

	if strings.HasSuffix(path, ".json") {
		if err := loadJSON(cfg, path); err != nil {
			return nil, fmt.Errorf("failed to load JSON config from %s: %w", path, err)
		}
	} else {
		if err := loadTOML(cfg, path); err != nil {
			return nil, fmt.Errorf("failed to load TOML config from %s: %w", path, err)
		}
	}

	cfg.ApplyEnvOverrides()
	if err := fillDefaults(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadTOML(cfg *Config, path string) error {
	// Undecoded keys are deliberately ignored.
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return fmt.Errorf("failed to decode TOML file: %w", err)
	}
	return nil
}

func loadJSON(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read JSON file: %w", err)
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to decode JSON file: %w", err)
	}
	return nil
}

// fillDefaults resolves alias keys and fills in any paths the file left
// empty with their XDG defaults.
func fillDefaults(cfg *Config) error {
	if cfg.ChatDir == "" {
		cfg.ChatDir = cfg.ChatDirAlias
	}
	if cfg.PromptDir == "" {
		cfg.PromptDir = cfg.PromptDirAlias
	}
	cfg.ChatDirAlias = ""
	cfg.PromptDirAlias = ""

	dataDir, err := DataDir()
	if err != nil {
		return fmt.Errorf("failed to resolve data directory: %w", err)
	}
	if cfg.ChatDir == "" {
		cfg.ChatDir = dataDir
	}
	if cfg.PromptDir == "" {
		cfg.PromptDir = dataDir
	}
	if cfg.TokenUsageFile == "" {
		cfg.TokenUsageFile = TokenUsagePath(dataDir)
	}

	defaults := Default()
	if cfg.Model == "" {
		cfg.Model = defaults.Model
	}
	if cfg.Colors.User == "" {
		cfg.Colors.User = defaults.Colors.User
	}
	if cfg.Colors.Assistant == "" {
		cfg.Colors.Assistant = defaults.Colors.Assistant
	}
	if cfg.Colors.System == "" {
		cfg.Colors.System = defaults.Colors.System
	}
	if cfg.Colors.Error == "" {
		cfg.Colors.Error = defaults.Colors.Error
	}
	if cfg.Colors.Info == "" {
		cfg.Colors.Info = defaults.Colors.Info
	}
	return nil
}

// =============================================================================
// ENVIRONMENT OVERRIDES
// =============================================================================

// ApplyEnvOverrides applies SIMPLECHAT_* environment variables on top of
// whatever the config file set.
func (c *Config) ApplyEnvOverrides() {
	if model := os.Getenv("SIMPLECHAT_MODEL"); model != "" {
		c.Model = model
	}
	if dir := os.Getenv("SIMPLECHAT_CHAT_DIR"); dir != "" {
		c.ChatDir = dir
	}
	if dir := os.Getenv("SIMPLECHAT_PROMPT_DIR"); dir != "" {
		c.PromptDir = dir
	}
	if clip := os.Getenv("SIMPLECHAT_CLIPBOARD"); clip != "" {
		c.UseClipboard = clip == "1" || strings.ToLower(clip) == "true"
	}
	if width := os.Getenv("SIMPLECHAT_TERM_WIDTH"); width != "" {
		if n, err := strconv.Atoi(width); err == nil && n > 0 {
			c.TermWidth = n
		}
	}
}
