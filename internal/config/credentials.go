// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// =============================================================================
// CREDENTIAL RESOLUTION
// =============================================================================

// ErrCredentialMissing indicates no API key could be resolved from any
// source. Startup treats this as fatal before any session begins.
var ErrCredentialMissing = errors.New("no API key found: pass --key, set OPENAI_API_KEY, or configure api_key_file")

// ResolveAPIKey resolves the API key, checking sources in order:
//
//  1. keyFile, the path given with --key
//  2. the OPENAI_API_KEY environment variable
//  3. the api_key_file path from the config
//
// Key files hold the bare key, surrounding whitespace ignored. The key
// is never logged and never written anywhere by this program.
func (c *Config) ResolveAPIKey(keyFile string) (string, error) {
	if keyFile != "" {
		return readKeyFile(keyFile)
	}

	if key := strings.TrimSpace(os.Getenv("OPENAI_API_KEY")); key != "" {
		return key, nil
	}

	if c.APIKeyFile != "" {
		return readKeyFile(c.APIKeyFile)
	}

	return "", ErrCredentialMissing
}

func readKeyFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read API key file %s: %w", path, err)
	}
	key := strings.TrimSpace(string(data))
	if key == "" {
		return "", fmt.Errorf("API key file %s is empty", path)
	}
	return key, nil
}
