// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package store

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jeranaias/simplechat/internal/util"
)

// =============================================================================
// TOKEN USAGE ACCOUNTING
// =============================================================================

// TokenUsage tracks cumulative token counts across all sessions.
//
// Accounting is best-effort: a missing or unreadable usage file starts
// the counters at zero rather than blocking a chat session.
type TokenUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// LoadTokenUsage reads the cumulative counters from path. Missing or
// malformed files yield zeroed counters and no error.
func LoadTokenUsage(path string) *TokenUsage {
	usage := &TokenUsage{}
	data, err := os.ReadFile(path)
	if err != nil {
		return usage
	}
	if err := json.Unmarshal(data, usage); err != nil {
		return &TokenUsage{}
	}
	return usage
}

// Add accumulates one request's token counts.
func (u *TokenUsage) Add(prompt, completion, total int) {
	u.PromptTokens += prompt
	u.CompletionTokens += completion
	u.TotalTokens += total
}

// Save writes the counters back to path atomically.
func (u *TokenUsage) Save(path string) error {
	data, err := json.MarshalIndent(u, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode token usage: %w", err)
	}
	data = append(data, '\n')
	if err := util.AtomicWriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write token usage file: %w", err)
	}
	return nil
}
