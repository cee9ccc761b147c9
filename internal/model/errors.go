// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"errors"
	"fmt"
)

// Error variables for conversation operations.
var (
	// ErrNotFound indicates the referenced chat or prompt file does not
	// exist.
	ErrNotFound = errors.New("file not found")

	// ErrEmptyInput indicates a user turn was empty after trimming
	// whitespace. The turn is rejected before any API call is made.
	ErrEmptyInput = errors.New("empty input")
)

// MalformedChatError indicates a chat file could not be parsed into an
// ordered list of well-formed role/content pairs. A failed load never
// partially populates a conversation.
type MalformedChatError struct {
	Path   string
	Reason string
}

// Error implements the error interface.
func (e *MalformedChatError) Error() string {
	return fmt.Sprintf("malformed chat file %s: %s", e.Path, e.Reason)
}
