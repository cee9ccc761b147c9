// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/jeranaias/simplechat/internal/util"
)

// =============================================================================
// CONVERSATION TYPE
// =============================================================================

// Conversation holds the ordered turn history for one chat session.
//
// Invariant: at most one system message exists, and it sits at index 0.
// Messages are only ever appended (or the system prompt replaced in
// place); nothing is edited or removed mid-session.
type Conversation struct {
	messages []Message
}

// NewConversation creates an empty conversation.
func NewConversation() *Conversation {
	return &Conversation{messages: make([]Message, 0)}
}

// =============================================================================
// MESSAGE MANAGEMENT
// =============================================================================

// SetPrompt replaces the system message at index 0 with the given text,
// inserting one if the conversation has none. Calling it again with the
// same text leaves the conversation unchanged.
func (c *Conversation) SetPrompt(text string) {
	if len(c.messages) > 0 && c.messages[0].Role == RoleSystem {
		c.messages[0] = NewSystemMessage(text)
		return
	}
	c.messages = append([]Message{NewSystemMessage(text)}, c.messages...)
}

// Prompt returns the current system prompt text and whether one is set.
func (c *Conversation) Prompt() (string, bool) {
	if len(c.messages) > 0 && c.messages[0].Role == RoleSystem {
		return c.messages[0].Content, true
	}
	return "", false
}

// AppendUserTurn appends a user message. Input that is empty after
// trimming surrounding whitespace is rejected with ErrEmptyInput and the
// conversation is left untouched, so no blank turn ever reaches the API
// or the chat file.
func (c *Conversation) AppendUserTurn(text string) error {
	if strings.TrimSpace(text) == "" {
		return ErrEmptyInput
	}
	c.messages = append(c.messages, NewUserMessage(text))
	return nil
}

// AppendAssistantTurn appends an assistant message. Callers only do this
// after a completion request succeeded; a failed request leaves the
// conversation ending in the user turn so it can be resubmitted.
func (c *Conversation) AppendAssistantTurn(text string) {
	c.messages = append(c.messages, NewAssistantMessage(text))
}

// Messages returns the ordered turn history.
func (c *Conversation) Messages() []Message {
	return c.messages
}

// RequestPayload produces the ordered role/content pairs to send to the
// completion endpoint: the full history, in storage order, with no
// truncation or windowing. Resending everything each turn is the
// intended simplicity/cost tradeoff.
func (c *Conversation) RequestPayload() []Message {
	payload := make([]Message, len(c.messages))
	copy(payload, c.messages)
	return payload
}

// LastAssistantContent returns the content of the most recent assistant
// message, or "" if there is none.
func (c *Conversation) LastAssistantContent() string {
	for i := len(c.messages) - 1; i >= 0; i-- {
		if c.messages[i].Role == RoleAssistant {
			return c.messages[i].Content
		}
	}
	return ""
}

// Len returns the number of messages.
func (c *Conversation) Len() int {
	return len(c.messages)
}

// IsEmpty returns true if there are no messages.
func (c *Conversation) IsEmpty() bool {
	return len(c.messages) == 0
}

// Equal reports whether two conversations hold the same ordered turns.
func (c *Conversation) Equal(other *Conversation) bool {
	if len(c.messages) != len(other.messages) {
		return false
	}
	for i, msg := range c.messages {
		if msg != other.messages[i] {
			return false
		}
	}
	return true
}

// =============================================================================
// PERSISTENCE
// =============================================================================

// Load parses a chat file into a conversation. The file must contain a
// JSON array of objects with exactly the fields role and content, in
// conversation order. A missing file yields ErrNotFound; any structural
// problem or unrecognized role yields MalformedChatError and no
// conversation state.
func Load(path string) (*Conversation, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("failed to read chat file: %w", err)
	}

	var messages []Message
	if err := json.Unmarshal(data, &messages); err != nil {
		return nil, &MalformedChatError{Path: path, Reason: err.Error()}
	}

	for i, msg := range messages {
		if !msg.Role.Valid() {
			return nil, &MalformedChatError{
				Path:   path,
				Reason: fmt.Sprintf("message %d has unknown role %q", i, msg.Role),
			}
		}
		if msg.Role == RoleSystem && i != 0 {
			return nil, &MalformedChatError{
				Path:   path,
				Reason: fmt.Sprintf("system message at index %d, only index 0 is allowed", i),
			}
		}
	}

	if messages == nil {
		messages = make([]Message, 0)
	}
	return &Conversation{messages: messages}, nil
}

// Save serializes the full conversation to the chat file, replacing any
// prior content. The write is atomic (temp file + rename) so an
// interrupted save never corrupts an existing chat.
func (c *Conversation) Save(path string) error {
	data, err := json.MarshalIndent(c.messages, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode conversation: %w", err)
	}
	data = append(data, '\n')

	if err := util.AtomicWriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write chat file: %w", err)
	}
	return nil
}
