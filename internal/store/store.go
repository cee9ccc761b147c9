// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package store persists named chats and prompts to disk.
//
// A chat is a JSON array of role/content messages in a .chat file; a
// prompt is the plain text of a system prompt in a .prompt file. Names
// are bare identifiers; the store maps them to paths inside the
// configured directories.
package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/jeranaias/simplechat/internal/model"
	"github.com/jeranaias/simplechat/internal/util"
)

const (
	// ChatExt is the file extension for saved chats.
	ChatExt = ".chat"
	// PromptExt is the file extension for saved prompts.
	PromptExt = ".prompt"
)

// Store resolves chat and prompt names against their directories.
type Store struct {
	chatDir   string
	promptDir string
}

// New creates a store over the given chat and prompt directories.
func New(chatDir, promptDir string) *Store {
	return &Store{chatDir: chatDir, promptDir: promptDir}
}

// ChatPath returns the file path for a chat. Bare names resolve inside
// the chat directory; anything carrying a path separator or the .chat
// extension is used as a literal path.
func (s *Store) ChatPath(name string) string {
	if strings.ContainsRune(name, os.PathSeparator) || strings.HasSuffix(name, ChatExt) {
		return name
	}
	return filepath.Join(s.chatDir, name+ChatExt)
}

// PromptPath returns the file path for a prompt, with the same literal
// path escape hatch as ChatPath.
func (s *Store) PromptPath(name string) string {
	if strings.ContainsRune(name, os.PathSeparator) || strings.HasSuffix(name, PromptExt) {
		return name
	}
	return filepath.Join(s.promptDir, name+PromptExt)
}

// =============================================================================
// CHATS
// =============================================================================

// SaveChat writes the full conversation to the named chat file,
// replacing any prior content.
func (s *Store) SaveChat(name string, conv *model.Conversation) error {
	return conv.Save(s.ChatPath(name))
}

// LoadChat reads the named chat file into a conversation.
func (s *Store) LoadChat(name string) (*model.Conversation, error) {
	return model.Load(s.ChatPath(name))
}

// ListChats returns the names of saved chats, sorted.
func (s *Store) ListChats() ([]string, error) {
	return listNames(s.chatDir, ChatExt)
}

// =============================================================================
// PROMPTS
// =============================================================================

// SavePrompt writes the prompt text to the named prompt file. A single
// trailing newline is appended so the file is friendly to text tools.
func (s *Store) SavePrompt(name, text string) error {
	data := []byte(text)
	if !strings.HasSuffix(text, "\n") {
		data = append(data, '\n')
	}
	if err := util.AtomicWriteFile(s.PromptPath(name), data, 0600); err != nil {
		return fmt.Errorf("failed to write prompt file: %w", err)
	}
	return nil
}

// LoadPrompt reads the named prompt file. Exactly one trailing newline
// is trimmed, so editor-saved files round-trip to the text the user
// wrote; interior newlines and any further trailing ones are kept.
func (s *Store) LoadPrompt(name string) (string, error) {
	path := s.PromptPath(name)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", model.ErrNotFound, path)
		}
		return "", fmt.Errorf("failed to read prompt file: %w", err)
	}
	text := string(data)
	text = strings.TrimSuffix(text, "\n")
	return text, nil
}

// ListPrompts returns the names of saved prompts, sorted.
func (s *Store) ListPrompts() ([]string, error) {
	return listNames(s.promptDir, PromptExt)
}

// =============================================================================
// LISTING
// =============================================================================

// listNames returns the extension-stripped file names in dir, sorted. A
// missing directory is treated as empty.
func listNames(dir, ext string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasSuffix(name, ext) {
			names = append(names, strings.TrimSuffix(name, ext))
		}
	}
	sort.Strings(names)
	return names, nil
}
