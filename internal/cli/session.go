// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// session.go - Interactive chat session for the simplechat CLI.
//
// The loop reads a line, dispatches interactive commands, and sends
// everything else as a chat turn. The full conversation history goes
// with every request; a failed request keeps the typed turn in place so
// it can be resent.

package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/peterh/liner"

	"github.com/jeranaias/simplechat/internal/clipboard"
	"github.com/jeranaias/simplechat/internal/cloud"
	"github.com/jeranaias/simplechat/internal/config"
	"github.com/jeranaias/simplechat/internal/model"
	"github.com/jeranaias/simplechat/internal/store"
	"github.com/jeranaias/simplechat/internal/util"
)

// =============================================================================
// SESSION
// =============================================================================

// Session holds the state of one interactive chat session.
type Session struct {
	Config *config.Config
	Client *cloud.Client
	Store  *store.Store
	Conv   *model.Conversation
	Usage  *store.TokenUsage

	reader   *LineReader
	renderer *Renderer
	styles   *Styles
	width    int

	// sessionUsage counts only this session's tokens; Usage holds the
	// cumulative counters that persist across sessions.
	sessionUsage store.TokenUsage

	lastReply string
	quiet     bool
}

// NewSession wires a session from its parts.
func NewSession(cfg *config.Config, client *cloud.Client, st *store.Store, quiet bool) *Session {
	width := TerminalWidth(cfg.TermWidth)
	return &Session{
		Config:   cfg,
		Client:   client,
		Store:    st,
		Conv:     model.NewConversation(),
		Usage:    store.LoadTokenUsage(cfg.TokenUsageFile),
		renderer: NewRenderer(width),
		styles:   NewStyles(cfg.Colors),
		width:    width,
		quiet:    quiet,
	}
}

// LoadChat replaces the conversation with a saved chat.
func (s *Session) LoadChat(name string) error {
	conv, err := s.Store.LoadChat(name)
	if err != nil {
		return err
	}
	s.Conv = conv
	s.lastReply = conv.LastAssistantContent()
	return nil
}

// ApplyPrompt loads a saved prompt and applies it to the conversation.
func (s *Session) ApplyPrompt(name string) error {
	text, err := s.Store.LoadPrompt(name)
	if err != nil {
		return err
	}
	s.Conv.SetPrompt(text)
	return nil
}

// =============================================================================
// MAIN LOOP
// =============================================================================

// Run drives the interactive loop until exit or EOF. The returned error
// is nil for a normal exit.
func (s *Session) Run() error {
	s.reader = NewLineReader()
	defer s.reader.Close()

	if !s.quiet {
		s.printWelcome()
	}

	for {
		input, err := s.reader.ReadInput(s.styles.Prompt.Render("   >>> "))
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) {
				continue
			}
			// EOF (Ctrl+D) exits like the exit command.
			s.saveUsage()
			fmt.Println()
			return nil
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}

		if isCommand(input) {
			quit, err := s.dispatchCommand(input)
			if err != nil {
				s.printError(err)
			}
			if quit {
				return nil
			}
			continue
		}

		if suggestion := findSimilarCommand(input); suggestion != "" {
			fmt.Println(util.Center(
				fmt.Sprintf("Did you mean %s?", s.styles.Command.Render(suggestion)), s.width))
			continue
		}

		if err := s.processMessage(input); err != nil {
			s.printError(err)
		}
	}
}

// processMessage appends a user turn, requests a completion, and on
// success appends and displays the reply. On failure the user turn
// stays appended.
func (s *Session) processMessage(input string) error {
	if err := s.Conv.AppendUserTurn(input); err != nil {
		return err
	}

	resp, err := s.Client.Chat(context.Background(), s.Conv.RequestPayload())
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}

	content := resp.GetContent()
	s.Conv.AppendAssistantTurn(content)
	s.lastReply = content
	s.Usage.Add(resp.Usage.PromptTokens, resp.Usage.CompletionTokens, resp.Usage.TotalTokens)
	s.sessionUsage.Add(resp.Usage.PromptTokens, resp.Usage.CompletionTokens, resp.Usage.TotalTokens)

	fmt.Println()
	s.renderer.Display(content)
	fmt.Println()

	if s.Config.UseClipboard {
		if err := clipboard.Copy(content); err != nil && !s.quiet {
			fmt.Println(s.styles.Info.Render("   (clipboard unavailable)"))
		}
	}
	return nil
}

// saveUsage persists the cumulative token counters and prints the
// session summary. Best-effort: a failed save is reported but never
// blocks exit.
func (s *Session) saveUsage() {
	if !s.quiet && s.sessionUsage.TotalTokens > 0 {
		s.printInfo(fmt.Sprintf("Session tokens: %d prompt, %d completion, %d total",
			s.sessionUsage.PromptTokens, s.sessionUsage.CompletionTokens, s.sessionUsage.TotalTokens))
	}
	if s.Config.TokenUsageFile == "" {
		return
	}
	if err := s.Usage.Save(s.Config.TokenUsageFile); err != nil && !s.quiet {
		s.printError(err)
	}
}

// =============================================================================
// OUTPUT HELPERS
// =============================================================================

func (s *Session) printWelcome() {
	fmt.Println()
	fmt.Println(util.Center("Welcome to simplechat", s.width))
	fmt.Println(util.Center(
		fmt.Sprintf("type %s to exit, or %s for a list of commands",
			s.styles.Command.Render("exit"), s.styles.Command.Render("help")), s.width))
	fmt.Println()
}

func (s *Session) printError(err error) {
	fmt.Printf("\n   %s\n\n", s.styles.Error.Render(err.Error()))
}

func (s *Session) printInfo(msg string) {
	fmt.Printf("\n   %s\n", s.styles.Info.Render(msg))
}
