// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// commands.go - Interactive command handlers for the chat session.

package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jeranaias/simplechat/internal/clipboard"
	"github.com/jeranaias/simplechat/internal/model"
	"github.com/jeranaias/simplechat/internal/util"
)

// =============================================================================
// COMMAND DISPATCH
// =============================================================================

// dispatchCommand executes an interactive command. The first return is
// true when the session should end.
func (s *Session) dispatchCommand(cmd string) (bool, error) {
	switch cmd {
	case "exit":
		s.saveUsage()
		fmt.Println()
		return true, nil
	case "help":
		s.printHelp()
	case "clip":
		return false, s.cmdClip()
	case "save":
		return false, s.cmdSaveChat()
	case "prompt new":
		return false, s.cmdPromptNew()
	case "prompt list":
		return false, s.cmdPromptList()
	case "prompt load":
		return false, s.cmdPromptLoad()
	case "chat new":
		return false, s.cmdChatNew()
	case "chat list":
		return false, s.cmdChatList()
	case "chat load":
		return false, s.cmdChatLoad()
	}
	return false, nil
}

func (s *Session) printHelp() {
	nameWidth := s.width * 35 / 100
	fmt.Println()
	for _, name := range commandOrder {
		colored := s.styles.Command.Render(name)
		fmt.Printf("%s  %s\n", util.RightAlign(colored, nameWidth), commandHelp[name])
	}
	fmt.Println()
}

// =============================================================================
// CLIPBOARD
// =============================================================================

func (s *Session) cmdClip() error {
	if s.lastReply == "" {
		s.printInfo(fmt.Sprintf("Must receive a reply before you can %s",
			s.styles.Command.Render("clip")))
		return nil
	}
	if err := clipboard.Copy(s.lastReply); err != nil {
		return err
	}
	s.printInfo("Copied last reply to clipboard.")
	return nil
}

// =============================================================================
// CHAT COMMANDS
// =============================================================================

func (s *Session) cmdSaveChat() error {
	name, err := s.readLine("What would you like to name this chat?")
	if err != nil || name == "" {
		return err
	}

	names, err := s.Store.ListChats()
	if err != nil {
		return err
	}
	if contains(names, name) {
		ok, err := s.confirm("There is already a chat saved with that name. Overwrite it?")
		if err != nil {
			return err
		}
		if !ok {
			s.printInfo("Not saving chat.")
			return nil
		}
	}

	if err := s.Store.SaveChat(name, s.Conv); err != nil {
		return err
	}
	s.printInfo(fmt.Sprintf("Chat saved as %s.", s.styles.Command.Render(name)))
	return nil
}

func (s *Session) cmdChatList() error {
	names, err := s.Store.ListChats()
	if err != nil {
		return err
	}
	if len(names) == 0 {
		s.printInfo("No saved chats.")
		return nil
	}
	s.printNumbered(names)
	return nil
}

func (s *Session) cmdChatLoad() error {
	names, err := s.Store.ListChats()
	if err != nil {
		return err
	}
	if len(names) == 0 {
		s.printInfo("No saved chats.")
		return nil
	}

	if !s.Conv.IsEmpty() {
		ok, err := s.confirm("Leave current chat?")
		if err != nil {
			return err
		}
		if !ok {
			s.printInfo("Keeping current chat.")
			return nil
		}
	}

	s.printNumbered(names)
	name, err := s.selectName(names)
	if err != nil || name == "" {
		return err
	}
	if err := s.LoadChat(name); err != nil {
		return err
	}
	s.printInfo(fmt.Sprintf("Loaded chat %s.", s.styles.Command.Render(name)))
	return nil
}

func (s *Session) cmdChatNew() error {
	if !s.Conv.IsEmpty() {
		ok, err := s.confirm("Leave current chat?")
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
	}

	s.Conv = model.NewConversation()
	s.lastReply = ""

	withPrompt, err := s.confirm("Include prompt?")
	if err != nil {
		return err
	}
	if withPrompt {
		existing, err := s.confirm("Use existing prompt?")
		if err != nil {
			return err
		}
		if existing {
			if err := s.cmdPromptLoad(); err != nil {
				return err
			}
		} else {
			text, err := s.readLine("Enter your prompt:")
			if err != nil {
				return err
			}
			if text != "" {
				s.Conv.SetPrompt(text)
			}
		}
	}

	s.printInfo("Begin new chat.")
	return nil
}

// =============================================================================
// PROMPT COMMANDS
// =============================================================================

func (s *Session) cmdPromptNew() error {
	if !s.Conv.IsEmpty() {
		ok, err := s.confirm("Start new chat?")
		if err != nil {
			return err
		}
		if ok {
			s.Conv = model.NewConversation()
			s.lastReply = ""
		}
	}

	text, err := s.readLine("Enter your prompt:")
	if err != nil || text == "" {
		return err
	}

	save, err := s.confirm("Save this prompt for future use?")
	if err != nil {
		return err
	}
	if save {
		if err := s.savePromptAs(text); err != nil {
			return err
		}
	}

	s.Conv.SetPrompt(text)
	s.printInfo("Prompt applied.")
	return nil
}

func (s *Session) savePromptAs(text string) error {
	name, err := s.readLine("Prompt name:")
	if err != nil || name == "" {
		return err
	}

	names, err := s.Store.ListPrompts()
	if err != nil {
		return err
	}
	if contains(names, name) {
		ok, err := s.confirm("There is already a prompt with that name. Overwrite it?")
		if err != nil {
			return err
		}
		if !ok {
			s.printInfo("Prompt left unsaved.")
			return nil
		}
	}
	return s.Store.SavePrompt(name, text)
}

func (s *Session) cmdPromptList() error {
	names, err := s.Store.ListPrompts()
	if err != nil {
		return err
	}
	if len(names) == 0 {
		s.printInfo("No saved prompts.")
		return nil
	}
	s.printNumbered(names)
	return nil
}

func (s *Session) cmdPromptLoad() error {
	names, err := s.Store.ListPrompts()
	if err != nil {
		return err
	}
	if len(names) == 0 {
		s.printInfo("No saved prompts.")
		return nil
	}

	s.printNumbered(names)
	name, err := s.selectName(names)
	if err != nil || name == "" {
		return err
	}
	if err := s.ApplyPrompt(name); err != nil {
		return err
	}
	s.printInfo(fmt.Sprintf("Applied prompt %s.", s.styles.Command.Render(name)))
	return nil
}

// =============================================================================
// INPUT HELPERS
// =============================================================================

// readLine prints a question and reads one trimmed line.
func (s *Session) readLine(question string) (string, error) {
	s.printInfo(question)
	input, err := s.reader.ReadInput(s.styles.Prompt.Render("   >>> "))
	if err != nil {
		return "", nil
	}
	return strings.TrimSpace(input), nil
}

// confirm asks a y/n question. Anything but y/yes declines.
func (s *Session) confirm(question string) (bool, error) {
	answer, err := s.readLine(question + " y/n")
	if err != nil {
		return false, err
	}
	answer = strings.ToLower(answer)
	return answer == "y" || answer == "yes", nil
}

// selectName asks for a number into the listed names.
func (s *Session) selectName(names []string) (string, error) {
	for {
		answer, err := s.readLine("")
		if err != nil {
			return "", err
		}
		n, convErr := strconv.Atoi(answer)
		if convErr != nil || n < 1 || n > len(names) {
			s.printInfo(fmt.Sprintf("Enter a number between 1 and %d.", len(names)))
			continue
		}
		return names[n-1], nil
	}
}

func (s *Session) printNumbered(names []string) {
	fmt.Println()
	for i, name := range names {
		name = util.Truncate(name, s.width-8)
		fmt.Printf("   %2d. %s\n", i+1, s.styles.Command.Render(name))
	}
}

func contains(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}
