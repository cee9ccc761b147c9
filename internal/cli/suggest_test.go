// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"testing"
)

func TestFindSimilarCommand(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"close typo", "promt list", "prompt list"},
		{"transposed", "exti", "exit"},
		{"exact command returns nothing", "exit", ""},
		{"exact two-word command returns nothing", "chat load", ""},
		{"long input is a message", "tell me about the weather in tokyo", ""},
		{"unrelated short input still snaps to nearest", "clpi", "clip"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := findSimilarCommand(tt.input); got != tt.want {
				t.Errorf("findSimilarCommand(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestIsCommand(t *testing.T) {
	for _, cmd := range commandOrder {
		if !isCommand(cmd) {
			t.Errorf("isCommand(%q) should be true", cmd)
		}
	}
	if isCommand("prompt") {
		t.Error("bare prompt is not a complete command")
	}
	if isCommand("hello there") {
		t.Error("chat text is not a command")
	}
}

func TestCommandHelpCoversAllCommands(t *testing.T) {
	if len(commandOrder) != len(commandHelp) {
		t.Fatalf("command order (%d) and help (%d) out of sync", len(commandOrder), len(commandHelp))
	}
	for _, name := range commandOrder {
		if commandHelp[name] == "" {
			t.Errorf("command %q has no help text", name)
		}
	}
}
