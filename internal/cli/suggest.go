// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"github.com/jeranaias/simplechat/internal/util"
)

// =============================================================================
// COMMAND SUGGESTION
// =============================================================================

// commandHelp maps each interactive command to its help text, in display
// order.
var commandOrder = []string{
	"exit",
	"help",
	"clip",
	"save",
	"prompt new",
	"prompt list",
	"prompt load",
	"chat new",
	"chat list",
	"chat load",
}

var commandHelp = map[string]string{
	"exit":        "exit simplechat",
	"help":        "display the message you are currently reading",
	"clip":        "copy the last reply to the system clipboard",
	"save":        "save the current chat history under a name",
	"prompt new":  "write a new system prompt and begin using it",
	"prompt list": "list the saved prompts in your prompt directory",
	"prompt load": "load a saved prompt from your prompt directory",
	"chat new":    "begin a new chat",
	"chat list":   "list the saved chats in your chat directory",
	"chat load":   "load a saved chat from your chat directory",
}

const (
	// suggestDistCutoff is the maximum edit distance for a "did you
	// mean" suggestion.
	suggestDistCutoff = 6

	// suggestLengthCutoff skips suggestion for input long enough that it
	// is clearly a chat message rather than a mistyped command.
	suggestLengthCutoff = 18
)

// findSimilarCommand returns the command name closest to the input, or
// "" when the input is an exact command, too long, or too far from
// every command to be a plausible typo.
func findSimilarCommand(input string) string {
	if len(input) >= suggestLengthCutoff {
		return ""
	}

	best := ""
	bestDist := suggestDistCutoff
	for _, name := range commandOrder {
		dist := util.Levenshtein(input, name)
		if dist < bestDist {
			best = name
			bestDist = dist
		}
	}
	if bestDist == 0 {
		return ""
	}
	return best
}

// isCommand reports whether the input is exactly one of the interactive
// commands.
func isCommand(input string) bool {
	_, ok := commandHelp[input]
	return ok
}
