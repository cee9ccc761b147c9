// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli implements the simplechat command line: argument parsing,
// the interactive chat loop, and terminal output.
package cli

import (
	"fmt"
	"os"
)

// Version is the simplechat release version.
const Version = "1.0.0"

// =============================================================================
// ARGUMENT PARSING
// =============================================================================

// Args holds the parsed command line arguments.
type Args struct {
	// KeyFile is the path to an API key file (--key).
	KeyFile string
	// ChatName is a chat to load at startup (--chat).
	ChatName string
	// PromptName is a prompt to apply at startup (--prompt).
	PromptName string
	// ConfigPath overrides the default config file location (--config).
	ConfigPath string

	// Quiet suppresses the welcome banner and informational output.
	Quiet bool
	// ShowVersion prints the version and exits.
	ShowVersion bool
	// ShowHelp prints usage and exits.
	ShowHelp bool
}

const usageText = `simplechat - a terminal chat client for OpenAI-compatible APIs

Usage:
  simplechat [flags]

Flags:
  -k, --key FILE      Read the API key from FILE
  -c, --chat NAME     Load the saved chat NAME at startup
  -p, --prompt NAME   Apply the saved prompt NAME at startup
  -f, --config FILE   Use FILE instead of the default config
  -q, --quiet         Suppress the welcome banner
      --version       Print version and exit
  -h, --help          Show this help

Interactive commands (during chat):
  exit                Exit simplechat
  help                Show the command list
  clip                Copy the last reply to the clipboard
  save                Save the current chat under a name
  prompt new          Write a new system prompt and apply it
  prompt list         List saved prompts
  prompt load         Load a saved prompt
  chat new            Begin a new chat
  chat list           List saved chats
  chat load           Load a saved chat

The API key is resolved from --key, then the OPENAI_API_KEY environment
variable, then the api_key_file config setting.
`

// ParseArgs parses the command line arguments (without the program name).
func ParseArgs(args []string) (Args, error) {
	var parsed Args

	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch arg {
		case "-k", "--key":
			if i+1 >= len(args) {
				return parsed, fmt.Errorf("%s requires a file path", arg)
			}
			i++
			parsed.KeyFile = args[i]
		case "-c", "--chat":
			if i+1 >= len(args) {
				return parsed, fmt.Errorf("%s requires a chat name", arg)
			}
			i++
			parsed.ChatName = args[i]
		case "-p", "--prompt":
			if i+1 >= len(args) {
				return parsed, fmt.Errorf("%s requires a prompt name", arg)
			}
			i++
			parsed.PromptName = args[i]
		case "-f", "--config":
			if i+1 >= len(args) {
				return parsed, fmt.Errorf("%s requires a file path", arg)
			}
			i++
			parsed.ConfigPath = args[i]
		case "-q", "--quiet":
			parsed.Quiet = true
		case "--version":
			parsed.ShowVersion = true
		case "-h", "--help":
			parsed.ShowHelp = true
		default:
			return parsed, fmt.Errorf("unknown flag: %s", arg)
		}
	}

	return parsed, nil
}

// PrintUsage writes the usage text to stdout.
func PrintUsage() {
	fmt.Fprint(os.Stdout, usageText)
}

// PrintVersion writes the version line to stdout.
func PrintVersion() {
	fmt.Printf("simplechat %s\n", Version)
}
