// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/simplechat/internal/config"
)

// =============================================================================
// STYLES
// =============================================================================

// Styles holds the lipgloss styles built from the configured palette.
type Styles struct {
	Prompt    lipgloss.Style
	User      lipgloss.Style
	Assistant lipgloss.Style
	System    lipgloss.Style
	Command   lipgloss.Style
	Info      lipgloss.Style
	Error     lipgloss.Style
}

// NewStyles builds the style set from the color config. When colors are
// disabled the styles render as plain text.
func NewStyles(colors config.ColorConfig) *Styles {
	if !ColorsEnabled() {
		plain := lipgloss.NewStyle()
		return &Styles{
			Prompt:    plain,
			User:      plain,
			Assistant: plain,
			System:    plain,
			Command:   plain,
			Info:      plain,
			Error:     plain,
		}
	}

	return &Styles{
		Prompt: lipgloss.NewStyle().
			Foreground(lipgloss.Color(colors.Info)).
			Bold(true),
		User: lipgloss.NewStyle().
			Foreground(lipgloss.Color(colors.User)),
		Assistant: lipgloss.NewStyle().
			Foreground(lipgloss.Color(colors.Assistant)),
		System: lipgloss.NewStyle().
			Foreground(lipgloss.Color(colors.System)),
		Command: lipgloss.NewStyle().
			Foreground(lipgloss.Color(colors.Assistant)).
			Bold(true),
		Info: lipgloss.NewStyle().
			Foreground(lipgloss.Color(colors.Info)),
		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color(colors.Error)).
			Bold(true),
	}
}
