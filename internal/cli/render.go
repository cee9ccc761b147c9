// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"

	"github.com/charmbracelet/glamour"
)

// =============================================================================
// MARKDOWN RENDERING
// =============================================================================

// Renderer renders assistant replies for terminal display.
type Renderer struct {
	markdown *glamour.TermRenderer
}

// NewRenderer creates a renderer wrapping output at width columns.
// If glamour initialization fails the renderer falls back to plain text.
func NewRenderer(width int) *Renderer {
	md, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		md = nil
	}
	return &Renderer{markdown: md}
}

// Render renders markdown content for terminal display. Returns the
// original content if rendering is unavailable or fails.
func (r *Renderer) Render(content string) string {
	if r.markdown == nil {
		return content
	}
	rendered, err := r.markdown.Render(content)
	if err != nil {
		return content
	}
	return rendered
}

// Display prints a reply, rendering markdown only when stdout is a TTY
// so piped output stays clean.
func (r *Renderer) Display(content string) {
	if IsStdoutTTY() {
		fmt.Print(r.Render(content))
	} else {
		fmt.Println(content)
	}
}
