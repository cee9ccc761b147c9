// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderer_FallbackWithoutMarkdown(t *testing.T) {
	r := &Renderer{markdown: nil}
	assert.Equal(t, "# heading", r.Render("# heading"),
		"content must pass through unchanged when no renderer is available")
}

func TestNewRenderer(t *testing.T) {
	r := NewRenderer(80)
	require.NotNil(t, r)

	// Whatever glamour does with the text, the renderer must never
	// swallow it entirely.
	out := r.Render("plain text")
	assert.NotEmpty(t, out)
}

func TestContains(t *testing.T) {
	names := []string{"alpha", "beta"}
	assert.True(t, contains(names, "alpha"))
	assert.False(t, contains(names, "gamma"))
	assert.False(t, contains(nil, "alpha"))
}
