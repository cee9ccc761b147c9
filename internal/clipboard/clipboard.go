// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package clipboard copies assistant replies to the system clipboard.
//
// Clipboard access is a convenience: failures (headless session, no
// clipboard utility installed) are reported to the caller but must
// never abort a chat turn.
package clipboard

import (
	"fmt"

	"github.com/atotto/clipboard"
)

// Copy places text on the system clipboard.
func Copy(text string) error {
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("failed to copy to clipboard: %w", err)
	}
	return nil
}

// Available reports whether a clipboard is usable in this environment.
func Available() bool {
	return !clipboard.Unsupported
}
