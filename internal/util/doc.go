// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides small shared helpers for simplechat: atomic file
// writes and rune/width-aware text formatting for terminal output.
package util
