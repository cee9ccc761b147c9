// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// =============================================================================
// PROMPT HANDLING
// =============================================================================

func TestSetPrompt_InsertsAtIndexZero(t *testing.T) {
	conv := NewConversation()
	if err := conv.AppendUserTurn("Hi"); err != nil {
		t.Fatalf("AppendUserTurn failed: %v", err)
	}

	conv.SetPrompt("You are terse.")

	msgs := conv.Messages()
	if len(msgs) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(msgs))
	}
	if msgs[0].Role != RoleSystem || msgs[0].Content != "You are terse." {
		t.Errorf("expected system prompt at index 0, got %+v", msgs[0])
	}
	if msgs[1].Role != RoleUser {
		t.Errorf("expected user message at index 1, got %+v", msgs[1])
	}
}

func TestSetPrompt_ReplacesExisting(t *testing.T) {
	conv := NewConversation()
	conv.SetPrompt("first")
	conv.SetPrompt("second")

	msgs := conv.Messages()
	if len(msgs) != 1 {
		t.Fatalf("expected 1 message, got %d", len(msgs))
	}
	if msgs[0].Content != "second" {
		t.Errorf("expected replaced prompt, got %q", msgs[0].Content)
	}
}

func TestSetPrompt_Idempotent(t *testing.T) {
	conv := NewConversation()
	conv.SetPrompt("You are terse.")
	if err := conv.AppendUserTurn("Hi"); err != nil {
		t.Fatalf("AppendUserTurn failed: %v", err)
	}

	before := conv.RequestPayload()
	conv.SetPrompt("You are terse.")
	after := conv.RequestPayload()

	if len(before) != len(after) {
		t.Fatalf("message count changed: %d -> %d", len(before), len(after))
	}
	for i := range before {
		if before[i] != after[i] {
			t.Errorf("message %d changed: %+v -> %+v", i, before[i], after[i])
		}
	}
}

func TestPrompt_ReportsSystemMessage(t *testing.T) {
	conv := NewConversation()
	if _, ok := conv.Prompt(); ok {
		t.Error("empty conversation should report no prompt")
	}

	conv.SetPrompt("helper")
	text, ok := conv.Prompt()
	if !ok || text != "helper" {
		t.Errorf("expected prompt %q, got %q (ok=%v)", "helper", text, ok)
	}
}

// =============================================================================
// TURN APPENDING
// =============================================================================

func TestAppendUserTurn_RejectsEmptyInput(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty string", ""},
		{"spaces", "   "},
		{"tabs and newlines", "\t\n  \n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conv := NewConversation()
			conv.SetPrompt("You are terse.")
			before := conv.Len()

			err := conv.AppendUserTurn(tt.input)
			if !errors.Is(err, ErrEmptyInput) {
				t.Errorf("expected ErrEmptyInput, got %v", err)
			}
			if conv.Len() != before {
				t.Errorf("conversation changed on rejected input: %d -> %d", before, conv.Len())
			}
		})
	}
}

func TestAppendUserTurn_PreservesInteriorWhitespace(t *testing.T) {
	conv := NewConversation()
	if err := conv.AppendUserTurn("  keep  this  "); err != nil {
		t.Fatalf("AppendUserTurn failed: %v", err)
	}
	if got := conv.Messages()[0].Content; got != "  keep  this  " {
		t.Errorf("content was altered: %q", got)
	}
}

func TestFailedRequestKeepsUserTurn(t *testing.T) {
	// A failed completion request appends no assistant turn; the
	// conversation still ends with the user message so the exchange can
	// be retried by the user.
	conv := NewConversation()
	conv.SetPrompt("You are terse.")
	if err := conv.AppendUserTurn("Hi"); err != nil {
		t.Fatalf("AppendUserTurn failed: %v", err)
	}

	msgs := conv.Messages()
	if msgs[len(msgs)-1].Role != RoleUser {
		t.Errorf("expected conversation to end in user turn, got %+v", msgs[len(msgs)-1])
	}

	conv.AppendAssistantTurn("Hello.")
	msgs = conv.Messages()
	if msgs[len(msgs)-1].Role != RoleAssistant {
		t.Errorf("expected assistant turn after success, got %+v", msgs[len(msgs)-1])
	}
}

func TestRequestPayload_IsFullOrderedHistory(t *testing.T) {
	conv := NewConversation()
	conv.SetPrompt("You are terse.")
	if err := conv.AppendUserTurn("Hi"); err != nil {
		t.Fatalf("AppendUserTurn failed: %v", err)
	}
	conv.AppendAssistantTurn("Hello.")
	if err := conv.AppendUserTurn("Bye"); err != nil {
		t.Fatalf("AppendUserTurn failed: %v", err)
	}

	payload := conv.RequestPayload()
	want := []Message{
		{Role: RoleSystem, Content: "You are terse."},
		{Role: RoleUser, Content: "Hi"},
		{Role: RoleAssistant, Content: "Hello."},
		{Role: RoleUser, Content: "Bye"},
	}
	if len(payload) != len(want) {
		t.Fatalf("expected %d messages, got %d", len(want), len(payload))
	}
	for i := range want {
		if payload[i] != want[i] {
			t.Errorf("message %d: expected %+v, got %+v", i, want[i], payload[i])
		}
	}

	// Mutating the payload must not touch the conversation.
	payload[0].Content = "tampered"
	if conv.Messages()[0].Content != "You are terse." {
		t.Error("RequestPayload returned a view into internal state")
	}
}

// =============================================================================
// PERSISTENCE
// =============================================================================

func TestSaveLoad_RoundTrip(t *testing.T) {
	conv := NewConversation()
	conv.SetPrompt("You are terse.")
	if err := conv.AppendUserTurn("Hi"); err != nil {
		t.Fatalf("AppendUserTurn failed: %v", err)
	}
	conv.AppendAssistantTurn("Hello.")

	path := filepath.Join(t.TempDir(), "session.chat")
	if err := conv.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !conv.Equal(loaded) {
		t.Errorf("round trip lost data:\nsaved:  %+v\nloaded: %+v", conv.Messages(), loaded.Messages())
	}
}

func TestLoad_AppendTurns_Save(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.chat")
	seed := `[
  {"role": "system", "content": "A"},
  {"role": "user", "content": "B"}
]`
	if err := os.WriteFile(path, []byte(seed), 0600); err != nil {
		t.Fatalf("seed write failed: %v", err)
	}

	conv, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	conv.AppendAssistantTurn("C")
	if err := conv.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	reloaded, err := Load(path)
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	want := []Message{
		{Role: RoleSystem, Content: "A"},
		{Role: RoleUser, Content: "B"},
		{Role: RoleAssistant, Content: "C"},
	}
	got := reloaded.Messages()
	if len(got) != len(want) {
		t.Fatalf("expected %d messages, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("message %d: expected %+v, got %+v", i, want[i], got[i])
		}
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.chat"))
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestLoad_MalformedFiles(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"not json", "hello world"},
		{"json object not array", `{"role": "user", "content": "hi"}`},
		{"unknown role", `[{"role": "narrator", "content": "Once upon a time"}]`},
		{"system not at index zero", `[{"role": "user", "content": "hi"}, {"role": "system", "content": "late"}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "bad.chat")
			if err := os.WriteFile(path, []byte(tt.content), 0600); err != nil {
				t.Fatalf("seed write failed: %v", err)
			}

			conv, err := Load(path)
			var malformed *MalformedChatError
			if !errors.As(err, &malformed) {
				t.Errorf("expected MalformedChatError, got %v", err)
			}
			if conv != nil {
				t.Error("malformed load must not return partial conversation state")
			}
		})
	}
}

func TestLoad_EmptyArray(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.chat")
	if err := os.WriteFile(path, []byte("[]"), 0600); err != nil {
		t.Fatalf("seed write failed: %v", err)
	}

	conv, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !conv.IsEmpty() {
		t.Errorf("expected empty conversation, got %d messages", conv.Len())
	}
}

func TestLastAssistantContent(t *testing.T) {
	conv := NewConversation()
	if got := conv.LastAssistantContent(); got != "" {
		t.Errorf("expected empty, got %q", got)
	}

	conv.SetPrompt("You are terse.")
	if err := conv.AppendUserTurn("Hi"); err != nil {
		t.Fatalf("AppendUserTurn failed: %v", err)
	}
	conv.AppendAssistantTurn("Hello.")
	conv.AppendAssistantTurn("Still here.")
	if got := conv.LastAssistantContent(); got != "Still here." {
		t.Errorf("expected latest assistant content, got %q", got)
	}
}
