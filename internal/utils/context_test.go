// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"

	"github.com/MKhiriev/vc-tracker/models"
)

func TestContextKeyString(t *testing.T) {
	key := contextKey("testKey")
	if key.String() != "testKey" {
		t.Errorf("expected 'testKey', got '%s'", key.String())
	}
	if SessionCtxKey.String() != "session" {
		t.Errorf("expected 'session', got '%s'", SessionCtxKey.String())
	}
}

func TestSessionFromContext_Success(t *testing.T) {
	var session models.Session
	session.Login("alice")
	ctx := WithSession(context.Background(), session)

	got, ok := SessionFromContext(ctx)

	if !ok {
		t.Fatal("expected ok=true, got false")
	}
	if got.Username != "alice" {
		t.Errorf("expected username 'alice', got '%s'", got.Username)
	}
}

func TestSessionFromContext_Missing(t *testing.T) {
	if _, ok := SessionFromContext(context.Background()); ok {
		t.Error("expected ok=false for empty context")
	}
}

func TestSessionFromContext_LoggedOut(t *testing.T) {
	var session models.Session
	session.Login("alice")
	session.Logout()

	if _, ok := SessionFromContext(WithSession(context.Background(), session)); ok {
		t.Error("expected ok=false for a logged out session")
	}
}

func TestSessionFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), SessionCtxKey, "alice")

	if _, ok := SessionFromContext(ctx); ok {
		t.Error("expected ok=false for a value of the wrong type")
	}
}

func TestSessionFromContext_DifferentKey(t *testing.T) {
	var session models.Session
	session.Login("alice")
	ctx := context.WithValue(context.Background(), contextKey("other"), session)

	if _, ok := SessionFromContext(ctx); ok {
		t.Error("expected ok=false when the session is stored under another key")
	}
}

func TestUUIDGenerator_Generate(t *testing.T) {
	g := NewUUIDGenerator()

	first, second := g.Generate(), g.Generate()

	if len(first) != 36 {
		t.Errorf("expected canonical uuid, got %q", first)
	}
	if first == second {
		t.Error("expected two different ids")
	}
	if first[14] != '7' {
		t.Errorf("expected version 7 uuid, got %q", first)
	}
}
