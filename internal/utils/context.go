// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, HTTP response writing,
// HTTP client initialization, JWT token generation and validation,
// and id generation.
package utils

import (
	"context"

	"github.com/MKhiriev/vc-tracker/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// SessionCtxKey is the key used to store the authenticated [models.Session]
// of a request in the context.
var SessionCtxKey = contextKey("session")

// WithSession returns a copy of ctx carrying session.
func WithSession(ctx context.Context, session models.Session) context.Context {
	return context.WithValue(ctx, SessionCtxKey, session)
}

// SessionFromContext retrieves the session stored by [WithSession].
//
// ok is false when no session is stored or the stored session has no
// authenticated user.
//
// Example usage:
//
//	session, ok := utils.SessionFromContext(ctx)
//	if !ok {
//	    // route the caller back to login
//	}
func SessionFromContext(ctx context.Context) (models.Session, bool) {
	session, ok := ctx.Value(SessionCtxKey).(models.Session)
	if !ok {
		return models.Session{}, false
	}
	if _, authenticated := session.CurrentUser(); !authenticated {
		return models.Session{}, false
	}
	return session, true
}
