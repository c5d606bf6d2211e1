// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a session JWT.
//
// The "sub" claim carries the username of the authenticated user.
type Token struct {
	// Token is the underlying JWT used for signing and claim inspection.
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	// SignedString is the compact header.payload.signature form sent in the
	// Authorization header.
	SignedString string `json:"-"`

	// Username is the parsed subject claim.
	Username string `json:"-"`
}

// GetUsername extracts the username from the subject claim.
func (t *Token) GetUsername() (string, error) {
	username, err := t.GetSubject()
	if err != nil {
		return "", fmt.Errorf("error extracting username from token: %w", err)
	}
	if username == "" {
		return "", fmt.Errorf("empty subject in token")
	}

	return username, nil
}

// String returns the compact serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}
