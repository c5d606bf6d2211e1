// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto holds the password hashing used by authentication.
package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher produces and verifies salted, irreversible password
// digests.
type PasswordHasher interface {
	// Hash returns a digest of plaintext. The salt is random per call, so
	// hashing the same password twice yields two different digests that
	// both verify.
	Hash(plaintext string) (string, error)

	// Verify reports whether plaintext matches digest. A malformed digest
	// is a mismatch, not an error.
	Verify(plaintext, digest string) bool
}
