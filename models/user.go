// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User is an account stored in the users document. The username is the key
// of the document map and is therefore not serialized inside the value.
type User struct {
	// Username is the unique, immutable login name.
	Username string `json:"-"`

	// PasswordHash is the bcrypt digest of the user's password.
	// Plaintext passwords are never stored.
	PasswordHash string `json:"password_hash"`

	// CreatedAt is the registration time.
	CreatedAt time.Time `json:"created_at,omitzero"`

	// VCRecords holds the user's records in insertion order.
	VCRecords []VCRecord `json:"vc_records"`
}

// FindRecord returns the index of the record with the given id, or -1.
func (u User) FindRecord(id string) int {
	for i, r := range u.VCRecords {
		if r.ID == id {
			return i
		}
	}
	return -1
}

// Users is the whole users document: username -> user.
type Users map[string]User

// Credentials carries a username and a plaintext password for registration
// and login. It only exists in transit and is never persisted.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
