// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	// ErrDuplicateUser is returned by registration when the username is taken.
	ErrDuplicateUser = errors.New("user already exists")

	// ErrInvalidCredentials is returned by login both for an unknown username
	// and for a wrong password.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrNotFound is returned when a user, record or payment does not exist
	// for the given user.
	ErrNotFound = errors.New("not found")

	// ErrInvalidDataProvided wraps every input validation failure.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
