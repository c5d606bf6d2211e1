// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import "errors"

var (
	// ErrNotLoggedIn is returned by [SessionFile.Load] when no session has
	// been saved yet.
	ErrNotLoggedIn = errors.New("not logged in")

	errMissingArgument = errors.New("missing argument")
	errNothingToUpdate = errors.New("nothing to update: set at least one flag")
	errEmptyPassword   = errors.New("password must not be empty")
)
