// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package cli implements the vc-tracker command-line client on top of
// github.com/google/subcommands.
//
// Every command shares an [Env] holding the [adapter.ServerAdapter], the
// on-disk [SessionFile] and the output streams. Commands that need an
// authenticated user refuse to run (and send the user back to `login`)
// when no session has been saved. A 401 answer from the server drops the
// stale session for the same reason.
//
// Amounts are rendered with github.com/Rhymond/go-money in the configured
// currency.
package cli
