// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// vc-tracker server handlers.
//
// The Msg* constants are the fixed response bodies written in place of
// internal error details, so that clients never see storage paths or
// low-level failures.
package app

const (
	// MsgStorageUnavailable is returned when the users document could not be
	// read or written. The request may succeed if retried.
	MsgStorageUnavailable = "storage unavailable, retry"

	// MsgInternalServerError is returned for any other server-side failure.
	MsgInternalServerError = "internal server error"
)
