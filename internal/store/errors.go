// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// ErrStorage is wrapped by every failure to read, decode, validate or write
// the users document. Callers match it with [errors.Is]; the wrapped detail
// is for logs only.
var ErrStorage = errors.New("storage error")

// Shape errors found while validating a decoded document. They are always
// returned wrapped together with [ErrStorage].
var (
	errEmptyUsername        = errors.New("empty username")
	errEmptyPasswordHash    = errors.New("empty password_hash")
	errEmptyRecordID        = errors.New("record without id")
	errDuplicateRecordID    = errors.New("duplicate record id")
	errEmptyRecordName      = errors.New("record without name")
	errEmptyRecordStartDate = errors.New("record without start_date")
	errEmptyPaymentID       = errors.New("payment without id")
	errDuplicatePaymentID   = errors.New("duplicate payment id")
	errEmptyPaymentDate     = errors.New("payment without date")
)
