// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidUsername  = errors.New("username is required")
	ErrPasswordTooShort = errors.New("password is too short")
	ErrPasswordTooLong  = errors.New("password is too long")

	ErrEmptyName           = errors.New("name is required")
	ErrInvalidPrincipal    = errors.New("principal amount must be positive")
	ErrInvalidInterestRate = errors.New("interest rate must not be negative")
	ErrEmptyStartDate      = errors.New("start date is required")
	ErrNegativeCount       = errors.New("members and months must not be negative")
	ErrNoFieldsToUpdate    = errors.New("at least one field must be provided for update")

	ErrInvalidAmount    = errors.New("payment amount must be positive")
	ErrEmptyPaymentDate = errors.New("payment date is required")
	ErrNoteTooLong      = errors.New("payment note is too long")
)
