// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/vc-tracker/models"
)

const (
	FieldUsername = "username"
	FieldPassword = "password"
)

// Password length bounds, in bytes. bcrypt rejects anything longer than
// MaxPasswordLength.
const (
	MinPasswordLength = 6
	MaxPasswordLength = 72
)

// CredentialsValidator validates [models.Credentials] for registration and
// login.
type CredentialsValidator struct{}

// NewCredentialsValidator constructs a CredentialsValidator and returns it as
// the Validator interface.
func NewCredentialsValidator() Validator {
	return &CredentialsValidator{}
}

// Validate accepts models.Credentials and *models.Credentials. With no
// fields both the username and the password are checked.
func (v *CredentialsValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Credentials:
		return v.validateCredentials(ctx, value, fields...)
	case *models.Credentials:
		return v.validateCredentials(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *CredentialsValidator) validateCredentials(_ context.Context, c models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if strings.TrimSpace(c.Username) == "" {
				return ErrInvalidUsername
			}
		case FieldPassword:
			if len(c.Password) < MinPasswordLength {
				return fmt.Errorf("%w: want at least %d characters", ErrPasswordTooShort, MinPasswordLength)
			}
			if len(c.Password) > MaxPasswordLength {
				return fmt.Errorf("%w: want at most %d bytes", ErrPasswordTooLong, MaxPasswordLength)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
