// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/vc-tracker/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/user_store_mock.go -package=mock

// UserStore persists the whole users document.
//
// Every caller follows the load-mutate-save pattern: there is no cache, so
// two concurrent writers of the same document resolve as last writer wins.
type UserStore interface {
	// Load reads the document. A missing document is an empty [models.Users].
	Load(ctx context.Context) (models.Users, error)

	// Save overwrites the document with users.
	Save(ctx context.Context, users models.Users) error
}
