// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"

	"github.com/MKhiriev/vc-tracker/internal/config"
	"github.com/MKhiriev/vc-tracker/internal/logger"
)

var errNoUsersFileConfigured = errors.New("no users file configured")

// Storages groups the persistence components handed to the service layer.
type Storages struct {
	UserStore UserStore
}

// NewStorages builds the storages described by cfg.
func NewStorages(cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	if cfg.UsersFile == "" {
		return nil, errNoUsersFileConfigured
	}

	return &Storages{
		UserStore: NewFileUserStore(cfg.UsersFile, logger),
	}, nil
}
