// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/MKhiriev/vc-tracker/internal/logger"
	"github.com/MKhiriev/vc-tracker/models"
)

const (
	documentFileMode = 0o600
	documentDirMode  = 0o750
)

// fileUserStore is the JSON file implementation of [UserStore].
//
// The mutex only keeps a reader of this process from observing a file that
// another goroutine of the same process is in the middle of writing. It does
// not turn load-mutate-save into a transaction.
type fileUserStore struct {
	path string

	mu sync.RWMutex

	logger *logger.Logger
}

// NewFileUserStore returns a [UserStore] backed by the JSON document at
// path. The file does not need to exist yet.
func NewFileUserStore(path string, logger *logger.Logger) UserStore {
	logger.Debug().Str("path", path).Msg("creating file user store")
	return &fileUserStore{
		path:   path,
		logger: logger,
	}
}

// Load implements [UserStore].
func (s *fileUserStore) Load(ctx context.Context) (models.Users, error) {
	log := logger.FromContext(ctx)

	s.mu.RLock()
	data, err := os.ReadFile(s.path)
	s.mu.RUnlock()

	if errors.Is(err, fs.ErrNotExist) {
		log.Debug().Str("path", s.path).Msg("users document does not exist yet")
		return models.Users{}, nil
	}
	if err != nil {
		log.Err(err).Str("path", s.path).Msg("error reading users document")
		return nil, fmt.Errorf("%w: reading %s: %w", ErrStorage, s.path, err)
	}

	users, err := decodeDocument(data)
	if err != nil {
		log.Err(err).Str("path", s.path).Msg("users document is corrupt")
		return nil, fmt.Errorf("%w: %w", ErrStorage, err)
	}

	return users, nil
}

// Save implements [UserStore]. The document is overwritten in place.
func (s *fileUserStore) Save(ctx context.Context, users models.Users) error {
	log := logger.FromContext(ctx)

	data, err := encodeDocument(users)
	if err != nil {
		log.Err(err).Msg("error encoding users document")
		return fmt.Errorf("%w: %w", ErrStorage, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if dir := filepath.Dir(s.path); dir != "" {
		if err = os.MkdirAll(dir, documentDirMode); err != nil {
			log.Err(err).Str("dir", dir).Msg("error creating users document directory")
			return fmt.Errorf("%w: creating %s: %w", ErrStorage, dir, err)
		}
	}

	if err = os.WriteFile(s.path, data, documentFileMode); err != nil {
		log.Err(err).Str("path", s.path).Msg("error writing users document")
		return fmt.Errorf("%w: writing %s: %w", ErrStorage, s.path, err)
	}

	log.Debug().Str("path", s.path).Int("users", len(users)).Msg("users document saved")
	return nil
}
