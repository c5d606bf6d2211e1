// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// SavedSession is what the CLI remembers between runs.
type SavedSession struct {
	Username string `json:"username"`
	Token    string `json:"token"`
}

// SessionFile persists a [SavedSession] as a small JSON document readable
// only by its owner.
type SessionFile struct {
	path string
}

// NewSessionFile returns a SessionFile stored at path.
func NewSessionFile(path string) *SessionFile {
	return &SessionFile{path: path}
}

// Path returns the location of the session file.
func (s *SessionFile) Path() string { return s.path }

// Load reads the saved session. It returns [ErrNotLoggedIn] when the file
// does not exist or holds no token.
func (s *SessionFile) Load() (SavedSession, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return SavedSession{}, ErrNotLoggedIn
	}
	if err != nil {
		return SavedSession{}, fmt.Errorf("read session file: %w", err)
	}

	var session SavedSession
	if err = json.Unmarshal(data, &session); err != nil {
		return SavedSession{}, fmt.Errorf("decode session file %s: %w", s.path, err)
	}
	if session.Token == "" || session.Username == "" {
		return SavedSession{}, ErrNotLoggedIn
	}

	return session, nil
}

// Save overwrites the session file, creating its directory when needed.
func (s *SessionFile) Save(session SavedSession) error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("create session dir: %w", err)
		}
	}

	data, err := json.MarshalIndent(session, "", "  ")
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err = os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("write session file: %w", err)
	}
	return nil
}

// Remove deletes the session file. A missing file is not an error.
func (s *SessionFile) Remove() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove session file: %w", err)
	}
	return nil
}
