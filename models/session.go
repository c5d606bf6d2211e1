// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Session records which user, if any, is authenticated for the current
// interaction. It is passed explicitly instead of living in global state.
type Session struct {
	Username      string `json:"username"`
	Authenticated bool   `json:"authenticated"`
}

// Login marks the session as authenticated for username.
func (s *Session) Login(username string) {
	s.Username = username
	s.Authenticated = username != ""
}

// Logout clears the session.
func (s *Session) Logout() {
	s.Username = ""
	s.Authenticated = false
}

// CurrentUser returns the authenticated username and whether there is one.
func (s Session) CurrentUser() (string, bool) {
	if !s.Authenticated || s.Username == "" {
		return "", false
	}
	return s.Username, true
}
