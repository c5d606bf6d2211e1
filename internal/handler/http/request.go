// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/vc-tracker/internal/utils"
)

// decodeJSON decodes the request body into dst. Unknown fields are rejected.
func decodeJSON(r *http.Request, dst any) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return nil
}

// sessionUser returns the username of the authenticated session, or answers
// 401 and reports false.
func sessionUser(w http.ResponseWriter, r *http.Request) (string, bool) {
	session, ok := utils.SessionFromContext(r.Context())
	if !ok {
		writeError(w, r, ErrNoSession)
		return "", false
	}
	return session.Username, true
}
