// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/vc-tracker/internal/logger"
	"github.com/MKhiriev/vc-tracker/internal/utils"
	"github.com/MKhiriev/vc-tracker/models"
)

// register creates the account and logs the new user in: the session token
// is returned in the Authorization header.
func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var credentials models.Credentials
	if err := decodeJSON(r, &credentials); err != nil {
		writeError(w, r, err)
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, credentials)
	if err != nil {
		writeError(w, r, err)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, registeredUser.Username)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Debug().Str("username", registeredUser.Username).Msg("user registered and logged in")

	w.Header().Set("Authorization", utils.BearerHeader(token.SignedString))
	w.WriteHeader(http.StatusOK)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var credentials models.Credentials
	if err := decodeJSON(r, &credentials); err != nil {
		writeError(w, r, err)
		return
	}

	username, err := h.services.AuthService.Login(ctx, credentials)
	if err != nil {
		writeError(w, r, err)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, username)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Debug().Str("username", username).Msg("user successfully logged in")

	w.Header().Set("Authorization", utils.BearerHeader(token.SignedString))
	w.WriteHeader(http.StatusOK)
}

// session reports the user the request is authenticated as.
func (h *Handler) session(w http.ResponseWriter, r *http.Request) {
	session, ok := utils.SessionFromContext(r.Context())
	if !ok {
		writeError(w, r, ErrNoSession)
		return
	}

	utils.WriteJSON(w, session, http.StatusOK)
}
