// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/vc-tracker/internal/utils"
	"github.com/MKhiriev/vc-tracker/models"
	"github.com/go-chi/chi/v5"
)

// asOfParam is the query parameter selecting the metrics date. Today is used
// when it is absent.
const asOfParam = "as_of"

func (h *Handler) metrics(w http.ResponseWriter, r *http.Request) {
	username, ok := sessionUser(w, r)
	if !ok {
		return
	}

	asOf, err := parseAsOf(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	metrics, err := h.services.VCService.Metrics(r.Context(), username, chi.URLParam(r, "id"), asOf)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, metrics, http.StatusOK)
}

func parseAsOf(r *http.Request) (models.Date, error) {
	raw := r.URL.Query().Get(asOfParam)
	if raw == "" {
		return models.Today(), nil
	}

	asOf, err := models.ParseDate(raw)
	if err != nil {
		return models.Date{}, fmt.Errorf("%w: %w", ErrInvalidAsOfDate, err)
	}
	return asOf, nil
}
