// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/vc-tracker/internal/utils"
	"github.com/MKhiriev/vc-tracker/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) addPayment(w http.ResponseWriter, r *http.Request) {
	username, ok := sessionUser(w, r)
	if !ok {
		return
	}

	var newPayment models.NewPayment
	if err := decodeJSON(r, &newPayment); err != nil {
		writeError(w, r, err)
		return
	}

	payment, err := h.services.VCService.AddPayment(r.Context(), username, chi.URLParam(r, "id"), newPayment)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, payment, http.StatusCreated)
}

func (h *Handler) deletePayment(w http.ResponseWriter, r *http.Request) {
	username, ok := sessionUser(w, r)
	if !ok {
		return
	}

	err := h.services.VCService.DeletePayment(r.Context(), username, chi.URLParam(r, "id"), chi.URLParam(r, "paymentID"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
