// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/vc-tracker/internal/utils"
	"github.com/MKhiriev/vc-tracker/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listRecords(w http.ResponseWriter, r *http.Request) {
	username, ok := sessionUser(w, r)
	if !ok {
		return
	}

	records, err := h.services.VCService.ListRecords(r.Context(), username)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, records, http.StatusOK)
}

func (h *Handler) getRecord(w http.ResponseWriter, r *http.Request) {
	username, ok := sessionUser(w, r)
	if !ok {
		return
	}

	record, err := h.services.VCService.GetRecord(r.Context(), username, chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, record, http.StatusOK)
}

func (h *Handler) addRecord(w http.ResponseWriter, r *http.Request) {
	username, ok := sessionUser(w, r)
	if !ok {
		return
	}

	var newRecord models.NewRecord
	if err := decodeJSON(r, &newRecord); err != nil {
		writeError(w, r, err)
		return
	}

	record, err := h.services.VCService.AddRecord(r.Context(), username, newRecord)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, record, http.StatusCreated)
}

// editRecord applies a partial update; absent fields keep their value.
func (h *Handler) editRecord(w http.ResponseWriter, r *http.Request) {
	username, ok := sessionUser(w, r)
	if !ok {
		return
	}

	var update models.RecordUpdate
	if err := decodeJSON(r, &update); err != nil {
		writeError(w, r, err)
		return
	}

	record, err := h.services.VCService.EditRecord(r.Context(), username, chi.URLParam(r, "id"), update)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, record, http.StatusOK)
}

func (h *Handler) deleteRecord(w http.ResponseWriter, r *http.Request) {
	username, ok := sessionUser(w, r)
	if !ok {
		return
	}

	if err := h.services.VCService.DeleteRecord(r.Context(), username, chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
