// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/vc-tracker/internal/app"
	"github.com/MKhiriev/vc-tracker/internal/logger"
	"github.com/MKhiriev/vc-tracker/internal/service"
	"github.com/MKhiriev/vc-tracker/internal/store"
)

var errorStatusMap = map[error]int{
	ErrInvalidJSON:                 http.StatusBadRequest,
	ErrInvalidAsOfDate:             http.StatusBadRequest,
	service.ErrInvalidDataProvided: http.StatusBadRequest,

	ErrEmptyAuthorizationHeader:        http.StatusUnauthorized,
	ErrInvalidAuthorizationHeader:      http.StatusUnauthorized,
	ErrNoSession:                       http.StatusUnauthorized,
	service.ErrInvalidCredentials:      http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,

	service.ErrNotFound:      http.StatusNotFound,
	service.ErrDuplicateUser: http.StatusConflict,

	service.ErrTokenCreationFailed: http.StatusInternalServerError,
	store.ErrStorage:               http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// errorMessage is the response body sent for err. Client errors carry the
// error text; server errors never do, their detail is only logged.
func errorMessage(err error, status int) string {
	if status < http.StatusInternalServerError {
		return err.Error()
	}
	if errors.Is(err, store.ErrStorage) {
		return app.MsgStorageUnavailable
	}
	return app.MsgInternalServerError
}

// writeError logs err and answers with the mapped status and message.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	status := statusFromError(err)

	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	http.Error(w, errorMessage(err, status), status)
}
