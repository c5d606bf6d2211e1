// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// compressionLevel is the gzip level used for JSON and text responses.
const compressionLevel = 5

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Compress(compressionLevel, "application/json", "text/plain"))
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/user/register", h.register)
		r.Post("/api/user/login", h.login)
		r.Get("/api/version", h.getServerVersion)
	})

	// routes scoped to the session user
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/user/session", h.session)

		r.Get("/api/records", h.listRecords)
		r.Post("/api/records", h.addRecord)
		r.Get("/api/records/{id}", h.getRecord)
		r.Patch("/api/records/{id}", h.editRecord)
		r.Delete("/api/records/{id}", h.deleteRecord)

		r.Post("/api/records/{id}/payments", h.addPayment)
		r.Delete("/api/records/{id}/payments/{paymentID}", h.deletePayment)

		r.Get("/api/records/{id}/metrics", h.metrics)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
