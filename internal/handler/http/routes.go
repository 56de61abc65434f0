// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	if h.cfg.TrustProxyHeaders {
		router.Use(middleware.RealIP)
	}
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	if len(h.cfg.CORSAllowedOrigins) > 0 {
		router.Use(h.withCORS())
	}
	router.Use(withGZip)
	if h.cfg.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.cfg.RequestTimeout))
	}

	router.Get("/api/version", h.getServerVersion)

	// routes without authorization
	router.Group(func(r chi.Router) {
		if h.authLimiter != nil {
			r.Use(h.authLimiter.Middleware)
		}
		r.Post("/auth/signup", h.signup)
		r.Post("/auth/signin", h.signin)
	})

	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/users/me", h.getMe)
		r.Patch("/users", h.updateMe)

		r.Post("/bookmarks", h.createBookmark)
		r.Get("/bookmarks", h.listBookmarks)
		r.Get("/bookmarks/{id}", h.getBookmark)
		r.Patch("/bookmarks/{id}", h.editBookmark)
		r.Delete("/bookmarks/{id}", h.deleteBookmark)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
