package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewRouter mounts the ticker routes. metricsHandler is optional; when set,
// /metrics serves the Prometheus exposition directly on this server.
func NewRouter(h *Handler, metricsHandler http.Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/health", h.Health)
	r.Get("/ready", h.Ready)
	r.Get("/info", h.Info)
	r.Get("/frame.png", h.Frame)
	r.Get("/strip.png", h.Strip)
	if metricsHandler != nil {
		r.Handle("/metrics", metricsHandler)
	}
	return r
}
