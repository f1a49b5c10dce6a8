package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/MKhiriev/go-light-wallet/internal/metrics"
)

func (h *Handler) Init() *chi.Mux {
	metrics.RegisterMetrics()

	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(withLogging)

	// probes and metrics are never authenticated
	router.Handle("/live", h.health)
	router.Handle("/ready", h.health)
	router.Handle("/metrics", promhttp.Handler())

	router.Route("/api", func(r chi.Router) {
		if h.tokenSignKey != "" {
			r.Use(h.auth)
		}

		r.Get("/version", h.getVersion)

		r.Get("/session", h.getSession)
		r.Post("/session", h.createSession)
		r.Delete("/session", h.deleteSession)

		r.Post("/commands/{command}", h.dispatchCommand)
	})

	return router
}
