// Package api exposes the track library and the frame decoder over HTTP.
package api

import (
	"fmt"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// StartServer starts the HTTP server with all routes configured
func StartServer(lib TrackLibrary, config ServerConfig) error {
	metrics := NewMetrics()
	server := NewServer(lib, config, metrics)

	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Prometheus metrics endpoint (unprotected for scraping)
	r.Handle("/metrics", promhttp.Handler())

	// API key authentication middleware for protected routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(apiKeyMiddleware(config.APIKey, metrics))

		r.Get("/health", metrics.InstrumentHandler("GET", "/api/v1/health", server.handleHealth))

		r.Get("/tracks", metrics.InstrumentHandler("GET", "/api/v1/tracks", server.handleListTracks))
		r.Get("/tracks/{id}", metrics.InstrumentHandler("GET", "/api/v1/tracks/{id}", server.handleGetTrack))
		r.Get("/tracks/{id}/frames", metrics.InstrumentHandler("GET", "/api/v1/tracks/{id}/frames", server.handleGetFrames))
		r.Delete("/tracks/{id}", metrics.InstrumentHandler("DELETE", "/api/v1/tracks/{id}", server.handleDeleteTrack))

		r.Post("/scan", metrics.InstrumentHandler("POST", "/api/v1/scan", server.handleScan))
	})

	addr := fmt.Sprintf("%s:%d", config.Bind, config.Port)
	log.Printf("id3tool API listening on %s", addr)
	return http.ListenAndServe(addr, r)
}
