package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"folio.dev/internal/middleware"
	"folio.dev/internal/services"
)

// SetupRoutes configures all routes and returns the router
func SetupRoutes(rs *services.RevisionService, logger *zap.Logger) (http.Handler, error) {
	latest, err := rs.GetLatest()
	if err != nil {
		return nil, fmt.Errorf("load latest revision: %w", err)
	}

	r := chi.NewRouter()

	useMiddleware(r, logger)

	// Initialize handlers
	projectHandler := NewProjectHandler(services.NewProjectService(latest.Projects), logger)
	revisionHandler := NewRevisionHandler(rs, logger)

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Get("/projects", projectHandler.ListProjects)
		r.Get("/projects/{slug}", projectHandler.GetProject)

		r.Get("/revisions", revisionHandler.GetManifest)
		r.Get("/revisions/{n}", revisionHandler.GetRevision)

		// Health check
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			respondJSON(w, logger, http.StatusOK, map[string]string{"status": "ok"})
		})
	})

	return r, nil
}

// useMiddleware installs the shared middleware stack.
// Logger sits outside Recovery so panicking requests still get an access line.
func useMiddleware(r chi.Router, logger *zap.Logger) {
	r.Use(chimw.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recovery(logger))
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, logger *zap.Logger, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Warn("error encoding JSON", zap.Error(err))
	}
}

// respondError writes an error JSON response
func respondError(w http.ResponseWriter, logger *zap.Logger, status int, message string) {
	respondJSON(w, logger, status, map[string]string{"error": message})
}
