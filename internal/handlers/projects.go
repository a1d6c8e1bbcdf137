package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"folio.dev/internal/services"
)

// ProjectHandler handles project-related endpoints
type ProjectHandler struct {
	projectService *services.ProjectService
	logger         *zap.Logger
}

// NewProjectHandler creates a new ProjectHandler
func NewProjectHandler(ps *services.ProjectService, logger *zap.Logger) *ProjectHandler {
	return &ProjectHandler{projectService: ps, logger: logger}
}

// ListProjects handles GET /api/projects
func (h *ProjectHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	projects := h.projectService.GetAll()
	respondJSON(w, h.logger, http.StatusOK, projects)
}

// GetProject handles GET /api/projects/{slug}
func (h *ProjectHandler) GetProject(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	project, err := h.projectService.GetBySlug(slug)
	if errors.Is(err, services.ErrProjectNotFound) {
		respondError(w, h.logger, http.StatusNotFound, "Project not found")
		return
	}
	if err != nil {
		respondError(w, h.logger, http.StatusInternalServerError, err.Error())
		return
	}

	respondJSON(w, h.logger, http.StatusOK, project)
}
