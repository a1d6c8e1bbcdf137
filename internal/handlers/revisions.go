package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"folio.dev/internal/content"
	"folio.dev/internal/services"
)

// RevisionHandler handles revision endpoints
type RevisionHandler struct {
	revisionService *services.RevisionService
	logger          *zap.Logger
}

// NewRevisionHandler creates a new RevisionHandler
func NewRevisionHandler(rs *services.RevisionService, logger *zap.Logger) *RevisionHandler {
	return &RevisionHandler{revisionService: rs, logger: logger}
}

// GetManifest handles GET /api/revisions - returns the revision manifest
func (h *RevisionHandler) GetManifest(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, h.logger, http.StatusOK, h.revisionService.GetManifestResponse())
}

// GetRevision handles GET /api/revisions/{n} - returns one revision
func (h *RevisionHandler) GetRevision(w http.ResponseWriter, r *http.Request) {
	n, err := strconv.Atoi(chi.URLParam(r, "n"))
	if err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid revision number")
		return
	}

	rev, err := h.revisionService.GetRevision(n)
	if errors.Is(err, content.ErrUnknownRevision) {
		respondError(w, h.logger, http.StatusNotFound, "Revision not found")
		return
	}
	if err != nil {
		h.logger.Error("failed to load revision", zap.Int("revision", n), zap.Error(err))
		respondError(w, h.logger, http.StatusInternalServerError, "Failed to load revision")
		return
	}

	respondJSON(w, h.logger, http.StatusOK, rev)
}
