package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"sagarneeli.dev/internal/services"
)

// ProjectHandler handles project-related endpoints
type ProjectHandler struct {
	projectService *services.ProjectService
	logger         *slog.Logger
}

// NewProjectHandler creates a new ProjectHandler
func NewProjectHandler(ps *services.ProjectService, logger *slog.Logger) *ProjectHandler {
	return &ProjectHandler{projectService: ps, logger: logger}
}

// ListProjects handles GET /api/projects. ?featured=true limits the list to
// featured projects.
func (h *ProjectHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	list := h.projectService.GetAll
	if r.URL.Query().Get("featured") == "true" {
		list = h.projectService.Featured
	}

	projects, err := list()
	if err != nil {
		respondContentError(w, h.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, projects)
}

// GetProject handles GET /api/projects/{id}
func (h *ProjectHandler) GetProject(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	project, err := h.projectService.GetByID(id)
	switch {
	case errors.Is(err, services.ErrNotFound):
		respondError(w, http.StatusNotFound, "Project not found")
		return
	case err != nil:
		respondContentError(w, h.logger, err)
		return
	}

	respondJSON(w, http.StatusOK, project)
}
