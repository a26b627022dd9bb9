package handlers

import (
	"log/slog"
	"net/http"

	"sagarneeli.dev/internal/services"
)

// ExperienceHandler serves the work history
type ExperienceHandler struct {
	experienceService *services.ExperienceService
	logger            *slog.Logger
}

// NewExperienceHandler creates a new ExperienceHandler
func NewExperienceHandler(es *services.ExperienceService, logger *slog.Logger) *ExperienceHandler {
	return &ExperienceHandler{experienceService: es, logger: logger}
}

// ListExperience handles GET /api/experience
func (h *ExperienceHandler) ListExperience(w http.ResponseWriter, r *http.Request) {
	views, err := h.experienceService.List()
	if err != nil {
		respondContentError(w, h.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, views)
}
