package handlers

import (
	"log/slog"
	"net/http"

	"sagarneeli.dev/internal/services"
)

// PortfolioHandler serves /api/v1/portfolio, the same shape the profile API
// client consumes
type PortfolioHandler struct {
	portfolioService *services.PortfolioService
	logger           *slog.Logger
}

// NewPortfolioHandler creates a new PortfolioHandler
func NewPortfolioHandler(ps *services.PortfolioService, logger *slog.Logger) *PortfolioHandler {
	return &PortfolioHandler{portfolioService: ps, logger: logger}
}

// GetProfile handles GET /api/v1/portfolio/profile
func (h *PortfolioHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	serve(w, h.logger, h.portfolioService.Profile)
}

// GetExperience handles GET /api/v1/portfolio/experience
func (h *PortfolioHandler) GetExperience(w http.ResponseWriter, r *http.Request) {
	serve(w, h.logger, h.portfolioService.Experience)
}

// GetProjects handles GET /api/v1/portfolio/projects
func (h *PortfolioHandler) GetProjects(w http.ResponseWriter, r *http.Request) {
	serve(w, h.logger, h.portfolioService.Projects)
}

// GetSkills handles GET /api/v1/portfolio/skills
func (h *PortfolioHandler) GetSkills(w http.ResponseWriter, r *http.Request) {
	serve(w, h.logger, h.portfolioService.Skills)
}

func serve[T any](w http.ResponseWriter, logger *slog.Logger, get func() (T, error)) {
	v, err := get()
	if err != nil {
		respondContentError(w, logger, err)
		return
	}
	respondJSON(w, http.StatusOK, v)
}
