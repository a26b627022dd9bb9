package handlers

import (
	"encoding/json"
	"io/fs"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"sagarneeli.dev/internal/config"
	"sagarneeli.dev/internal/content"
	"sagarneeli.dev/internal/dates"
	"sagarneeli.dev/internal/middleware"
	"sagarneeli.dev/internal/render"
	"sagarneeli.dev/internal/services"
)

// Deps holds what the router needs beyond configuration
type Deps struct {
	Logger    *slog.Logger
	Content   content.Source
	Remote    services.RemoteProfile // nil when the portfolio API is not used
	Clock     func() time.Time       // nil means time.Now
	Templates *render.Templates
	Static    fs.FS // contents served under /static/
}

// SetupRoutes configures all routes and returns the router
func SetupRoutes(cfg *config.Config, deps Deps) http.Handler {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	r := chi.NewRouter()

	// Middleware
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders(middleware.DefaultSecurityHeadersConfig(cfg.IsDevelopment())))

	// Initialize services
	calc := dates.NewCalculator(deps.Clock)
	markdown := render.NewMarkdown()
	experienceService := services.NewExperienceService(deps.Content, calc, cfg.Locale(), logger)
	projectService := services.NewProjectService(deps.Content)
	pageService := services.NewPageService(deps.Content, deps.Remote, experienceService, markdown, logger)
	portfolioService := services.NewPortfolioService(deps.Content, experienceService)

	// Initialize handlers
	pageHandler := NewPageHandler(pageService, deps.Content, deps.Templates, cfg.Locale(), calc, logger)
	experienceHandler := NewExperienceHandler(experienceService, logger)
	projectHandler := NewProjectHandler(projectService, logger)
	durationHandler := NewDurationHandler(calc)
	portfolioHandler := NewPortfolioHandler(portfolioService, logger)

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Get("/page", pageHandler.GetPage)
		r.Get("/content", pageHandler.GetContent)
		r.Get("/experience", experienceHandler.ListExperience)
		r.Get("/duration", durationHandler.GetDuration)

		// Project endpoints
		r.Get("/projects", projectHandler.ListProjects)
		r.Get("/projects/{id}", projectHandler.GetProject)

		// Static content in the portfolio API shape
		r.Route("/v1/portfolio", func(r chi.Router) {
			r.Get("/profile", portfolioHandler.GetProfile)
			r.Get("/experience", portfolioHandler.GetExperience)
			r.Get("/projects", portfolioHandler.GetProjects)
			r.Get("/skills", portfolioHandler.GetSkills)
		})

		// Health check
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		})

		r.NotFound(func(w http.ResponseWriter, r *http.Request) {
			respondError(w, http.StatusNotFound, "Not found")
		})
	})

	// Static files
	if deps.Static != nil {
		fileServer := http.FileServer(http.FS(deps.Static))
		r.Handle("/static/*", http.StripPrefix("/static", fileServer))
	}

	r.Get("/", pageHandler.Index)

	return r
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}

// respondError writes an error JSON response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// respondContentError maps a content load failure to a 500 without leaking
// file paths to the client.
func respondContentError(w http.ResponseWriter, logger *slog.Logger, err error) {
	logger.Error("content unavailable", "error", err)
	respondError(w, http.StatusInternalServerError, "Content unavailable")
}
