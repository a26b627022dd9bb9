package handlers

import (
	"log/slog"
	"net/http"

	"golang.org/x/text/language"

	"sagarneeli.dev/internal/content"
	"sagarneeli.dev/internal/dates"
	"sagarneeli.dev/internal/render"
	"sagarneeli.dev/internal/services"
)

// PageHandler serves the composed home page
type PageHandler struct {
	pageService *services.PageService
	content     content.Source
	templates   *render.Templates
	locale      language.Tag
	calc        dates.Calculator
	logger      *slog.Logger
}

// NewPageHandler creates a new PageHandler
func NewPageHandler(ps *services.PageService, src content.Source, tmpl *render.Templates, locale language.Tag, calc dates.Calculator, logger *slog.Logger) *PageHandler {
	return &PageHandler{
		pageService: ps,
		content:     src,
		templates:   tmpl,
		locale:      locale,
		calc:        calc,
		logger:      logger,
	}
}

// Index handles GET /. A content failure renders the error page, never a
// partial page.
func (h *PageHandler) Index(w http.ResponseWriter, r *http.Request) {
	page, err := h.pageService.Compose(r.Context())
	if err != nil {
		h.logger.Error("content unavailable", "error", err)
		h.renderError(w, http.StatusInternalServerError, "The page content could not be loaded. Please try again later.")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	err = h.templates.Page(w, render.PageData{
		Lang: h.locale.String(),
		Page: page,
		Year: h.calc.Today().Year,
	})
	if err != nil {
		h.logger.Error("failed to render page", "error", err)
		h.renderError(w, http.StatusInternalServerError, "The page could not be rendered.")
	}
}

// GetPage handles GET /api/page
func (h *PageHandler) GetPage(w http.ResponseWriter, r *http.Request) {
	page, err := h.pageService.Compose(r.Context())
	if err != nil {
		respondContentError(w, h.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, page)
}

// GetContent handles GET /api/content, the static document as loaded
func (h *PageHandler) GetContent(w http.ResponseWriter, r *http.Request) {
	c, err := h.content.Content()
	if err != nil {
		respondContentError(w, h.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, c)
}

func (h *PageHandler) renderError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	err := h.templates.Error(w, render.ErrorData{
		Status:  status,
		Title:   http.StatusText(status),
		Message: message,
	})
	if err != nil {
		h.logger.Error("failed to render error page", "error", err)
	}
}
