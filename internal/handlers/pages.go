package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"flames.blue/internal/logging"
	"flames.blue/internal/services"
)

// PageHandler serves the composed portfolio page
type PageHandler struct {
	pageService  *services.PageService
	defaultTheme string
}

// NewPageHandler creates a new PageHandler
func NewPageHandler(ps *services.PageService, defaultTheme string) *PageHandler {
	return &PageHandler{pageService: ps, defaultTheme: defaultTheme}
}

// Home handles GET /
func (h *PageHandler) Home(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, h.defaultTheme)
}

// Theme handles GET /{theme}
func (h *PageHandler) Theme(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, chi.URLParam(r, "theme"))
}

func (h *PageHandler) serve(w http.ResponseWriter, r *http.Request, theme string) {
	page, err := h.pageService.Render(r.Context(), theme)
	if err != nil {
		status := statusFor(err)
		if status >= http.StatusInternalServerError {
			logging.FromContext(r.Context()).Error("render page", zap.String("theme", theme), zap.Error(err))
		}
		http.Error(w, http.StatusText(status), status)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(page)
}
