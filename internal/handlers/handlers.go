package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMid "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"flames.blue/internal/config"
	"flames.blue/internal/content"
	"flames.blue/internal/logging"
	"flames.blue/internal/markdown"
	"flames.blue/internal/middleware"
	"flames.blue/internal/services"
	"flames.blue/static"
)

// SetupRoutes configures all routes and returns the router
func SetupRoutes(cfg *config.Config, logger *zap.Logger) http.Handler {
	pageService := services.NewPageService(cfg.Registry, markdown.New(), cfg.SceneURL, nil)
	return newRouter(cfg, logger, pageService)
}

func newRouter(cfg *config.Config, logger *zap.Logger, pageService *services.PageService) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(chiMid.RequestID)
	r.Use(chiMid.RealIP)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recovery)
	r.Use(chiMid.Compress(5))

	// Initialize services
	projectService := services.NewProjectService(cfg.Registry)

	// Initialize handlers
	pageHandler := NewPageHandler(pageService, cfg.DefaultTheme)
	projectHandler := NewProjectHandler(projectService, cfg.DefaultTheme)
	siteHandler := NewSiteHandler(cfg.Registry, cfg.DefaultTheme)
	auditHandler := NewAuditHandler(pageService, cfg.DefaultTheme)

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Get("/site", siteHandler.GetSite)
		r.Get("/services", siteHandler.ListServices)

		r.Get("/projects", projectHandler.ListProjects)
		r.Get("/projects/{id}", projectHandler.GetProject)

		r.Get("/audit", auditHandler.GetReport)

		// Health check
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			respondJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
		})
	})

	// Static files
	r.Handle("/static/*", http.StripPrefix("/static", middleware.AssetsWithCache(static.FS)))

	// Pages
	r.Get("/", pageHandler.Home)
	r.Get("/{theme}", pageHandler.Theme)

	return r
}

// themeParam returns the ?theme= query value or the default theme
func themeParam(r *http.Request, fallback string) string {
	if theme := r.URL.Query().Get("theme"); theme != "" {
		return theme
	}
	return fallback
}

// statusFor maps domain errors to HTTP status codes
func statusFor(err error) int {
	switch {
	case errors.Is(err, content.ErrUnknownTheme), errors.Is(err, services.ErrProjectNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, r *http.Request, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logging.FromContext(r.Context()).Error("encode json", zap.Error(err))
	}
}

// respondError writes an error JSON response
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		logging.FromContext(r.Context()).Error("request failed", zap.Error(err))
	}
	respondJSON(w, r, status, map[string]string{"error": err.Error()})
}
