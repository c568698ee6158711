package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"flames.blue/internal/models"
	"flames.blue/internal/services"
)

// ProjectHandler handles project-related endpoints
type ProjectHandler struct {
	projectService *services.ProjectService
	defaultTheme   string
}

// NewProjectHandler creates a new ProjectHandler
func NewProjectHandler(ps *services.ProjectService, defaultTheme string) *ProjectHandler {
	return &ProjectHandler{projectService: ps, defaultTheme: defaultTheme}
}

// ListProjects handles GET /api/projects
func (h *ProjectHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	theme := themeParam(r, h.defaultTheme)

	var (
		projects *models.ProjectList
		err      error
	)
	if category := r.URL.Query().Get("category"); category != "" {
		projects, err = h.projectService.GetByCategory(theme, category)
	} else {
		projects, err = h.projectService.GetAll(theme)
	}
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, projects)
}

// GetProject handles GET /api/projects/{id}
func (h *ProjectHandler) GetProject(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	project, err := h.projectService.GetByID(themeParam(r, h.defaultTheme), id)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusOK, project)
}
