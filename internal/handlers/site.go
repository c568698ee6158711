package handlers

import (
	"net/http"

	"flames.blue/internal/content"
)

// SiteHandler exposes the content registry
type SiteHandler struct {
	registry     *content.Registry
	defaultTheme string
}

// NewSiteHandler creates a new SiteHandler
func NewSiteHandler(reg *content.Registry, defaultTheme string) *SiteHandler {
	return &SiteHandler{registry: reg, defaultTheme: defaultTheme}
}

// GetSite handles GET /api/site
func (h *SiteHandler) GetSite(w http.ResponseWriter, r *http.Request) {
	site, err := h.registry.Site(themeParam(r, h.defaultTheme))
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, site)
}

// ListServices handles GET /api/services
func (h *SiteHandler) ListServices(w http.ResponseWriter, r *http.Request) {
	site, err := h.registry.Site(themeParam(r, h.defaultTheme))
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, site.Services)
}
