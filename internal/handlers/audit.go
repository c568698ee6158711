package handlers

import (
	"net/http"

	"flames.blue/internal/services"
)

// AuditHandler reports on the rendered page
type AuditHandler struct {
	pageService  *services.PageService
	defaultTheme string
}

// NewAuditHandler creates a new AuditHandler
func NewAuditHandler(ps *services.PageService, defaultTheme string) *AuditHandler {
	return &AuditHandler{pageService: ps, defaultTheme: defaultTheme}
}

// GetReport handles GET /api/audit
func (h *AuditHandler) GetReport(w http.ResponseWriter, r *http.Request) {
	report, err := h.pageService.Audit(r.Context(), themeParam(r, h.defaultTheme))
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, report)
}
