package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"flames.blue/internal/audit"
	"flames.blue/internal/config"
	"flames.blue/internal/content"
	"flames.blue/internal/markdown"
	"flames.blue/internal/models"
	"flames.blue/internal/services"
)

// newTestRouter builds the router with a clock pinned to 2025
func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	reg, err := content.Load("")
	require.NoError(t, err)
	cfg := &config.Config{
		Settings: config.Settings{DefaultTheme: "dark", SceneURL: config.DefaultSceneURL},
		Registry: reg,
	}
	clock := func() time.Time { return time.Date(2025, time.March, 3, 0, 0, 0, 0, time.UTC) }
	ps := services.NewPageService(reg, markdown.New(), cfg.SceneURL, clock)
	return newRouter(cfg, zap.NewNop(), ps)
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHealth(t *testing.T) {
	t.Parallel()

	rec := get(t, newTestRouter(t), "/api/health")
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestHomeServesDefaultTheme(t *testing.T) {
	t.Parallel()

	rec := get(t, newTestRouter(t), "/")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))

	doc, err := goquery.NewDocumentFromReader(rec.Body)
	require.NoError(t, err)
	assert.True(t, doc.Find("html").HasClass("theme-dark"))
	assert.Equal(t, 3, doc.Find("#services .service-card").Length())
	assert.Equal(t, "© 2025 Flames.Blue — All rights reserved.", strings.TrimSpace(doc.Find("footer").Text()))
}

func TestThemePages(t *testing.T) {
	t.Parallel()

	h := newTestRouter(t)

	rec := get(t, h, "/light")
	require.Equal(t, http.StatusOK, rec.Code)
	doc, err := goquery.NewDocumentFromReader(rec.Body)
	require.NoError(t, err)
	assert.True(t, doc.Find("html").HasClass("theme-light"))
	assert.Equal(t, 9, doc.Find(".project-card").Length())

	rec = get(t, h, "/sepia")
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListProjects(t *testing.T) {
	t.Parallel()

	h := newTestRouter(t)
	tests := []struct {
		target string
		want   int
	}{
		{"/api/projects", 18},
		{"/api/projects?category=video", 6},
		{"/api/projects?theme=light", 9},
		{"/api/projects?theme=light&category=photo", 0},
	}
	for _, tt := range tests {
		rec := get(t, h, tt.target)
		require.Equal(t, http.StatusOK, rec.Code, tt.target)
		var list models.ProjectList
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
		assert.Len(t, list.Projects, tt.want, tt.target)
	}

	rec := get(t, h, "/api/projects?theme=sepia")
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetProject(t *testing.T) {
	t.Parallel()

	h := newTestRouter(t)

	rec := get(t, h, "/api/projects/design-4")
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t,
		`{"id":"design-4","index":4,"category":"design","label":"Graphic Design Project 4","year":2025}`,
		rec.Body.String())

	rec = get(t, h, "/api/projects/design-40")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "project not found")
}

func TestSiteAndServices(t *testing.T) {
	t.Parallel()

	h := newTestRouter(t)

	rec := get(t, h, "/api/services?theme=light")
	require.Equal(t, http.StatusOK, rec.Code)
	var items []models.ServiceItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
	require.Len(t, items, 3)
	assert.Equal(t, "Photography", items[0].Title)

	rec = get(t, h, "/api/site")
	require.Equal(t, http.StatusOK, rec.Code)
	var site models.Site
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &site))
	assert.Equal(t, "dark", site.Theme)
	assert.Len(t, site.NavLinks, 7)
}

func TestAuditEndpoint(t *testing.T) {
	t.Parallel()

	for _, theme := range []string{"dark", "light"} {
		rec := get(t, newTestRouter(t), "/api/audit?theme="+theme)
		require.Equal(t, http.StatusOK, rec.Code)
		var rep audit.Report
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rep))
		assert.Empty(t, rep.Issues, theme)
		assert.NotEmpty(t, rep.Reveals, theme)
	}
}

func TestStaticAssets(t *testing.T) {
	t.Parallel()

	h := newTestRouter(t)
	for _, name := range []string{"/static/site.css", "/static/motion.js"} {
		rec := get(t, h, name)
		require.Equal(t, http.StatusOK, rec.Code, name)
		assert.NotEmpty(t, rec.Header().Get("ETag"), name)
	}
	rec := get(t, h, "/static/missing.js")
	require.Equal(t, http.StatusNotFound, rec.Code)
}
