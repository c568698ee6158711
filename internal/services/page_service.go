package services

import (
	"bytes"
	"context"
	"fmt"
	"sync"
	"time"

	"flames.blue/internal/audit"
	"flames.blue/internal/components"
	"flames.blue/internal/content"
	"flames.blue/internal/markdown"
)

// Clock returns the current time
type Clock func() time.Time

type pageKey struct {
	theme string
	year  int
}

// PageService renders and caches the composed page for each theme.
// Pages are cached per calendar year so the footer stays current.
type PageService struct {
	registry *content.Registry
	markdown *markdown.Renderer
	sceneURL string
	now      Clock

	mu    sync.RWMutex
	pages map[pageKey][]byte
}

// NewPageService creates a new PageService. A nil clock uses time.Now.
func NewPageService(reg *content.Registry, md *markdown.Renderer, sceneURL string, now Clock) *PageService {
	if now == nil {
		now = time.Now
	}
	return &PageService{
		registry: reg,
		markdown: md,
		sceneURL: sceneURL,
		now:      now,
		pages:    make(map[pageKey][]byte),
	}
}

// Render returns the HTML for theme
func (s *PageService) Render(ctx context.Context, theme string) ([]byte, error) {
	key := pageKey{theme: theme, year: s.now().Year()}

	s.mu.RLock()
	page, cached := s.pages[key]
	s.mu.RUnlock()
	if cached {
		return page, nil
	}

	site, err := s.registry.Site(theme)
	if err != nil {
		return nil, err
	}
	bio, err := s.markdown.Render(site.About.Bio)
	if err != nil {
		return nil, fmt.Errorf("render %s bio: %w", theme, err)
	}

	var buf bytes.Buffer
	node := components.Page(ctx, components.PageData{
		Site:     site,
		Projects: GeneratePlaceholders(site),
		BioHTML:  bio,
		SceneURL: s.sceneURL,
		Year:     key.year,
	})
	if err := node.Render(&buf); err != nil {
		return nil, fmt.Errorf("render %s page: %w", theme, err)
	}

	s.mu.Lock()
	s.pages[key] = buf.Bytes()
	s.mu.Unlock()
	return buf.Bytes(), nil
}

// Audit renders theme and inspects the result
func (s *PageService) Audit(ctx context.Context, theme string) (*audit.Report, error) {
	page, err := s.Render(ctx, theme)
	if err != nil {
		return nil, err
	}
	return audit.Check(bytes.NewReader(page))
}
