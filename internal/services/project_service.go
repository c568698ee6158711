package services

import (
	"errors"
	"fmt"

	"flames.blue/internal/content"
	"flames.blue/internal/models"
)

// ErrProjectNotFound is returned when no placeholder has the requested id
var ErrProjectNotFound = errors.New("project not found")

// ProjectService handles project-related operations
type ProjectService struct {
	registry *content.Registry
}

// NewProjectService creates a new ProjectService
func NewProjectService(reg *content.Registry) *ProjectService {
	return &ProjectService{registry: reg}
}

// GeneratePlaceholders repeats every category's count into placeholder cards
func GeneratePlaceholders(site *models.Site) []models.ProjectPlaceholder {
	total := 0
	for _, c := range site.Work.Categories {
		total += c.Count
	}
	projects := make([]models.ProjectPlaceholder, 0, total)
	for _, c := range site.Work.Categories {
		for i := 1; i <= c.Count; i++ {
			projects = append(projects, models.NewProjectPlaceholder(c, i, site.PlaceholderYear))
		}
	}
	return projects
}

// GetAll returns all placeholders for a theme
func (s *ProjectService) GetAll(theme string) (*models.ProjectList, error) {
	site, err := s.registry.Site(theme)
	if err != nil {
		return nil, err
	}
	return &models.ProjectList{Theme: theme, Projects: GeneratePlaceholders(site)}, nil
}

// GetByCategory returns the placeholders of one category
func (s *ProjectService) GetByCategory(theme, category string) (*models.ProjectList, error) {
	all, err := s.GetAll(theme)
	if err != nil {
		return nil, err
	}
	filtered := all.Projects[:0:0]
	for _, p := range all.Projects {
		if p.Category == category {
			filtered = append(filtered, p)
		}
	}
	return &models.ProjectList{Theme: theme, Projects: filtered}, nil
}

// GetByID returns a specific placeholder by ID
func (s *ProjectService) GetByID(theme, id string) (*models.ProjectPlaceholder, error) {
	all, err := s.GetAll(theme)
	if err != nil {
		return nil, err
	}
	for i := range all.Projects {
		if all.Projects[i].ID == id {
			return &all.Projects[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrProjectNotFound, id)
}
