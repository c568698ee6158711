package models

import "fmt"

// Category represents a work category rendered as one project grid
type Category struct {
	Key    string `json:"key" yaml:"key"`
	Label  string `json:"label" yaml:"label"`
	Icon   string `json:"icon" yaml:"icon"`
	Anchor string `json:"anchor,omitempty" yaml:"anchor"`
	Count  int    `json:"count" yaml:"count"`
}

// ProjectPlaceholder represents a placeholder tile in the work grid.
// It has no identity beyond its category and position.
type ProjectPlaceholder struct {
	ID       string `json:"id"`
	Index    int    `json:"index"`
	Category string `json:"category"`
	Label    string `json:"label"`
	Year     int    `json:"year"`
}

// NewProjectPlaceholder derives the placeholder at 1-based index i of c
func NewProjectPlaceholder(c Category, i, year int) ProjectPlaceholder {
	return ProjectPlaceholder{
		ID:       fmt.Sprintf("%s-%d", c.Key, i),
		Index:    i,
		Category: c.Key,
		Label:    fmt.Sprintf("%s Project %d", c.Label, i),
		Year:     year,
	}
}

// ProjectList wraps the placeholders generated for one theme
type ProjectList struct {
	Theme    string               `json:"theme"`
	Projects []ProjectPlaceholder `json:"projects"`
}
