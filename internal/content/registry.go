// Package content loads the static site registry for each theme variant.
package content

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"flames.blue/internal/models"
)

//go:embed registry/*.yaml
var embedded embed.FS

var (
	// ErrUnknownTheme is returned when no registry exists for a theme
	ErrUnknownTheme = errors.New("unknown theme")
	// ErrInvalidSite wraps every validation failure of a registry file
	ErrInvalidSite = errors.New("invalid site")
)

// Registry holds the immutable site content for every theme
type Registry struct {
	sites map[string]*models.Site
}

// Load reads <theme>.yaml files from dir, or the embedded registry when dir
// is empty
func Load(dir string) (*Registry, error) {
	var fsys fs.FS
	if dir == "" {
		sub, err := fs.Sub(embedded, "registry")
		if err != nil {
			return nil, fmt.Errorf("open embedded registry: %w", err)
		}
		fsys = sub
	} else {
		fsys = os.DirFS(dir)
	}
	return LoadFS(fsys)
}

// LoadFS reads every *.yaml file at the root of fsys
func LoadFS(fsys fs.FS) (*Registry, error) {
	files, err := fs.Glob(fsys, "*.yaml")
	if err != nil {
		return nil, fmt.Errorf("list registry files: %w", err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no registry files found")
	}

	reg := &Registry{sites: make(map[string]*models.Site, len(files))}
	for _, name := range files {
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", name, err)
		}
		site, err := Parse(data)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", name, err)
		}
		if site.Theme == "" {
			site.Theme = strings.TrimSuffix(path.Base(name), ".yaml")
		}
		if err := Validate(site); err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		if _, dup := reg.sites[site.Theme]; dup {
			return nil, fmt.Errorf("%s: theme %q defined twice", name, site.Theme)
		}
		reg.sites[site.Theme] = site
	}
	return reg, nil
}

// Parse decodes one registry document and fills derived fields
func Parse(data []byte) (*models.Site, error) {
	var site models.Site
	if err := yaml.Unmarshal(data, &site); err != nil {
		return nil, err
	}
	normalize(&site)
	return &site, nil
}

// Site returns the registry for theme
func (r *Registry) Site(theme string) (*models.Site, error) {
	site, ok := r.sites[theme]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTheme, theme)
	}
	return site, nil
}

// Themes returns the loaded theme names, sorted
func (r *Registry) Themes() []string {
	themes := make([]string, 0, len(r.sites))
	for theme := range r.sites {
		themes = append(themes, theme)
	}
	sort.Strings(themes)
	return themes
}

var titler = cases.Title(language.English)

// normalize derives labels left blank in the registry file
func normalize(site *models.Site) {
	for i := range site.NavLinks {
		if site.NavLinks[i].Label == "" {
			site.NavLinks[i].Label = TitleFromKey(site.NavLinks[i].Anchor)
		}
	}
	for i := range site.Work.Categories {
		c := &site.Work.Categories[i]
		if c.Label == "" {
			c.Label = TitleFromKey(c.Key)
		}
	}
}

// TitleFromKey turns a slug such as "graphic-design" into "Graphic Design"
func TitleFromKey(key string) string {
	s := strings.NewReplacer("-", " ", "_", " ").Replace(key)
	return titler.String(s)
}
