package components

import (
	"context"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"flames.blue/internal/models"
)

// PageData is everything the root composition needs to render one theme
type PageData struct {
	Site     *models.Site
	Projects []models.ProjectPlaceholder
	BioHTML  string
	SceneURL string
	Year     int
}

// Page composes the navbar, the sections in registry order and the footer
func Page(ctx context.Context, data PageData) g.Node {
	site := data.Site
	doc := &Document{
		Title:       site.Title,
		Description: site.Description,
		Theme:       site.Theme,
	}

	sections := make([]g.Node, 0, len(site.Sections))
	for _, key := range site.Sections {
		switch key {
		case models.SectionHero:
			sections = append(sections, Hero(ctx, doc, site, data.SceneURL))
		case models.SectionServices:
			sections = append(sections, Services(site))
		case models.SectionWork:
			sections = append(sections, Work(site, data.Projects))
		case models.SectionAbout:
			sections = append(sections, About(site, data.BioHTML))
		case models.SectionContact:
			sections = append(sections, Contact(site))
		}
	}

	return doc.Layout(
		Navbar(site),
		h.Main(g.Group(sections)),
		Footer(site, data.Year),
	)
}
