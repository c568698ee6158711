package components

import (
	"strconv"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"flames.blue/internal/content"
	"flames.blue/internal/models"
	"flames.blue/internal/motion"
)

// Work renders the showcase header and one project grid per category
func Work(site *models.Site, projects []models.ProjectPlaceholder) g.Node {
	byCategory := make(map[string][]models.ProjectPlaceholder, len(site.Work.Categories))
	for _, p := range projects {
		byCategory[p.Category] = append(byCategory[p.Category], p)
	}

	var filters g.Node
	if len(site.Work.Categories) > 1 {
		links := make([]g.Node, 0, len(site.Work.Categories))
		for _, c := range site.Work.Categories {
			if c.Anchor == "" {
				continue
			}
			links = append(links, h.A(h.Href("#"+c.Anchor), h.Class("chip"), g.Text(shortLabel(c))))
		}
		filters = h.Div(h.Class("work-filters"), g.Group(links))
	}

	grids := make([]g.Node, 0, len(site.Work.Categories))
	for _, c := range site.Work.Categories {
		grids = append(grids, ProjectGrid(c, byCategory[c.Key]))
	}

	return h.Section(
		h.ID(models.SectionWork),
		h.Class("section"),
		h.Div(
			h.Class("container"),
			h.Div(
				h.Class("work-header"),
				animate("work-heading", motion.Heading()),
				h.H2(h.Class("section-title"), g.Text(site.Work.Heading)),
				filters,
			),
			g.Group(grids),
		),
	)
}

// ProjectGrid renders the placeholder cards of one category
func ProjectGrid(c models.Category, projects []models.ProjectPlaceholder) g.Node {
	cards := make([]g.Node, 0, len(projects))
	for _, p := range projects {
		cards = append(cards, projectCard(p))
	}
	return h.Div(
		g.If(c.Anchor != "", h.ID(c.Anchor)),
		h.Class("project-grid"),
		g.Attr("data-category", c.Key),
		h.Div(
			h.Class("project-grid-header"),
			h.Div(
				h.Class("project-grid-title"),
				h.Span(h.Class("badge"), icon(c.Icon, "icon-sm")),
				h.H3(g.Text(c.Label)),
			),
			h.A(h.Href("#contact"), h.Class("btn btn-primary btn-sm"), g.Text("Inquire"), icon("arrow-right", "icon-sm")),
		),
		h.Div(h.Class("grid grid-3"), g.Group(cards)),
	)
}

// projectCard is a tile whose overlay stays hidden until hover or focus.
// The play button is decorative.
func projectCard(p models.ProjectPlaceholder) g.Node {
	return h.Div(
		h.Class("project-card"),
		g.Attr("data-project", p.ID),
		h.TabIndex("0"),
		animate("project-"+p.ID, motion.ProjectCard()),
		h.Div(h.Class("project-thumb"), h.Aria("hidden", "true")),
		h.Div(
			h.Class("project-overlay"),
			g.Attr("data-overlay", "hidden"),
			h.Div(
				h.P(h.Class("project-label"), g.Text(p.Label)),
				h.P(h.Class("project-year"), g.Text(strconv.Itoa(p.Year))),
			),
			h.Button(
				h.Type("button"),
				h.Class("play-button"),
				h.Disabled(),
				h.Aria("hidden", "true"),
				h.TabIndex("-1"),
				icon("play", "icon-sm"),
			),
		),
	)
}

func shortLabel(c models.Category) string {
	if c.Anchor == "" {
		return c.Label
	}
	return content.TitleFromKey(c.Anchor)
}
