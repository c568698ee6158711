package components

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"flames.blue/internal/models"
)

// Navbar renders the fixed header with the anchor links of site
func Navbar(site *models.Site) g.Node {
	links := make([]g.Node, 0, len(site.NavLinks))
	for _, l := range site.NavLinks {
		links = append(links, h.A(h.Href(l.Href()), h.Class("nav-link"), g.Text(l.Label)))
	}

	return h.Header(
		h.Class("navbar"),
		h.Div(
			h.Class("navbar-inner"),
			h.A(
				h.Href("#home"),
				h.Class("brand"),
				h.Span(h.Class("brand-mark"), g.Text(site.Brand.Mark)),
				h.Div(
					h.P(h.Class("brand-name"), g.Text(site.Brand.Name)),
					h.P(h.Class("brand-tagline"), g.Text(site.Brand.Tagline)),
				),
			),
			h.Nav(h.Class("nav-links"), h.Aria("label", "Primary"), g.Group(links)),
			g.If(site.HireCTA.Href != "",
				h.A(h.Href(site.HireCTA.Href), h.Class("btn btn-primary nav-cta"), g.Text(site.HireCTA.Label)),
			),
		),
	)
}
