package components

import (
	"context"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"flames.blue/internal/models"
	"flames.blue/internal/motion"
)

// Hero renders the landing block over the 3D scene. Rendering it enables
// smooth scrolling for the whole page.
func Hero(ctx context.Context, doc *Document, site *models.Site, sceneURL string) g.Node {
	doc.EnableSmoothScroll()

	hero := site.Hero
	return h.Div(
		h.ID("home"),
		h.Class("hero"),
		h.Div(h.Class("hero-gradient"), h.Aria("hidden", "true")),
		fromTempl(ctx, Scene(sceneURL)),
		h.Div(
			h.Class("hero-copy"),
			h.H1(h.Class("hero-headline"), animate("hero-headline", motion.Mount(0)), g.Text(hero.Headline)),
			h.P(h.Class("hero-subheading"), animate("hero-subheading", motion.Mount(0.15)), g.Text(hero.Subheading)),
			h.Div(
				h.Class("hero-actions"),
				animate("hero-actions", motion.Mount(0.3)),
				h.A(h.Href(hero.PrimaryCTA.Href), h.Class("btn btn-primary"),
					g.Text(hero.PrimaryCTA.Label), icon("arrow-right", "icon-sm")),
				h.A(h.Href(hero.SecondaryCTA.Href), h.Class("btn btn-ghost"), g.Text(hero.SecondaryCTA.Label)),
			),
		),
	)
}
