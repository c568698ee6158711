package components

import (
	"fmt"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"flames.blue/internal/models"
	"flames.blue/internal/motion"
)

// Services renders one card per service, staggered by position
func Services(site *models.Site) g.Node {
	examples := "#" + site.PrimaryWorkAnchor()
	cards := make([]g.Node, 0, len(site.Services))
	for i, s := range site.Services {
		cards = append(cards, h.Div(
			h.Class("card service-card"),
			animate(fmt.Sprintf("service-%d", i+1), motion.ServiceCard(i)),
			h.Div(h.Class("service-icon bg-gradient-to-tr "+s.Gradient), icon(s.Icon, "icon-md")),
			h.H3(h.Class("card-title"), g.Text(s.Title)),
			h.P(h.Class("card-text"), g.Text(s.Description)),
			h.A(h.Href(examples), h.Class("card-link"), g.Text("See examples"), icon("arrow-right", "icon-sm")),
		))
	}

	return h.Section(
		h.ID(models.SectionServices),
		h.Class("section"),
		h.Div(
			h.Class("container"),
			h.H2(h.Class("section-title"), animate("services-heading", motion.Heading()), g.Text("Services")),
			h.Div(h.Class("grid grid-3 services-grid"), g.Group(cards)),
		),
	)
}
