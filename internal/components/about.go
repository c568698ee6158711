package components

import (
	"fmt"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"flames.blue/internal/models"
	"flames.blue/internal/motion"
)

// About renders the biography and the stat cards. bioHTML must already be
// sanitised.
func About(site *models.Site, bioHTML string) g.Node {
	stats := make([]g.Node, 0, len(site.About.Stats))
	for i, s := range site.About.Stats {
		stats = append(stats, h.Div(
			h.Class("card stat-card"),
			animate(fmt.Sprintf("stat-%d", i+1), motion.StatCard(i)),
			h.P(h.Class("stat-value"), g.Text(s.Value)),
			h.P(h.Class("stat-label"), g.Text(s.Label)),
		))
	}

	return h.Section(
		h.ID(models.SectionAbout),
		h.Class("section"),
		h.Div(
			h.Class("container container-narrow"),
			h.H2(h.Class("section-title"), animate("about-heading", motion.Heading()), g.Text(site.About.Heading)),
			h.Div(h.Class("about-bio"), animate("about-bio", motion.FadeUp(10, 0.1)), g.Raw(bioHTML)),
			h.Div(h.Class("grid grid-3 stats-grid"), g.Group(stats)),
		),
	)
}
