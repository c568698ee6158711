package components

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"flames.blue/internal/models"
)

// Footer renders the copyright line for year
func Footer(site *models.Site, year int) g.Node {
	return h.Footer(
		h.Class("footer"),
		g.Textf("© %d %s — All rights reserved.", year, site.Brand.Name),
	)
}
