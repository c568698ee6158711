package components

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"flames.blue/internal/models"
	"flames.blue/internal/motion"
)

var channelIcons = map[models.ChannelKind]string{
	models.ChannelEmail:    "mail",
	models.ChannelPhone:    "phone",
	models.ChannelSocial:   "instagram",
	models.ChannelLocation: "map-pin",
}

// Contact renders one card per contact channel. Channels without a link
// render as plain, non-interactive cards.
func Contact(site *models.Site) g.Node {
	cards := make([]g.Node, 0, len(site.Contact.Channels))
	for _, ch := range site.Contact.Channels {
		cards = append(cards, contactCard(ch))
	}

	return h.Section(
		h.ID(models.SectionContact),
		h.Class("section"),
		h.Div(
			h.Class("container container-narrow"),
			h.H2(h.Class("section-title"), animate("contact-heading", motion.Heading()), g.Text(site.Contact.Heading)),
			h.Div(h.Class("grid grid-2 contact-grid"), g.Group(cards)),
		),
	)
}

func contactCard(ch models.ContactChannel) g.Node {
	body := []g.Node{
		h.Class("card contact-card"),
		g.Attr("data-channel", string(ch.Kind)),
		h.Div(h.Class("contact-icon"), icon(channelIcons[ch.Kind], "icon-md")),
		h.Div(
			h.P(h.Class("contact-label"), g.Text(ch.Label)),
			h.P(h.Class("contact-value"), g.Text(ch.Value)),
		),
	}
	if !ch.IsLink() {
		return h.Div(body...)
	}
	link := append([]g.Node{h.Href(ch.Href)}, body...)
	if ch.IsExternal() {
		link = append(link, h.Target("_blank"), h.Rel("noopener noreferrer"))
	}
	return h.A(link...)
}
