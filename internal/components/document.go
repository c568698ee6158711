// Package components renders the portfolio page sections as gomponents nodes.
package components

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Document carries page-level flags that sections raise while they are
// built. Flags are write-once for the lifetime of the rendered page.
type Document struct {
	Title       string
	Description string
	Theme       string

	smoothScroll bool
}

// EnableSmoothScroll turns on smooth anchor scrolling for the page
func (d *Document) EnableSmoothScroll() {
	d.smoothScroll = true
}

// SmoothScroll reports whether a section enabled smooth scrolling
func (d *Document) SmoothScroll() bool {
	return d.smoothScroll
}

// revealFallback shows every animated element when scripts are disabled
const revealFallback = `[data-motion]{opacity:1!important;transform:none!important}`

// Layout wraps body in the html document
func (d *Document) Layout(body ...g.Node) g.Node {
	return h.Doctype(
		h.HTML(
			h.Lang("en"),
			h.Class("theme-"+d.Theme),
			h.Head(
				h.Meta(h.Charset("utf-8")),
				h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1")),
				g.El("title", g.Text(d.Title)),
				g.If(d.Description != "", h.Meta(h.Name("description"), h.Content(d.Description))),
				h.Link(h.Rel("stylesheet"), h.Href("/static/site.css")),
				h.Script(h.Src("/static/motion.js"), h.Defer()),
				h.NoScript(g.El("style", g.Raw(revealFallback))),
			),
			h.Body(
				h.Class("site"),
				g.If(d.smoothScroll, g.Attr("data-smooth-scroll", "true")),
				g.Group(body),
			),
		),
	)
}
