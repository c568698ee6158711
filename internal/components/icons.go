package components

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

func icon(name, class string) g.Node {
	if name == "" {
		return nil
	}
	return h.Span(
		h.Class("icon "+class),
		g.Attr("data-icon", "lucide:"+name),
		h.Aria("hidden", "true"),
	)
}
