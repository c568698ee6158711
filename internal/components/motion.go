package components

import (
	g "maragu.dev/gomponents"

	"flames.blue/internal/motion"
)

// animate attaches an entrance animation to the element it is placed in.
// The element is drawn in its Initial state until the runtime reveals it.
func animate(id string, spec motion.Spec) g.Node {
	attrs := spec.Attrs()
	nodes := make([]g.Node, 0, len(attrs)+2)
	nodes = append(nodes, g.Attr(motion.AttrID, id))
	for _, a := range attrs {
		nodes = append(nodes, g.Attr(a.Name, a.Value))
	}
	nodes = append(nodes, g.Attr("style", spec.Initial.CSS()))
	return g.Group(nodes)
}
