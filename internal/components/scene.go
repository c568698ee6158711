package components

import (
	"context"
	"io"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
)

// SceneViewerModule is the vendor script that defines <spline-viewer>
const SceneViewerModule = "https://unpkg.com/@splinetool/viewer@1.9.82/build/spline-viewer.js"

// Scene is the embedded 3D scene widget. It only knows its scene URL; load
// failures are handled by the widget itself, and an empty URL renders an
// empty region.
func Scene(url string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<div class="scene" aria-hidden="true">`); err != nil {
			return err
		}
		if url != "" {
			markup := `<script type="module" src="` + templ.EscapeString(SceneViewerModule) + `"></script>` +
				`<spline-viewer url="` + templ.EscapeString(url) + `" loading-anim-type="none"></spline-viewer>`
			if _, err := io.WriteString(w, markup); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</div>`)
		return err
	})
}

// fromTempl adapts a templ component into the gomponents tree
func fromTempl(ctx context.Context, c templ.Component) g.Node {
	return g.NodeFunc(func(w io.Writer) error {
		return c.Render(ctx, w)
	})
}
