package markdown

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRenderParagraph(t *testing.T) {
	t.Parallel()

	html, err := New().Render("From stills to *motion* to type.")
	require.NoError(t, err)
	require.Equal(t, "<p>From stills to <em>motion</em> to type.</p>", html)
}

func TestRenderStripsScripts(t *testing.T) {
	t.Parallel()

	html, err := New().Render("hello <script>alert(1)</script>")
	require.NoError(t, err)
	require.NotContains(t, html, "<script")
	require.Contains(t, html, "hello")
}

func TestRenderLinksGetNofollow(t *testing.T) {
	t.Parallel()

	html, err := New().Render("[studio](https://example.com)")
	require.NoError(t, err)
	require.Contains(t, html, "nofollow")
	require.Contains(t, html, "noopener")
	require.Contains(t, html, `target="_blank"`)
}

func TestRenderEmpty(t *testing.T) {
	t.Parallel()

	html, err := New().Render("   ")
	require.NoError(t, err)
	require.Empty(t, html)
}
