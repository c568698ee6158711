package content

import (
	"errors"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flames.blue/internal/models"
)

func TestLoadEmbeddedRegistry(t *testing.T) {
	t.Parallel()

	reg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, []string{"dark", "light"}, reg.Themes())

	dark, err := reg.Site("dark")
	require.NoError(t, err)
	assert.Len(t, dark.Services, 3)
	assert.Len(t, dark.Work.Categories, 3)
	for _, c := range dark.Work.Categories {
		assert.Equal(t, 6, c.Count, c.Key)
	}
	assert.Equal(t, []string{"hero", "services", "work", "about", "contact"}, dark.Sections)

	light, err := reg.Site("light")
	require.NoError(t, err)
	assert.Len(t, light.Services, 3)
	require.Len(t, light.Work.Categories, 1)
	assert.Equal(t, 9, light.Work.Categories[0].Count)
	assert.Equal(t, "Work", light.Work.Categories[0].Label, "label derived from key")
	assert.Equal(t, "Home", light.NavLinks[0].Label)
}

func TestNavLinksTargetRenderedAnchors(t *testing.T) {
	t.Parallel()

	reg, err := Load("")
	require.NoError(t, err)
	for _, theme := range reg.Themes() {
		site, err := reg.Site(theme)
		require.NoError(t, err)
		anchors := map[string]bool{}
		for _, a := range site.Anchors() {
			anchors[a] = true
		}
		for _, l := range site.NavLinks {
			assert.True(t, anchors[l.Anchor], "%s: nav link %s has no target", theme, l.Href())
		}
	}
}

func TestUnknownTheme(t *testing.T) {
	t.Parallel()

	reg, err := Load("")
	require.NoError(t, err)
	_, err = reg.Site("sepia")
	require.ErrorIs(t, err, ErrUnknownTheme)
}

func TestValidateRejectsMismatchedAnchors(t *testing.T) {
	t.Parallel()

	// A single-grid page whose navbar still links the per-category anchors.
	doc := `
sections: [hero, work, contact]
nav_links:
  - { anchor: home }
  - { anchor: photo }
hero:
  primary_cta: { label: View Work, href: "#photo" }
  secondary_cta: { label: Book, href: "#contact" }
work:
  categories:
    - { key: work, count: 9 }
`
	reg, err := LoadFS(fstest.MapFS{"broken.yaml": {Data: []byte(doc)}})
	require.Nil(t, reg)
	require.ErrorIs(t, err, ErrInvalidSite)
	assert.Contains(t, err.Error(), "nav link Photo links to #photo")
	assert.Contains(t, err.Error(), "hero primary cta links to #photo")
}

func TestValidateContactChannels(t *testing.T) {
	t.Parallel()

	site := &models.Site{
		Theme:    "x",
		Sections: []string{models.SectionContact},
		Contact: models.Contact{Channels: []models.ContactChannel{
			{Kind: models.ChannelEmail, Value: "a@b.c", Href: "mailto:other@b.c"},
			{Kind: models.ChannelPhone, Value: "1", Href: "+1"},
			{Kind: models.ChannelLocation, Value: "Here", Href: "#"},
			{Kind: "fax"},
		}},
	}
	err := Validate(site)
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrInvalidSite))
	for _, want := range []string{"email channel", "tel:+", "location channel", "fax"} {
		assert.Contains(t, err.Error(), want)
	}
}

func TestThemeDefaultsToFileName(t *testing.T) {
	t.Parallel()

	doc := "sections: [contact]\n"
	reg, err := LoadFS(fstest.MapFS{"mono.yaml": {Data: []byte(doc)}})
	require.NoError(t, err)
	require.Equal(t, []string{"mono"}, reg.Themes())
}

func TestLoadFSWithoutFiles(t *testing.T) {
	t.Parallel()

	_, err := LoadFS(fstest.MapFS{})
	require.Error(t, err)
}
