package content

import (
	"errors"
	"fmt"
	"strings"

	"flames.blue/internal/models"
)

var knownSections = map[string]bool{
	models.SectionHero:     true,
	models.SectionServices: true,
	models.SectionWork:     true,
	models.SectionAbout:    true,
	models.SectionContact:  true,
}

// Validate checks a site for internal consistency. Every in-page link must
// target an anchor the composed page actually renders.
func Validate(site *models.Site) error {
	var errs []error
	add := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf(format, args...))
	}

	if site.Theme == "" {
		add("theme is required")
	}
	if len(site.Sections) == 0 {
		add("at least one section is required")
	}
	seen := map[string]bool{}
	for _, key := range site.Sections {
		if !knownSections[key] {
			add("unknown section %q", key)
		}
		if seen[key] {
			add("section %q listed twice", key)
		}
		seen[key] = true
	}

	anchors := map[string]bool{}
	for _, a := range site.Anchors() {
		if anchors[a] {
			add("anchor %q rendered twice", a)
		}
		anchors[a] = true
	}
	checkHref := func(where, href string) {
		if !strings.HasPrefix(href, "#") {
			return
		}
		if !anchors[strings.TrimPrefix(href, "#")] {
			add("%s links to %s which is not rendered", where, href)
		}
	}

	for _, l := range site.NavLinks {
		if l.Anchor == "" {
			add("nav link %q has no anchor", l.Label)
			continue
		}
		checkHref("nav link "+l.Label, l.Href())
	}
	if site.HasSection(models.SectionHero) {
		checkHref("hero primary cta", site.Hero.PrimaryCTA.Href)
		checkHref("hero secondary cta", site.Hero.SecondaryCTA.Href)
	}
	checkHref("hire cta", site.HireCTA.Href)

	if site.HasSection(models.SectionWork) {
		if len(site.Work.Categories) == 0 {
			add("work section needs at least one category")
		}
		keys := map[string]bool{}
		for _, c := range site.Work.Categories {
			if c.Key == "" {
				add("work category without key")
			}
			if keys[c.Key] {
				add("work category %q listed twice", c.Key)
			}
			keys[c.Key] = true
			if c.Count <= 0 {
				add("work category %q needs a positive count", c.Key)
			}
		}
	}
	if site.HasSection(models.SectionServices) && len(site.Services) == 0 {
		add("services section needs at least one service")
	}

	for _, ch := range site.Contact.Channels {
		switch ch.Kind {
		case models.ChannelEmail:
			if ch.Href != "mailto:"+ch.Value {
				add("email channel href %q does not match %q", ch.Href, ch.Value)
			}
		case models.ChannelPhone:
			if !strings.HasPrefix(ch.Href, "tel:+") {
				add("phone channel href %q must use tel:+", ch.Href)
			}
		case models.ChannelSocial:
			if !ch.IsExternal() {
				add("social channel href %q must be an external URL", ch.Href)
			}
		case models.ChannelLocation:
			if ch.Href != "" {
				add("location channel must not be a link")
			}
		default:
			add("unknown contact channel kind %q", ch.Kind)
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidSite, errors.Join(errs...))
}
