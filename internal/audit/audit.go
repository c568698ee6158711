// Package audit inspects a rendered page: anchor targets, contact links and
// the one-shot behaviour of its entrance animations.
package audit

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"flames.blue/internal/motion"
)

// Severity grades an issue
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Issue is one finding on the page
type Issue struct {
	Severity Severity `json:"severity"`
	Code     string   `json:"code"`
	Message  string   `json:"message"`
}

// Element is an animated element in document order
type Element struct {
	ID   string      `json:"id"`
	Spec motion.Spec `json:"-"`
}

// Report is the result of auditing one page
type Report struct {
	IDs        []string       `json:"ids"`
	NavTargets []string       `json:"nav_targets"`
	Animated   []Element      `json:"animated"`
	Reveals    map[string]int `json:"reveals"`
	Footer     string         `json:"footer"`
	Issues     []Issue        `json:"issues"`
}

// HasErrors reports whether any issue is an error
func (r *Report) HasErrors() bool {
	return len(r.Errors()) > 0
}

// Errors returns the error-severity issues
func (r *Report) Errors() []Issue {
	var out []Issue
	for _, is := range r.Issues {
		if is.Severity == SeverityError {
			out = append(out, is)
		}
	}
	return out
}

func (r *Report) add(sev Severity, code, format string, args ...any) {
	r.Issues = append(r.Issues, Issue{Severity: sev, Code: code, Message: fmt.Sprintf(format, args...)})
}

var telPattern = regexp.MustCompile(`^\+?[0-9]+$`)

type link struct {
	href   string
	target string
	rel    string
	inNav  bool
}

// Check parses a rendered page and audits it
func Check(r io.Reader) (*Report, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse page: %w", err)
	}

	rep := &Report{}
	ids := map[string]bool{}
	var links []link

	var walk func(n *html.Node, inNav bool)
	walk = func(n *html.Node, inNav bool) {
		if n.Type == html.ElementNode {
			if id := attr(n, "id"); id != "" {
				if ids[id] {
					rep.add(SeverityError, "duplicate-id", "id %q is used more than once", id)
				}
				ids[id] = true
				rep.IDs = append(rep.IDs, id)
			}
			switch n.DataAtom {
			case atom.Nav:
				inNav = true
			case atom.A:
				if href, ok := attrOK(n, "href"); ok {
					links = append(links, link{href: href, target: attr(n, "target"), rel: attr(n, "rel"), inNav: inNav})
				}
			case atom.Footer:
				rep.Footer = strings.TrimSpace(textOf(n))
			}
			if _, ok := attrOK(n, motion.AttrTrigger); ok {
				rep.animated(n)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c, inNav)
		}
	}
	walk(doc, false)

	for _, l := range links {
		if l.inNav {
			rep.NavTargets = append(rep.NavTargets, l.href)
		}
		rep.checkLink(l, ids)
	}

	rep.Reveals = SimulateScroll(rep.Animated, 3, 0.25)
	for _, el := range rep.Animated {
		n := rep.Reveals[el.ID]
		switch {
		case n == 0:
			rep.add(SeverityError, "reveal-missed", "%s never revealed while scrolling", el.ID)
		case n > 1 && el.Spec.Once:
			rep.add(SeverityError, "reveal-repeated", "%s revealed %d times", el.ID, n)
		}
	}
	return rep, nil
}

func (r *Report) animated(n *html.Node) {
	id := attr(n, motion.AttrID)
	if id == "" {
		r.add(SeverityError, "invalid-motion", "<%s> is animated but has no %s", n.Data, motion.AttrID)
		return
	}
	spec, err := motion.ParseAttrs(func(name string) (string, bool) { return attrOK(n, name) })
	if err != nil {
		r.add(SeverityError, "invalid-motion", "%s: %v", id, err)
		return
	}
	for _, el := range r.Animated {
		if el.ID == id {
			r.add(SeverityError, "invalid-motion", "%s is used by more than one element", id)
			return
		}
	}
	r.Animated = append(r.Animated, Element{ID: id, Spec: spec})
}

func (r *Report) checkLink(l link, ids map[string]bool) {
	switch {
	case l.href == "#":
		r.add(SeverityWarning, "empty-anchor", "link to bare # goes nowhere")
	case strings.HasPrefix(l.href, "#"):
		if !ids[strings.TrimPrefix(l.href, "#")] {
			r.add(SeverityError, "broken-anchor", "%s has no matching element", l.href)
		}
	case strings.HasPrefix(l.href, "mailto:"):
		if addr := strings.TrimPrefix(l.href, "mailto:"); !strings.Contains(addr, "@") {
			r.add(SeverityError, "invalid-mailto", "%s is not an email address", l.href)
		}
	case strings.HasPrefix(l.href, "tel:"):
		if !telPattern.MatchString(strings.TrimPrefix(l.href, "tel:")) {
			r.add(SeverityError, "invalid-tel", "%s is not a dialable number", l.href)
		}
	case strings.HasPrefix(l.href, "http://"), strings.HasPrefix(l.href, "https://"):
		if l.target == "_blank" && !strings.Contains(l.rel, "noopener") {
			r.add(SeverityWarning, "unsafe-external-link", "%s opens a new tab without noopener", l.href)
		}
	}
}

func attrOK(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

func attr(n *html.Node, key string) string {
	v, _ := attrOK(n, key)
	return v
}

func textOf(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}
