package models

// NavLink is an in-page anchor link shown in the navbar
type NavLink struct {
	Anchor string `json:"anchor" yaml:"anchor"`
	Label  string `json:"label" yaml:"label"`
}

// Href returns the fragment link for the anchor
func (l NavLink) Href() string {
	return "#" + l.Anchor
}

// Link is a labelled hyperlink such as a call to action
type Link struct {
	Label string `json:"label" yaml:"label"`
	Href  string `json:"href" yaml:"href"`
}
