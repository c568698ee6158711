package models

import "strings"

// ChannelKind identifies a contact channel
type ChannelKind string

const (
	ChannelEmail    ChannelKind = "email"
	ChannelPhone    ChannelKind = "phone"
	ChannelSocial   ChannelKind = "social"
	ChannelLocation ChannelKind = "location"
)

// ContactChannel represents one contact card
type ContactChannel struct {
	Kind  ChannelKind `json:"kind" yaml:"kind"`
	Label string      `json:"label" yaml:"label"`
	Value string      `json:"value" yaml:"value"`
	Href  string      `json:"href,omitempty" yaml:"href"`
}

// IsLink reports whether the card is rendered as a hyperlink
func (c ContactChannel) IsLink() bool {
	return c.Href != ""
}

// IsExternal reports whether the link leaves the site
func (c ContactChannel) IsExternal() bool {
	return strings.HasPrefix(c.Href, "https://") || strings.HasPrefix(c.Href, "http://")
}
