package models

// Section keys in composition order
const (
	SectionHero     = "hero"
	SectionServices = "services"
	SectionWork     = "work"
	SectionAbout    = "about"
	SectionContact  = "contact"
)

// Site is the content registry for one theme variant
type Site struct {
	Theme           string        `json:"theme" yaml:"theme"`
	Title           string        `json:"title" yaml:"title"`
	Description     string        `json:"description" yaml:"description"`
	Brand           Brand         `json:"brand" yaml:"brand"`
	Hero            Hero          `json:"hero" yaml:"hero"`
	NavLinks        []NavLink     `json:"nav_links" yaml:"nav_links"`
	HireCTA         Link          `json:"hire_cta" yaml:"hire_cta"`
	Sections        []string      `json:"sections" yaml:"sections"`
	Services        []ServiceItem `json:"services" yaml:"services"`
	Work            Work          `json:"work" yaml:"work"`
	About           About         `json:"about" yaml:"about"`
	Contact         Contact       `json:"contact" yaml:"contact"`
	PlaceholderYear int           `json:"placeholder_year" yaml:"placeholder_year"`
}

// Brand holds the logo mark and names shown in the navbar and footer
type Brand struct {
	Mark    string `json:"mark" yaml:"mark"`
	Name    string `json:"name" yaml:"name"`
	Tagline string `json:"tagline" yaml:"tagline"`
}

// Hero holds the copy above the fold
type Hero struct {
	Headline     string `json:"headline" yaml:"headline"`
	Subheading   string `json:"subheading" yaml:"subheading"`
	PrimaryCTA   Link   `json:"primary_cta" yaml:"primary_cta"`
	SecondaryCTA Link   `json:"secondary_cta" yaml:"secondary_cta"`
}

// Work holds the showcase heading and its categories
type Work struct {
	Heading    string     `json:"heading" yaml:"heading"`
	Categories []Category `json:"categories" yaml:"categories"`
}

// About holds the biography and stat cards
type About struct {
	Heading string `json:"heading" yaml:"heading"`
	Bio     string `json:"bio" yaml:"bio"`
	Stats   []Stat `json:"stats" yaml:"stats"`
}

// Stat is a literal number shown on an About card
type Stat struct {
	Value string `json:"value" yaml:"value"`
	Label string `json:"label" yaml:"label"`
}

// Contact holds the contact heading and channel cards
type Contact struct {
	Heading  string           `json:"heading" yaml:"heading"`
	Channels []ContactChannel `json:"channels" yaml:"channels"`
}

// HasSection reports whether key is part of the page composition
func (s *Site) HasSection(key string) bool {
	for _, k := range s.Sections {
		if k == key {
			return true
		}
	}
	return false
}

// PrimaryWorkAnchor returns the anchor that "view work" style links target
func (s *Site) PrimaryWorkAnchor() string {
	if len(s.Work.Categories) > 1 && s.Work.Categories[0].Anchor != "" {
		return s.Work.Categories[0].Anchor
	}
	return SectionWork
}

// Anchors returns the element ids the composed page exposes, in page order
func (s *Site) Anchors() []string {
	var anchors []string
	for _, key := range s.Sections {
		switch key {
		case SectionHero:
			anchors = append(anchors, "home")
		case SectionWork:
			anchors = append(anchors, SectionWork)
			for _, c := range s.Work.Categories {
				if c.Anchor != "" {
					anchors = append(anchors, c.Anchor)
				}
			}
		default:
			anchors = append(anchors, key)
		}
	}
	return anchors
}
