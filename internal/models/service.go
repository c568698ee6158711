package models

// ServiceItem represents one offered service card
type ServiceItem struct {
	Icon        string `json:"icon" yaml:"icon"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	Gradient    string `json:"gradient" yaml:"gradient"`
}
