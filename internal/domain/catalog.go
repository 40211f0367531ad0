// Package domain holds the demo application's data model.
package domain

// Catalog is the grouped collection of items the demo list displays.
type Catalog struct {
	Sections []Section `yaml:"sections"`
}

// Section is one expandable group of items. A nil Expandable follows the
// list's global default instead of forcing a per-section answer.
type Section struct {
	Title      string `yaml:"title"`
	Expandable *bool  `yaml:"expandable,omitempty"`
	Items      []Item `yaml:"items"`
}

// Item is a single body row.
type Item struct {
	Name   string `yaml:"name"`
	Detail string `yaml:"detail,omitempty"`
}

// CanExpand resolves the section's expandability against the given global
// default.
func (s Section) CanExpand(fallback bool) bool {
	if s.Expandable == nil {
		return fallback
	}
	return *s.Expandable
}
