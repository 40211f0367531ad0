// Package storage persists the demo's preferences as JSON.
package storage

// Preferences are the demo's persisted settings. Expand/collapse state is
// deliberately not among them: it lives and dies with the process.
type Preferences struct {
	ExpandAnimation   string `json:"expandAnimation"`
	CollapseAnimation string `json:"collapseAnimation"`
	DefaultExpandable bool   `json:"defaultExpandable"`
}

// DefaultPreferences returns the out-of-the-box settings.
func DefaultPreferences() Preferences {
	return Preferences{
		ExpandAnimation:   "fade",
		CollapseAnimation: "fade",
		DefaultExpandable: true,
	}
}

// Repository defines preference persistence.
type Repository interface {
	// Load returns the stored preferences, or the defaults when nothing
	// has been stored yet.
	Load() (Preferences, error)
	Save(prefs Preferences) error
}
