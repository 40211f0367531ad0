// Package model holds the demo's UI state as Fyne data bindings.
package model

import "fyne.io/fyne/v2/data/binding"

// AppState is the demo's observable state. UI components bind to these
// values for reactive updates.
type AppState struct {
	// LastEvent is the most recent expand lifecycle event, shown in the
	// status bar.
	LastEvent binding.String

	// Animation and capability settings, mirrored from preferences.
	ExpandAnimation   binding.String
	CollapseAnimation binding.String
	DefaultExpandable binding.Bool
}

// NewAppState creates an AppState with initialized bindings.
func NewAppState() *AppState {
	expandable := binding.NewBool()
	_ = expandable.Set(true)

	expandAnim := binding.NewString()
	_ = expandAnim.Set("fade")
	collapseAnim := binding.NewString()
	_ = collapseAnim.Set("fade")

	return &AppState{
		LastEvent:         binding.NewString(),
		ExpandAnimation:   expandAnim,
		CollapseAnimation: collapseAnim,
		DefaultExpandable: expandable,
	}
}
