// Package expandable adds expand/collapse behavior to scrollable sectioned
// row lists. A SectionList wraps a host-supplied DataProvider, marks each
// expandable section's first row as a toggle for the rest of the section,
// and forwards every query it does not answer itself to the host untouched.
package expandable

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// SectionList is a scrollable list of sections whose first row acts as a
// toggle showing or hiding the rest of the section. The list substitutes
// itself as the provider its row view sees: row counts and header cells
// are answered here from the expand state, everything else passes through
// to the host DataProvider unmodified.
type SectionList struct {
	widget.BaseWidget

	// DefaultExpandable applies to sections whose provider does not
	// implement SectionExpander. Changes take effect on the next query.
	DefaultExpandable bool

	// ExpandAnimation and CollapseAnimation select the row animations for
	// each direction independently. Both default to AnimationFade.
	ExpandAnimation   Animation
	CollapseAnimation Animation

	host  *hostForwarder
	store *stateStore
	gate  *capabilityGate
	view  SectionView

	// headers tracks the currently bound header cell per section; seen
	// remembers cells that have been bound before, so a rebind can be
	// recognized as pool reuse. Entries drop whenever the provider is
	// replaced; the list never owns a cell's lifetime.
	headers map[int]fyne.CanvasObject
	seen    map[fyne.CanvasObject]bool

	// schedule defers work to the next turn of the event loop. fyne.Do in
	// production; tests substitute their own.
	schedule func(func())
}

// NewSectionList creates a section list for the given provider. Every
// section starts collapsed. The provider reference is non-owning: detach
// it with SetProvider(nil) and queries silently fall back to defaults.
func NewSectionList(provider DataProvider) *SectionList {
	l := &SectionList{
		DefaultExpandable: true,
		host:              &hostForwarder{},
		store:             newStateStore(),
		headers:           make(map[int]fyne.CanvasObject),
		seen:              make(map[fyne.CanvasObject]bool),
		schedule:          func(fn func()) { fyne.Do(fn) },
	}
	l.gate = &capabilityGate{
		host:     l.host,
		fallback: func() bool { return l.DefaultExpandable },
	}
	l.host.setProvider(provider)
	l.view = newRowView(l)
	l.ExtendBaseWidget(l)
	l.view.Reload()
	return l
}

// SetProvider replaces the host data provider. Expand state is kept, the
// header cell pool is forgotten and all visible rows rebuild from the new
// provider. A nil provider detaches the host: the list renders empty and
// queries answer defaults.
func (l *SectionList) SetProvider(provider DataProvider) {
	l.host.setProvider(provider)
	l.headers = make(map[int]fyne.CanvasObject)
	l.seen = make(map[fyne.CanvasObject]bool)
	l.view.Reload()
}

// SetObserver replaces the interaction observer. The observer opts into
// callbacks by implementing RowSelectionObserver and/or ExpandObserver;
// a nil or non-capable value simply receives nothing.
func (l *SectionList) SetObserver(observer any) {
	l.host.setObserver(observer)
}

// IsExpanded reports a section's current expand state. Sections never
// toggled read collapsed.
func (l *SectionList) IsExpanded(section int) bool {
	return l.store.isExpanded(section)
}

// CanExpand reports whether a section may expand right now.
func (l *SectionList) CanExpand(section int) bool {
	return l.gate.canExpand(section)
}

// Refresh rebuilds the visible rows from the provider.
func (l *SectionList) Refresh() {
	l.view.Reload()
	l.BaseWidget.Refresh()
}

// CreateRenderer implements fyne.Widget.
func (l *SectionList) CreateRenderer() fyne.WidgetRenderer {
	if obj, ok := l.view.(fyne.CanvasObject); ok {
		return widget.NewSimpleRenderer(obj)
	}
	return widget.NewSimpleRenderer(container.NewStack())
}
