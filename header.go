package expandable

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// Compile-time interface check.
var _ HeaderCell = (*HeaderRow)(nil)

// HeaderRow is a ready-made header cell: a bold title next to a chevron
// that tracks the section's expand state. It implements HeaderCell, so a
// SectionList drives the chevron through real transitions and through the
// replay a recycled cell receives.
type HeaderRow struct {
	widget.BaseWidget

	title *widget.Label
	icon  *widget.Icon

	// OnPhase, when set, observes every phase this header receives.
	OnPhase func(phase Phase, reused bool)
}

// NewHeaderRow creates a header row with the collapsed affordance.
func NewHeaderRow(title string) *HeaderRow {
	h := &HeaderRow{
		title: widget.NewLabel(title),
		icon:  widget.NewIcon(theme.MenuExpandIcon()),
	}
	h.title.TextStyle = fyne.TextStyle{Bold: true}
	h.ExtendBaseWidget(h)
	return h
}

// SetTitle updates the header text, e.g. when a recycled cell is rebound
// to another section.
func (h *HeaderRow) SetTitle(title string) {
	h.title.SetText(title)
}

// Title returns the current header text.
func (h *HeaderRow) Title() string {
	return h.title.Text
}

// ExpandPhase implements HeaderCell. The chevron flips on the will-phase
// so the affordance answers the tap immediately; the did-phase settles it.
func (h *HeaderRow) ExpandPhase(phase Phase, reused bool) {
	switch phase {
	case WillExpand, DidExpand:
		h.icon.SetResource(theme.MenuDropDownIcon())
	case WillCollapse, DidCollapse:
		h.icon.SetResource(theme.MenuExpandIcon())
	}
	if h.OnPhase != nil {
		h.OnPhase(phase, reused)
	}
}

// CreateRenderer implements fyne.Widget.
func (h *HeaderRow) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(
		container.NewBorder(nil, nil, h.icon, nil, h.title),
	)
}
