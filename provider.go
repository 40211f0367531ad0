package expandable

import "fyne.io/fyne/v2"

// RowID addresses a row within a section of a SectionList.
type RowID struct {
	Section int
	Row     int
}

// DataProvider supplies row content for a SectionList. Row and section
// counts stay fully owned by the provider; the list only reshapes what is
// visible.
//
// Providers may additionally implement any of the optional capability
// interfaces below. Capabilities are discovered with type assertions at
// call time, the same way fyne discovers Tappable or Disableable on a
// canvas object.
type DataProvider interface {
	// RowCount returns the full number of rows in a section, header
	// included, regardless of expand state.
	RowCount(section int) int

	// CellForRow constructs the canvas object for one row.
	CellForRow(id RowID) fyne.CanvasObject
}

// SectionCounter is an optional DataProvider capability reporting how many
// sections the list has. Providers without it get a single section.
type SectionCounter interface {
	SectionCount() int
}

// SectionExpander is an optional DataProvider capability deciding per
// section whether it may expand. Without it every section follows the
// list's DefaultExpandable setting.
type SectionExpander interface {
	CanExpandSection(section int) bool
}

// HeaderCellProvider is an optional DataProvider capability constructing
// the header cell (row 0) of an expandable section. Without it the header
// comes from CellForRow like any other row.
type HeaderCellProvider interface {
	ExpandableHeaderCell(section int) fyne.CanvasObject
}

// RowSelectionObserver is an optional observer capability receiving row
// taps. Taps on expandable headers are delivered here before the toggle
// runs, so host selection logic always sees them.
type RowSelectionObserver interface {
	RowSelected(id RowID)
}

// ExpandObserver is an optional observer capability receiving the expand
// lifecycle of every section.
type ExpandObserver interface {
	ExpandStateChanged(section int, phase Phase)
}

// HeaderCell is implemented by header cell canvas objects that want the
// expand lifecycle of their own section. reused marks the replay a
// recycled cell receives on rebind, as opposed to a real transition.
type HeaderCell interface {
	ExpandPhase(phase Phase, reused bool)
}
