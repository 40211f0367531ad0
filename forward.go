package expandable

import "fyne.io/fyne/v2"

// hostForwarder holds the non-owning references to the host-supplied
// provider and observer and routes every non-intercepted call to them.
// Both references are nullable: a detached or non-capable host turns a
// call into a default answer or a silent drop, never a crash.
type hostForwarder struct {
	provider DataProvider
	observer any
}

func (f *hostForwarder) setProvider(p DataProvider) { f.provider = p }
func (f *hostForwarder) setObserver(o any)          { f.observer = o }

// rowCount returns the host's full row count, 0 with no provider attached.
func (f *hostForwarder) rowCount(section int) int {
	if f.provider == nil {
		return 0
	}
	return f.provider.RowCount(section)
}

// cellForRow builds a row through the host provider.
func (f *hostForwarder) cellForRow(id RowID) fyne.CanvasObject {
	if f.provider == nil {
		return nil
	}
	return f.provider.CellForRow(id)
}

// sectionCount reports the host's section count. A provider without the
// SectionCounter capability has a single section; no provider means none.
func (f *hostForwarder) sectionCount() int {
	if sc, ok := f.provider.(SectionCounter); ok {
		return sc.SectionCount()
	}
	if f.provider == nil {
		return 0
	}
	return 1
}

// canExpandSection consults the host's SectionExpander capability, falling
// back to the given default when the host does not implement it.
func (f *hostForwarder) canExpandSection(section int, fallback bool) bool {
	if se, ok := f.provider.(SectionExpander); ok {
		return se.CanExpandSection(section)
	}
	return fallback
}

// headerCell builds a section's header through the HeaderCellProvider
// capability, falling back to the plain row constructor.
func (f *hostForwarder) headerCell(section int) fyne.CanvasObject {
	if hp, ok := f.provider.(HeaderCellProvider); ok {
		return hp.ExpandableHeaderCell(section)
	}
	return f.cellForRow(RowID{Section: section})
}

// notifySelected forwards a tap to the host observer. Dropped when the
// capability is missing.
func (f *hostForwarder) notifySelected(id RowID) {
	if o, ok := f.observer.(RowSelectionObserver); ok {
		o.RowSelected(id)
	}
}

// notifyExpand forwards a lifecycle phase to the host observer.
func (f *hostForwarder) notifyExpand(section int, phase Phase) {
	if o, ok := f.observer.(ExpandObserver); ok {
		o.ExpandStateChanged(section, phase)
	}
}
