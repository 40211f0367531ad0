package expandable

import "fyne.io/fyne/v2"

// The list is itself a full provider, so the row view never needs to know
// about the host.
var (
	_ DataProvider   = (*SectionList)(nil)
	_ SectionCounter = (*SectionList)(nil)
)

// SectionCount forwards the host's section count.
func (l *SectionList) SectionCount() int {
	return l.host.sectionCount()
}

// RowCount answers the visible row count for a section: the host's full
// count when the section cannot expand or is expanded, zero when the host
// has no rows at all, and exactly the header row otherwise.
func (l *SectionList) RowCount(section int) int {
	full := l.host.rowCount(section)
	if !l.gate.canExpand(section) {
		return full
	}
	if full == 0 {
		return 0
	}
	if l.store.isExpanded(section) {
		return full
	}
	return 1
}

// CellForRow builds one visible row. Non-header rows and rows of sections
// that cannot expand pass through the host untouched. Header cells come
// from the HeaderCellProvider capability; when the host hands back a
// recycled cell, a deferred phase replay brings its affordance in line
// with the section's present state.
func (l *SectionList) CellForRow(id RowID) fyne.CanvasObject {
	if id.Row != 0 || !l.gate.canExpand(id.Section) {
		return l.host.cellForRow(id)
	}

	cell := l.host.headerCell(id.Section)
	if cell == nil {
		return nil
	}
	l.headers[id.Section] = cell

	hc, ok := cell.(HeaderCell)
	if !ok {
		return cell
	}
	if l.seen[cell] {
		// Reused from the pool: replay on the next loop turn, after the
		// bind that produced this cell has fully completed.
		section := id.Section
		l.schedule(func() { l.replayPhases(section, hc) })
	}
	l.seen[cell] = true
	return cell
}

// replayPhases walks a recycled header cell through the will/did pair for
// its section's present state, so it shows the right affordance even
// though no real transition is running.
func (l *SectionList) replayPhases(section int, hc HeaderCell) {
	if l.store.isExpanded(section) {
		hc.ExpandPhase(WillExpand, true)
		hc.ExpandPhase(DidExpand, true)
		return
	}
	hc.ExpandPhase(WillCollapse, true)
	hc.ExpandPhase(DidCollapse, true)
}

// rowTapped is the selection path. The host observer hears the raw tap
// first, preserving its own selection logic; then expandable headers
// toggle their section.
func (l *SectionList) rowTapped(id RowID) {
	l.host.notifySelected(id)
	if id.Row != 0 || !l.gate.canExpand(id.Section) {
		return
	}
	if l.store.isExpanded(id.Section) {
		l.Collapse(id.Section)
	} else {
		l.Expand(id.Section)
	}
}
