package expandable

// Expand shows a section's body rows with the configured expand animation.
// Calling it on a section that cannot expand, or is already expanded, does
// nothing and no notifications fire.
func (l *SectionList) Expand(section int) {
	l.toggle(section, Expand)
}

// Collapse hides a section's body rows. A silent no-op on sections that
// cannot expand or are already collapsed.
func (l *SectionList) Collapse(section int) {
	l.toggle(section, Collapse)
}

// toggle runs one transition: capability check, idempotence short-circuit,
// state mutation, will-phase, guarded animated batch, did-phase. The store
// mutates before the view is driven, so a row-count query issued while the
// animation runs already sees the post-toggle truth.
func (l *SectionList) toggle(section int, dir Direction) {
	if !l.gate.canExpand(section) {
		return
	}
	expanding := dir == Expand
	if l.store.isExpanded(section) == expanding {
		return
	}
	l.store.setExpanded(section, expanding)

	l.notifyPhase(section, dir.will())
	// Header stays inert until the did-phase; rapid repeated taps cannot
	// start a second transition on this section.
	l.view.SetHeaderEnabled(section, false)

	done := func() {
		l.notifyPhase(section, dir.did())
		l.view.SetHeaderEnabled(section, true)
	}

	rows := l.bodyRows(section)
	if len(rows) == 0 {
		// Nothing beyond the header to animate.
		done()
		return
	}
	if expanding {
		l.view.InsertRows(section, rows, l.ExpandAnimation, done)
	} else {
		l.view.DeleteRows(section, rows, l.CollapseAnimation, done)
	}
}

// bodyRows lists the non-header row indices of a section, per the host's
// full count.
func (l *SectionList) bodyRows(section int) []int {
	full := l.host.rowCount(section)
	if full <= 1 {
		return nil
	}
	rows := make([]int, 0, full-1)
	for r := 1; r < full; r++ {
		rows = append(rows, r)
	}
	return rows
}

// notifyPhase delivers one lifecycle phase: the section's visible header
// cell first, then the global observer.
func (l *SectionList) notifyPhase(section int, phase Phase) {
	if hc, ok := l.headers[section].(HeaderCell); ok {
		hc.ExpandPhase(phase, false)
	}
	l.host.notifyExpand(section, phase)
}
