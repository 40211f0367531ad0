package expandable

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// SectionView is the rendering collaborator a SectionList drives. It owns
// row layout and the batched animated row mutations; the list owns which
// rows are visible.
type SectionView interface {
	// Reload discards and rebuilds every visible row from the effective
	// provider.
	Reload()

	// InsertRows adds the given body rows of a section as one animated
	// batch and calls done once the batch has finished.
	InsertRows(section int, rows []int, anim Animation, done func())

	// DeleteRows removes the given body rows of a section, animated, and
	// calls done once the batch has finished.
	DeleteRows(section int, rows []int, anim Animation, done func())

	// SetHeaderEnabled toggles interaction on a section's header row.
	SetHeaderEnabled(section int, enabled bool)
}

// rowView is the default SectionView: a scrollable column of row wrappers
// queried from the SectionList, which acts as its provider.
type rowView struct {
	widget.BaseWidget

	list *SectionList

	box      *fyne.Container
	scroll   *container.Scroll
	sections [][]*rowItem

	// startAnimation is swappable so tests can drive ticks by hand.
	startAnimation func(*fyne.Animation)
}

func newRowView(list *SectionList) *rowView {
	v := &rowView{
		list:           list,
		box:            container.NewVBox(),
		startAnimation: func(a *fyne.Animation) { a.Start() },
	}
	v.scroll = container.NewVScroll(v.box)
	v.ExtendBaseWidget(v)
	return v
}

// CreateRenderer implements fyne.Widget.
func (v *rowView) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(v.scroll)
}

// Reload rebuilds all visible rows, section by section.
func (v *rowView) Reload() {
	count := v.list.SectionCount()
	v.sections = make([][]*rowItem, count)
	for s := 0; s < count; s++ {
		n := v.list.RowCount(s)
		items := make([]*rowItem, 0, n)
		for r := 0; r < n; r++ {
			items = append(items, v.newItem(RowID{Section: s, Row: r}))
		}
		v.sections[s] = items
	}
	v.rebuildBox()
}

func (v *rowView) newItem(id RowID) *rowItem {
	return newRowItem(id, v.list.CellForRow(id), v.list.rowTapped)
}

// rebuildBox flattens the section row slices into the column container.
func (v *rowView) rebuildBox() {
	objects := make([]fyne.CanvasObject, 0)
	for _, items := range v.sections {
		for _, item := range items {
			objects = append(objects, item)
		}
	}
	v.box.Objects = objects
	v.box.Refresh()
}

// InsertRows implements SectionView. Rows are constructed through the
// effective provider, appended after the section's header and revealed as
// one batch.
func (v *rowView) InsertRows(section int, rows []int, anim Animation, done func()) {
	if section < 0 || section >= len(v.sections) || len(rows) == 0 {
		done()
		return
	}
	items := make([]*rowItem, 0, len(rows))
	for _, r := range rows {
		items = append(items, v.newItem(RowID{Section: section, Row: r}))
	}
	v.sections[section] = append(v.sections[section], items...)
	v.rebuildBox()
	v.animate(items, anim, true, done)
}

// DeleteRows implements SectionView. The doomed rows animate out first and
// leave the layout when the batch completes.
func (v *rowView) DeleteRows(section int, rows []int, anim Animation, done func()) {
	if section < 0 || section >= len(v.sections) || len(rows) == 0 {
		done()
		return
	}
	del := make(map[int]bool, len(rows))
	for _, r := range rows {
		del[r] = true
	}
	doomed := make([]*rowItem, 0, len(rows))
	keep := make([]*rowItem, 0, len(v.sections[section]))
	for _, item := range v.sections[section] {
		if del[item.id.Row] {
			doomed = append(doomed, item)
		} else {
			keep = append(keep, item)
		}
	}
	v.animate(doomed, anim, false, func() {
		v.sections[section] = keep
		v.rebuildBox()
		done()
	})
}

// SetHeaderEnabled implements SectionView.
func (v *rowView) SetHeaderEnabled(section int, enabled bool) {
	if section < 0 || section >= len(v.sections) || len(v.sections[section]) == 0 {
		return
	}
	header := v.sections[section][0]
	if enabled {
		header.Enable()
	} else {
		header.Disable()
	}
}

// animate runs one batch over the given rows and reports completion on the
// final tick. AnimationNone completes synchronously before returning.
func (v *rowView) animate(items []*rowItem, kind Animation, in bool, done func()) {
	if kind == AnimationNone || len(items) == 0 {
		done()
		return
	}
	for _, item := range items {
		item.setTransition(kind, in, 0)
	}
	anim := fyne.NewAnimation(transitionDuration, func(p float32) {
		for _, item := range items {
			item.setTransition(kind, in, p)
		}
		if kind == AnimationSlide {
			v.box.Refresh()
		}
		if p >= 1 {
			done()
		}
	})
	anim.Curve = fyne.AnimationEaseInOut
	v.startAnimation(anim)
}

// rowItem wraps one row's canvas object with tap dispatch, the interaction
// guard and the transition scaffolding: a height factor for slides and a
// background-colored overlay for fades.
type rowItem struct {
	widget.BaseWidget

	id      RowID
	content fyne.CanvasObject
	overlay *canvas.Rectangle

	onTapped func(RowID)
	disabled bool

	heightFactor float32 // 0..1 of the content's natural height
}

var (
	_ fyne.Tappable    = (*rowItem)(nil)
	_ fyne.Disableable = (*rowItem)(nil)
)

func newRowItem(id RowID, content fyne.CanvasObject, onTapped func(RowID)) *rowItem {
	if content == nil {
		content = widget.NewLabel("")
	}
	it := &rowItem{
		id:           id,
		content:      content,
		overlay:      canvas.NewRectangle(color.Transparent),
		onTapped:     onTapped,
		heightFactor: 1,
	}
	it.ExtendBaseWidget(it)
	return it
}

// Tapped implements fyne.Tappable. Disabled rows swallow the tap.
func (it *rowItem) Tapped(_ *fyne.PointEvent) {
	if it.disabled || it.onTapped == nil {
		return
	}
	it.onTapped(it.id)
}

// Enable implements fyne.Disableable.
func (it *rowItem) Enable() { it.disabled = false }

// Disable implements fyne.Disableable.
func (it *rowItem) Disable() { it.disabled = true }

// Disabled implements fyne.Disableable.
func (it *rowItem) Disabled() bool { return it.disabled }

// MinSize shrinks with the height factor so sliding rows reflow the list.
func (it *rowItem) MinSize() fyne.Size {
	min := it.content.MinSize()
	return fyne.NewSize(min.Width, min.Height*it.heightFactor)
}

// setTransition applies one animation tick. factor 1 is fully shown.
func (it *rowItem) setTransition(kind Animation, in bool, p float32) {
	factor := p
	if !in {
		factor = 1 - p
	}
	switch kind {
	case AnimationSlide:
		it.heightFactor = factor
	case AnimationFade:
		it.overlay.FillColor = fadeColor(factor)
		it.overlay.Refresh()
	}
}

// CreateRenderer implements fyne.Widget.
func (it *rowItem) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(container.NewStack(it.content, it.overlay))
}

// fadeColor returns the theme background at the opacity that hides a row
// shown at the given factor.
func fadeColor(factor float32) color.Color {
	r, g, b, _ := theme.Color(theme.ColorNameBackground).RGBA()
	return color.NRGBA{
		R: uint8(r >> 8),
		G: uint8(g >> 8),
		B: uint8(b >> 8),
		A: uint8((1 - factor) * 0xff),
	}
}
