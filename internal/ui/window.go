// Package ui builds the demo's main window around an expandable
// SectionList.
package ui

import (
	"fmt"
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/KQAR/expandable"
	"github.com/KQAR/expandable/internal/domain"
	"github.com/KQAR/expandable/internal/model"
)

// AppController is the app-level surface the window needs.
type AppController interface {
	State() *model.AppState
	Logger() *slog.Logger
	Catalog() *domain.Catalog
	SavePreferences()
}

// MainWindow manages the main application window: the section list on the
// left, animation/capability controls on the right and a status bar at
// the bottom.
type MainWindow struct {
	window fyne.Window
	state  *model.AppState
	logger *slog.Logger
	app    AppController

	provider  *catalogProvider
	list      *expandable.SectionList
	statusBar *StatusBar
}

// NewMainWindow creates the main window and wires its callbacks.
func NewMainWindow(fyneApp fyne.App, app AppController) *MainWindow {
	window := fyneApp.NewWindow("Expandable section list demo")

	mw := &MainWindow{
		window: window,
		state:  app.State(),
		logger: app.Logger(),
		app:    app,
	}

	mw.provider = newCatalogProvider(app.Catalog(), func() bool {
		expandableByDefault, _ := mw.state.DefaultExpandable.Get()
		return expandableByDefault
	})

	mw.list = expandable.NewSectionList(mw.provider)
	mw.list.SetObserver(mw)
	mw.applyAnimationPrefs()

	mw.statusBar = NewStatusBar(mw.state)

	window.SetContent(container.NewBorder(
		nil,
		mw.statusBar,
		nil,
		mw.buildControls(),
		mw.list,
	))
	window.Resize(fyne.NewSize(640, 480))

	return mw
}

// Window returns the underlying Fyne window.
func (mw *MainWindow) Window() fyne.Window {
	return mw.window
}

// RowSelected implements expandable.RowSelectionObserver.
func (mw *MainWindow) RowSelected(id expandable.RowID) {
	mw.logger.Debug("row selected",
		slog.Int("section", id.Section),
		slog.Int("row", id.Row),
	)
}

// ExpandStateChanged implements expandable.ExpandObserver.
func (mw *MainWindow) ExpandStateChanged(section int, phase expandable.Phase) {
	title := mw.app.Catalog().Sections[section].Title
	_ = mw.state.LastEvent.Set(fmt.Sprintf("%s: %s", title, phase))
	mw.logger.Debug("expand state changed",
		slog.Int("section", section),
		slog.String("phase", phase.String()),
	)
}

// applyAnimationPrefs pushes the persisted animation choices to the list.
func (mw *MainWindow) applyAnimationPrefs() {
	if name, _ := mw.state.ExpandAnimation.Get(); name != "" {
		if anim, ok := expandable.ParseAnimation(name); ok {
			mw.list.ExpandAnimation = anim
		}
	}
	if name, _ := mw.state.CollapseAnimation.Get(); name != "" {
		if anim, ok := expandable.ParseAnimation(name); ok {
			mw.list.CollapseAnimation = anim
		}
	}
}

// buildControls assembles the right-hand control column.
func (mw *MainWindow) buildControls() fyne.CanvasObject {
	animations := []string{"fade", "slide", "none"}

	expandSelect := widget.NewSelect(animations, func(name string) {
		if anim, ok := expandable.ParseAnimation(name); ok {
			mw.list.ExpandAnimation = anim
			_ = mw.state.ExpandAnimation.Set(name)
			mw.app.SavePreferences()
		}
	})
	expandSelect.Selected, _ = mw.state.ExpandAnimation.Get()

	collapseSelect := widget.NewSelect(animations, func(name string) {
		if anim, ok := expandable.ParseAnimation(name); ok {
			mw.list.CollapseAnimation = anim
			_ = mw.state.CollapseAnimation.Set(name)
			mw.app.SavePreferences()
		}
	})
	collapseSelect.Selected, _ = mw.state.CollapseAnimation.Get()

	defaultCheck := widget.NewCheck("Expandable by default", func(on bool) {
		_ = mw.state.DefaultExpandable.Set(on)
		mw.app.SavePreferences()
		mw.list.Refresh()
	})
	defaultCheck.Checked, _ = mw.state.DefaultExpandable.Get()

	expandAll := widget.NewButton("Expand all", func() {
		for s := 0; s < mw.provider.SectionCount(); s++ {
			mw.list.Expand(s)
		}
	})
	collapseAll := widget.NewButton("Collapse all", func() {
		for s := 0; s < mw.provider.SectionCount(); s++ {
			mw.list.Collapse(s)
		}
	})

	return container.NewVBox(
		widget.NewLabel("Expand animation"),
		expandSelect,
		widget.NewLabel("Collapse animation"),
		collapseSelect,
		widget.NewSeparator(),
		defaultCheck,
		widget.NewSeparator(),
		expandAll,
		collapseAll,
	)
}
