package ui

import (
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/KQAR/expandable/internal/model"
)

// StatusBar shows the most recent expand lifecycle event. The icon shape
// distinguishes in-flight from settled transitions (not color-only):
//   - will-phase: view-refresh icon (transition running)
//   - did-phase:  confirm icon (transition settled)
type StatusBar struct {
	widget.BaseWidget

	state     *model.AppState
	label     *widget.Label
	indicator *widget.Icon
}

// NewStatusBar creates a status bar bound to the given state.
func NewStatusBar(state *model.AppState) *StatusBar {
	label := widget.NewLabel("Ready")
	label.Truncation = fyne.TextTruncateEllipsis

	s := &StatusBar{
		state:     state,
		label:     label,
		indicator: widget.NewIcon(theme.InfoIcon()),
	}
	s.ExtendBaseWidget(s)

	state.LastEvent.AddListener(binding.NewDataListener(s.update))
	return s
}

// update refreshes the bar from the last event.
func (s *StatusBar) update() {
	event, _ := s.state.LastEvent.Get()
	if event == "" {
		s.indicator.SetResource(theme.InfoIcon())
		s.label.SetText("Ready")
		return
	}

	if strings.Contains(event, "will") {
		s.indicator.SetResource(theme.ViewRefreshIcon())
	} else {
		s.indicator.SetResource(theme.ConfirmIcon())
	}
	s.label.SetText(event)
}

// CreateRenderer implements fyne.Widget.
func (s *StatusBar) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(
		container.NewBorder(nil, nil, s.indicator, nil, s.label),
	)
}
