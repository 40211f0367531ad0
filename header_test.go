package expandable

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/theme"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeaderRow_StartsCollapsed(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	h := NewHeaderRow("Settings")

	assert.Equal(t, "Settings", h.Title())
	assert.Equal(t, theme.MenuExpandIcon().Name(), h.icon.Resource.Name())
}

func TestHeaderRow_PhaseDrivesChevron(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	tests := []struct {
		name  string
		phase Phase
		want  string
	}{
		{name: "willExpand opens", phase: WillExpand, want: theme.MenuDropDownIcon().Name()},
		{name: "didExpand stays open", phase: DidExpand, want: theme.MenuDropDownIcon().Name()},
		{name: "willCollapse closes", phase: WillCollapse, want: theme.MenuExpandIcon().Name()},
		{name: "didCollapse stays closed", phase: DidCollapse, want: theme.MenuExpandIcon().Name()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHeaderRow("s")
			h.ExpandPhase(tt.phase, false)
			assert.Equal(t, tt.want, h.icon.Resource.Name())
		})
	}
}

func TestHeaderRow_OnPhaseObserves(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	h := NewHeaderRow("s")
	var phases []string
	h.OnPhase = func(phase Phase, reused bool) {
		s := phase.String()
		if reused {
			s += "(reuse)"
		}
		phases = append(phases, s)
	}

	h.ExpandPhase(WillExpand, false)
	h.ExpandPhase(DidExpand, false)
	h.ExpandPhase(WillCollapse, true)

	assert.Equal(t, []string{"willExpand", "didExpand", "willCollapse(reuse)"}, phases)
}

func TestHeaderRow_SetTitle(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	h := NewHeaderRow("before")
	h.SetTitle("after")
	assert.Equal(t, "after", h.Title())
}

func TestHeaderRow_InSectionListScenario(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	// Section 0: full count 5, expandable, default collapsed.
	provider := newFakeProvider([]string{"header", "r1", "r2", "r3", "r4"})
	header := NewHeaderRow("header")
	provider.headers[0] = header

	l := newTestList(t, provider)
	require.Equal(t, 1, l.RowCount(0))

	l.Expand(0)

	assert.Equal(t, 5, l.RowCount(0))
	assert.Equal(t, theme.MenuDropDownIcon().Name(), header.icon.Resource.Name(),
		"the chevron follows the section's lifecycle")
}
