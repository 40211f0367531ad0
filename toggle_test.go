package expandable

import (
	"fmt"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpand_FiresOnePhasePair(t *testing.T) {
	provider := newFakeProvider([]string{"header", "a", "b"})
	l := newTestList(t, provider)
	obs := &recordingObserver{}
	l.SetObserver(obs)

	l.Expand(0)

	assert.Equal(t, []string{"0:willExpand", "0:didExpand"}, obs.phases)
	assert.True(t, l.IsExpanded(0))
	assert.Equal(t, 3, l.RowCount(0))
}

func TestExpand_IsIdempotent(t *testing.T) {
	provider := newFakeProvider([]string{"header", "a", "b"})
	l := newTestList(t, provider)
	obs := &recordingObserver{}
	l.SetObserver(obs)

	l.Expand(0)
	l.Expand(0)

	assert.Equal(t, []string{"0:willExpand", "0:didExpand"}, obs.phases,
		"the second expand is a silent no-op")
}

func TestCollapse_OnCollapsedIsSilent(t *testing.T) {
	provider := newFakeProvider([]string{"header", "a"})
	l := newTestList(t, provider)
	obs := &recordingObserver{}
	l.SetObserver(obs)

	l.Collapse(0)

	assert.Empty(t, obs.phases)
	assert.False(t, l.IsExpanded(0))
}

func TestExpand_LockedSectionIsSilent(t *testing.T) {
	provider := newFakeProvider([]string{"header", "a"})
	provider.locked[0] = true
	l := newTestList(t, provider)
	obs := &recordingObserver{}
	l.SetObserver(obs)

	l.Expand(0)

	assert.Empty(t, obs.phases)
	assert.False(t, l.IsExpanded(0), "a gated section never reaches the store")
}

func TestExpand_DefaultExpandableFalseGatesEverything(t *testing.T) {
	l := newTestList(t, &minimalProvider{rows: []string{"header", "a"}})
	l.DefaultExpandable = false

	l.Expand(0)

	assert.False(t, l.IsExpanded(0))
	assert.Equal(t, 2, l.RowCount(0), "gated sections always show the host's full count")
}

func TestExpand_HeaderBeforeGlobalObserver(t *testing.T) {
	var log []string
	provider := newFakeProvider([]string{"header", "a"})
	// Pre-seed the header pool with a cell that writes into the shared
	// log, so the interleaving with the global observer is visible.
	provider.headers[0] = newLogHeader(&log)

	l := newTestList(t, provider)
	l.SetObserver(phaseLogger{log: &log})
	log = nil

	l.Expand(0)

	assert.Equal(t, []string{
		"header:willExpand", "observer:0:willExpand",
		"header:didExpand", "observer:0:didExpand",
	}, log, "each phase reaches the header cell before the global observer")
}

// phaseLogger is an ExpandObserver writing into a shared log slice.
type phaseLogger struct {
	log *[]string
}

func (p phaseLogger) ExpandStateChanged(section int, phase Phase) {
	*p.log = append(*p.log, fmt.Sprintf("observer:%d:%s", section, phase))
}

// logHeader is a header cell writing into the same shared log.
type logHeader struct {
	widget.Label

	log *[]string
}

func newLogHeader(log *[]string) *logHeader {
	h := &logHeader{log: log}
	h.ExtendBaseWidget(h)
	return h
}

func (h *logHeader) ExpandPhase(phase Phase, _ bool) {
	*h.log = append(*h.log, "header:"+phase.String())
}

func TestExpand_HeaderOnlySectionStillCompletes(t *testing.T) {
	provider := newFakeProvider([]string{"header"})
	l := newTestList(t, provider)
	l.ExpandAnimation = AnimationFade // would be async if anything animated

	var started []*fyne.Animation
	l.view.(*rowView).startAnimation = func(a *fyne.Animation) { started = append(started, a) }

	obs := &recordingObserver{}
	l.SetObserver(obs)

	l.Expand(0)

	assert.Empty(t, started, "no body rows, nothing to animate")
	assert.Equal(t, []string{"0:willExpand", "0:didExpand"}, obs.phases,
		"the transition completes synchronously")
	assert.True(t, l.IsExpanded(0))
}

func TestExpand_StateVisibleDuringAnimation(t *testing.T) {
	provider := newFakeProvider([]string{"header", "a", "b", "c"})
	l := newTestList(t, provider)
	l.ExpandAnimation = AnimationFade

	var started []*fyne.Animation
	v := l.view.(*rowView)
	v.startAnimation = func(a *fyne.Animation) { started = append(started, a) }

	obs := &recordingObserver{}
	l.SetObserver(obs)

	l.Expand(0)
	require.Len(t, started, 1)

	// Mid-animation: the store already answers the post-toggle truth and
	// only the will-phase has fired.
	assert.True(t, l.IsExpanded(0))
	assert.Equal(t, 4, l.RowCount(0))
	assert.Equal(t, []string{"0:willExpand"}, obs.phases)
	assert.True(t, v.sections[0][0].Disabled(), "header is inert during the transition")

	started[0].Tick(0.5)
	started[0].Tick(1)

	assert.Equal(t, []string{"0:willExpand", "0:didExpand"}, obs.phases)
	assert.False(t, v.sections[0][0].Disabled(), "header re-enabled after completion")
}

func TestExpand_RapidTapsCannotDoubleToggle(t *testing.T) {
	provider := newFakeProvider([]string{"header", "a"})
	l := newTestList(t, provider)
	l.ExpandAnimation = AnimationFade
	l.CollapseAnimation = AnimationFade

	var started []*fyne.Animation
	v := l.view.(*rowView)
	v.startAnimation = func(a *fyne.Animation) { started = append(started, a) }

	obs := &recordingObserver{}
	l.SetObserver(obs)

	// First tap starts the expand; the header row goes inert, so a second
	// tap during the animation is swallowed by the row itself.
	v.sections[0][0].Tapped(nil)
	require.Len(t, started, 1)
	v.sections[0][0].Tapped(nil)
	assert.Len(t, started, 1, "no second transition while the first runs")
	assert.Len(t, obs.selected, 1, "the swallowed tap never reaches the host either")

	started[0].Tick(1)
	assert.Equal(t, []string{"0:willExpand", "0:didExpand"}, obs.phases)
}

func TestToggle_DistinctSectionsRunConcurrently(t *testing.T) {
	provider := newFakeProvider(
		[]string{"one", "a", "b"},
		[]string{"two", "c", "d"},
	)
	l := newTestList(t, provider)
	l.ExpandAnimation = AnimationFade

	var started []*fyne.Animation
	l.view.(*rowView).startAnimation = func(a *fyne.Animation) { started = append(started, a) }

	obs := &recordingObserver{}
	l.SetObserver(obs)

	l.Expand(0)
	l.Expand(1)
	require.Len(t, started, 2, "transitions on distinct sections overlap")
	assert.Equal(t, []string{"0:willExpand", "1:willExpand"}, obs.phases)

	// Completion order follows the animations, not the call order.
	started[1].Tick(1)
	started[0].Tick(1)

	assert.Equal(t, []string{
		"0:willExpand", "1:willExpand", "1:didExpand", "0:didExpand",
	}, obs.phases)
}

func TestTapTwice_SecondAfterDidPhase(t *testing.T) {
	provider := newFakeProvider([]string{"header", "a", "b", "c", "d"})
	l := newTestList(t, provider)
	obs := &recordingObserver{}
	l.SetObserver(obs)
	v := l.view.(*rowView)

	require.Equal(t, 1, l.RowCount(0))

	v.sections[0][0].Tapped(nil)
	assert.Equal(t, 5, l.RowCount(0), "first tap expands")

	v.sections[0][0].Tapped(nil)
	assert.Equal(t, 1, l.RowCount(0), "second tap collapses back to the header")

	assert.Equal(t, []string{
		"0:willExpand", "0:didExpand", "0:willCollapse", "0:didCollapse",
	}, obs.phases)
}
