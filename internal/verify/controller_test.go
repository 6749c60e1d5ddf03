package verify

import (
	"context"
	"errors"
	"strings"
	"testing"

	"factcheck/internal/claim"
	"factcheck/internal/provider"
	"factcheck/internal/render"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m, goleak.IgnoreTopFunction("go.opencensus.io/stats/view.(*worker).start"))
}

// recordingSurface keeps the latest value of every mutation point and
// counts the calls that matter to the workflow.
type recordingSurface struct {
	counter     string
	overLimit   bool
	overCount   int
	badge       render.Badge
	ring        render.Ring
	cards       []render.Card
	visible     bool
	shownCount  int
	busy        bool
	enabled     bool
	label       string
	enableCount int
	notices     []string
	scrolls     int
}

func (r *recordingSurface) SetCounter(text string, over bool) {
	r.counter, r.overLimit = text, over
	if over {
		r.overCount++
	}
}
func (r *recordingSurface) SetBadge(b render.Badge)     { r.badge = b }
func (r *recordingSurface) SetRing(g render.Ring)       { r.ring = g }
func (r *recordingSurface) SetEvidence(c []render.Card) { r.cards = c }
func (r *recordingSurface) SetResultVisible(v bool) {
	r.visible = v
	if v {
		r.shownCount++
	}
}
func (r *recordingSurface) SetBusyIndicator(v bool) { r.busy = v }
func (r *recordingSurface) SetSubmit(enabled bool, label string) {
	r.enabled, r.label = enabled, label
	if enabled {
		r.enableCount++
	}
}
func (r *recordingSurface) Notify(msg string) { r.notices = append(r.notices, msg) }
func (r *recordingSurface) ScrollIntoView()   { r.scrolls++ }

// countingProvider wraps a provider and counts calls.
type countingProvider struct {
	inner provider.Provider
	calls int
}

func (p *countingProvider) Verify(ctx context.Context, text string) (claim.Result, error) {
	p.calls++
	return p.inner.Verify(ctx, text)
}

func newTestController() (*Controller, *recordingSurface) {
	s := &recordingSurface{}
	return NewController(s, nil), s
}

func TestNewController_ResetsSurface(t *testing.T) {
	c, s := newTestController()
	assert.Equal(t, StateIdle, c.State())
	assert.Equal(t, "0/500", s.counter)
	assert.False(t, s.visible)
	assert.False(t, s.busy)
	assert.True(t, s.enabled)
	assert.Equal(t, LabelIdle, s.label)

	ui := c.UI()
	assert.False(t, ui.Busy)
	assert.False(t, ui.HasResult)
	assert.Nil(t, ui.Current)
}

func TestSubmit_EmptyIsNoop(t *testing.T) {
	for _, text := range []string{"", "   ", "\t\n "} {
		c, s := newTestController()
		p := &countingProvider{inner: provider.NewStatic(claim.VerdictReal, 90)}
		enables := s.enableCount

		admitted, err := c.Run(context.Background(), p, text)
		require.NoError(t, err)
		assert.False(t, admitted)
		assert.Equal(t, 0, p.calls)
		assert.Equal(t, StateIdle, c.State())
		assert.Equal(t, enables, s.enableCount)
	}
}

func TestSubmit_EntersBusy(t *testing.T) {
	c, s := newTestController()
	req, ok := c.Submit("  The sky is blue  ")
	require.True(t, ok)
	assert.Equal(t, "The sky is blue", req.Claim)
	assert.NotEmpty(t, req.ID)

	assert.Equal(t, StateBusy, c.State())
	assert.False(t, s.enabled)
	assert.Equal(t, LabelBusy, s.label)
	assert.True(t, s.busy)
	assert.False(t, s.visible)

	ui := c.UI()
	assert.True(t, ui.Busy)
	assert.False(t, ui.SubmitEnabled)
	assert.Equal(t, LabelBusy, ui.SubmitLabel)
}

func TestSubmit_SecondWhileBusyIsNoop(t *testing.T) {
	c, _ := newTestController()
	first, ok := c.Submit("claim one")
	require.True(t, ok)

	_, ok = c.Submit("claim two")
	assert.False(t, ok)
	assert.Equal(t, StateBusy, c.State())

	assert.True(t, c.Resolve(first.ID, claim.Result{Verdict: claim.VerdictReal, Confidence: 80}))
}

func TestResolve_Displays(t *testing.T) {
	c, s := newTestController()
	req, _ := c.Submit("The sky is blue")
	enables := s.enableCount

	res := provider.NewStatic(claim.VerdictFake, 75).Result
	require.True(t, c.Resolve(req.ID, res))

	assert.Equal(t, StateDisplayed, c.State())
	assert.True(t, s.visible)
	assert.Equal(t, 1, s.shownCount)
	assert.Equal(t, 1, s.scrolls)
	assert.Equal(t, enables+1, s.enableCount)
	assert.True(t, s.enabled)
	assert.Equal(t, LabelIdle, s.label)
	assert.False(t, s.busy)
	assert.Equal(t, render.CategoryFake, s.badge.Category)
	assert.Equal(t, 75, s.ring.Percent)
	require.Len(t, s.cards, 3)
	assert.Equal(t, "BBC News", s.cards[0].Source)

	ui := c.UI()
	assert.True(t, ui.HasResult)
	require.NotNil(t, ui.Current)
	assert.Equal(t, claim.VerdictFake, ui.Current.Verdict)
}

func TestReject_RestoresWithoutShowing(t *testing.T) {
	c, s := newTestController()
	req, _ := c.Submit("The earth is flat")
	enables := s.enableCount

	require.True(t, c.Reject(req.ID, provider.ErrUnavailable))

	assert.Equal(t, StateFailed, c.State())
	assert.False(t, s.visible)
	assert.Equal(t, 0, s.shownCount)
	assert.Equal(t, enables+1, s.enableCount)
	assert.True(t, s.enabled)
	assert.Equal(t, LabelIdle, s.label)
	assert.False(t, s.busy)
	assert.Equal(t, []string{FailureNotice}, s.notices)
	assert.Equal(t, FailureNotice, c.UI().Notice)
}

func TestResubmit_HidesPreviousResult(t *testing.T) {
	c, s := newTestController()
	req, _ := c.Submit("The sky is blue")
	c.Resolve(req.ID, claim.Result{Verdict: claim.VerdictReal, Confidence: 90})
	require.True(t, s.visible)

	req2, ok := c.Submit("The earth is flat")
	require.True(t, ok)
	assert.False(t, s.visible)
	assert.Nil(t, c.UI().Current)

	c.Reject(req2.ID, errors.New("down"))
	assert.False(t, s.visible)
	assert.Equal(t, StateFailed, c.State())

	_, ok = c.Submit("again")
	assert.True(t, ok, "failed state accepts a new submission")
}

func TestStaleCompletionsIgnored(t *testing.T) {
	c, s := newTestController()
	assert.False(t, c.Resolve("nope", claim.Result{Verdict: claim.VerdictReal}))

	req, _ := c.Submit("claim")
	assert.False(t, c.Reject("other", errors.New("x")))
	assert.Equal(t, StateBusy, c.State())

	require.True(t, c.Resolve(req.ID, claim.Result{Verdict: claim.VerdictReal}))
	assert.False(t, c.Resolve(req.ID, claim.Result{Verdict: claim.VerdictFake}))
	assert.Equal(t, render.CategoryReal, s.badge.Category)
}

func TestResolve_UnrecognizedVerdictFallsBack(t *testing.T) {
	c, s := newTestController()
	req, _ := c.Submit("claim")
	c.Resolve(req.ID, claim.Result{Verdict: "SATIRE", Confidence: 50})

	assert.Equal(t, render.CategoryUncertain, s.badge.Category)
	assert.Equal(t, render.UnrecognizedLabel, s.badge.Label)
	assert.False(t, s.badge.Recognized)
}

func TestRun_Scenarios(t *testing.T) {
	tests := []struct {
		claim string
		want  render.Category
	}{
		{"The sky is blue", render.CategoryReal},
		{"The earth is flat", render.CategoryFake},
	}
	for _, tt := range tests {
		t.Run(tt.claim, func(t *testing.T) {
			c, s := newTestController()
			admitted, err := c.Run(context.Background(), provider.NewSeededKeyword(0, 3), tt.claim)
			require.NoError(t, err)
			assert.True(t, admitted)
			assert.Equal(t, tt.want, s.badge.Category)
			assert.Equal(t, StateDisplayed, c.State())
		})
	}
}

func TestRun_ProviderFailure(t *testing.T) {
	c, s := newTestController()
	admitted, err := c.Run(context.Background(), &provider.Static{Err: provider.ErrUnavailable}, "claim")
	assert.True(t, admitted)
	assert.ErrorIs(t, err, provider.ErrUnavailable)
	assert.True(t, s.enabled)
	assert.Equal(t, StateFailed, c.State())
}

func TestInput_OverLimitFiresOnce(t *testing.T) {
	c, s := newTestController()
	e := c.Input(strings.Repeat("a", 600))
	assert.Len(t, e.Text, 500)
	assert.Equal(t, "500/500", s.counter)
	assert.True(t, s.overLimit)
	assert.Equal(t, 1, s.overCount)

	c.Input(e.Text)
	assert.False(t, s.overLimit)
	assert.Equal(t, 1, s.overCount)
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "idle", StateIdle.String())
	assert.Equal(t, "busy", StateBusy.String())
	assert.Equal(t, "displayed", StateDisplayed.String())
	assert.Equal(t, "failed", StateFailed.String())
	assert.Equal(t, "State(9)", State(9).String())
}
