// Package verify implements the click-to-result workflow.
//
// The Controller is an explicit state machine driving a render.Surface:
//
//	Idle -> Busy -> {Displayed, Failed}
//	Displayed | Failed -> Busy (next submission)
//
// It is owned by a single event loop and is not safe for concurrent use.
// The provider call itself happens outside the controller: Submit hands out
// a Request and the loop reports back through Resolve or Reject.
package verify

import (
	"context"
	"fmt"

	"factcheck/internal/claim"
	"factcheck/internal/logging"
	"factcheck/internal/provider"
	"factcheck/internal/render"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Submit control labels and the failure notice.
const (
	LabelIdle     = "Verify Claim"
	LabelBusy     = "Analyzing..."
	FailureNotice = "Something went wrong. Please try again."
)

// State is the controller state.
type State int

const (
	StateIdle State = iota
	StateBusy
	StateDisplayed
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateBusy:
		return "busy"
	case StateDisplayed:
		return "displayed"
	case StateFailed:
		return "failed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// UIState is the observable state derived from the controller.
type UIState struct {
	Busy          bool
	HasResult     bool
	Current       *claim.Result
	SubmitEnabled bool
	SubmitLabel   string
	Notice        string
}

// Request identifies one admitted submission.
type Request struct {
	ID    string
	Claim string
}

// Controller runs the verification workflow against a surface.
type Controller struct {
	surface render.Surface
	logger  *zap.Logger

	state   State
	pending string
	current *claim.Result
	notice  string
}

// NewController creates a controller and resets the surface to its idle
// state.
func NewController(surface render.Surface, logger *zap.Logger) *Controller {
	c := &Controller{
		surface: surface,
		logger:  logging.For(logger, logging.CategoryController),
	}
	surface.SetResultVisible(false)
	surface.SetBusyIndicator(false)
	surface.SetSubmit(true, LabelIdle)
	render.ApplyCounter(surface, claim.Guard(""))
	return c
}

// State returns the current state.
func (c *Controller) State() State {
	return c.state
}

// UI returns the derived UI flags.
func (c *Controller) UI() UIState {
	ui := UIState{
		Busy:          c.state == StateBusy,
		HasResult:     c.state == StateDisplayed,
		SubmitEnabled: c.state != StateBusy,
		SubmitLabel:   LabelIdle,
		Notice:        c.notice,
	}
	if ui.Busy {
		ui.SubmitLabel = LabelBusy
	}
	if c.current != nil {
		res := c.current.Clone()
		ui.Current = &res
	}
	return ui
}

// Input applies the input guard to an edit and updates the counter. The
// returned Edit carries the text the input should now hold.
func (c *Controller) Input(text string) claim.Edit {
	e := claim.Guard(text)
	render.ApplyCounter(c.surface, e)
	return e
}

// Submit admits a claim. It returns false, with no side effects, when the
// trimmed claim is empty or a request is already in flight.
func (c *Controller) Submit(text string) (Request, bool) {
	normalized := claim.Normalize(text)
	if normalized == "" || c.state == StateBusy {
		return Request{}, false
	}

	req := Request{ID: uuid.NewString(), Claim: normalized}
	c.state = StateBusy
	c.pending = req.ID
	c.current = nil
	c.notice = ""

	c.surface.SetSubmit(false, LabelBusy)
	c.surface.SetBusyIndicator(true)
	c.surface.SetResultVisible(false)

	c.logger.Debug("submission admitted",
		zap.String("request_id", req.ID),
		zap.Int("claim_len", len([]rune(normalized))))
	return req, true
}

// Resolve completes the pending request with a result. Completions for
// any other request are ignored.
func (c *Controller) Resolve(id string, res claim.Result) bool {
	if !c.accepts(id) {
		return false
	}
	defer c.finish()

	if !res.Verdict.Valid() {
		c.logger.Warn("provider returned unrecognized verdict",
			zap.String("request_id", id),
			zap.String("verdict", string(res.Verdict)))
	}

	stored := res.Clone()
	c.current = &stored
	c.state = StateDisplayed
	render.Apply(c.surface, render.Build(stored))
	return true
}

// Reject fails the pending request. The previous result stays hidden.
func (c *Controller) Reject(id string, err error) bool {
	if !c.accepts(id) {
		return false
	}
	defer c.finish()

	c.logger.Warn("verification failed", zap.String("request_id", id), zap.Error(err))
	c.state = StateFailed
	c.notice = FailureNotice
	c.surface.Notify(FailureNotice)
	return true
}

// Run submits text and verifies it with p synchronously. It reports
// whether the submission was admitted and the provider's error, if any.
func (c *Controller) Run(ctx context.Context, p provider.Provider, text string) (bool, error) {
	req, ok := c.Submit(text)
	if !ok {
		return false, nil
	}
	res, err := p.Verify(ctx, req.Claim)
	if err != nil {
		c.Reject(req.ID, err)
		return true, err
	}
	c.Resolve(req.ID, res)
	return true, nil
}

func (c *Controller) accepts(id string) bool {
	if c.state != StateBusy || id != c.pending {
		c.logger.Debug("ignoring stale completion", zap.String("request_id", id))
		return false
	}
	return true
}

// finish is the terminal cleanup shared by both completion paths.
func (c *Controller) finish() {
	c.pending = ""
	c.surface.SetBusyIndicator(false)
	c.surface.SetSubmit(true, LabelIdle)
}
