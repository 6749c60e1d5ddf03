package ui

import "factcheck/internal/render"

// Panel is the terminal display surface. The controller writes into it and
// View reads it back; every setter only assigns, so re-applying a model is
// a no-op.
type Panel struct {
	Counter       string
	OverLimit     bool
	Badge         render.Badge
	Ring          render.Ring
	Cards         []render.Card
	ResultVisible bool
	Busy          bool
	SubmitEnabled bool
	SubmitLabel   string
	LastNotice    string

	scrollPending bool
}

var _ render.Surface = (*Panel)(nil)

func (p *Panel) SetCounter(text string, overLimit bool) {
	p.Counter = text
	p.OverLimit = overLimit
}

func (p *Panel) SetBadge(badge render.Badge) { p.Badge = badge }
func (p *Panel) SetRing(ring render.Ring)    { p.Ring = ring }

func (p *Panel) SetEvidence(cards []render.Card) {
	p.Cards = append([]render.Card(nil), cards...)
}

func (p *Panel) SetResultVisible(visible bool) { p.ResultVisible = visible }
func (p *Panel) SetBusyIndicator(visible bool) { p.Busy = visible }

func (p *Panel) SetSubmit(enabled bool, label string) {
	p.SubmitEnabled = enabled
	p.SubmitLabel = label
}

func (p *Panel) Notify(message string) { p.LastNotice = message }

// ScrollIntoView marks the result panel to be scrolled to its top on the
// next update.
func (p *Panel) ScrollIntoView() { p.scrollPending = true }

// takeScroll reports and clears a pending scroll request.
func (p *Panel) takeScroll() bool {
	pending := p.scrollPending
	p.scrollPending = false
	return pending
}
