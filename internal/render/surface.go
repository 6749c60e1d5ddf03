package render

import "factcheck/internal/claim"

// Surface is a display exposing the named mutation points the workflow
// drives. Every method must be idempotent.
type Surface interface {
	SetCounter(text string, overLimit bool)
	SetBadge(badge Badge)
	SetRing(ring Ring)
	SetEvidence(cards []Card)
	SetResultVisible(visible bool)
	SetBusyIndicator(visible bool)
	SetSubmit(enabled bool, label string)
	Notify(message string)
	ScrollIntoView()
}

// Apply writes a visual model to the surface, reveals the result panel and
// scrolls it into view.
func Apply(s Surface, vm VisualModel) {
	s.SetBadge(vm.Badge)
	s.SetRing(vm.Ring)
	s.SetEvidence(vm.Cards)
	s.SetResultVisible(true)
	s.ScrollIntoView()
}

// ApplyCounter writes the input guard's counter.
func ApplyCounter(s Surface, e claim.Edit) {
	s.SetCounter(e.Counter(), e.OverLimit)
}

// CounterColor is the color token for the counter in the given state.
func CounterColor(overLimit bool) ColorToken {
	if overLimit {
		return ColorFake
	}
	return ColorMuted
}

// Excerpt shortens text to at most max characters, adding an ellipsis.
// It is a display concern only.
func Excerpt(text string, max int) string {
	r := []rune(text)
	if max <= 0 || len(r) <= max {
		return text
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}
