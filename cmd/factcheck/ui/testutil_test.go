package ui

import (
	"context"
	"testing"

	"factcheck/internal/claim"
	"factcheck/internal/provider"

	tea "github.com/charmbracelet/bubbletea"
)

// =============================================================================
// TEST MODEL BUILDER
// =============================================================================

// TestModelOption configures a test model.
type TestModelOption func(*Options)

// WithProvider sets the model's provider.
func WithProvider(p provider.Provider) TestModelOption {
	return func(o *Options) { o.Provider = p }
}

// NewTestModel creates a Model backed by an instant static provider.
func NewTestModel(opts ...TestModelOption) Model {
	styles := NewStyles(LightTheme())
	o := Options{
		Provider: provider.NewStatic(claim.VerdictReal, 88),
		Styles:   &styles,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return NewModel(context.Background(), o)
}

// typeText sends text as a single runes key message.
func typeText(m Model, text string) Model {
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
	return next.(Model)
}

// pressEnter submits and returns the command produced.
func pressEnter(m Model) (Model, tea.Cmd) {
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return next.(Model), cmd
}

// findDone runs cmd, expanding batches, and returns the first
// verifyDoneMsg produced.
func findDone(t *testing.T, cmd tea.Cmd) verifyDoneMsg {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command")
	}
	switch msg := cmd().(type) {
	case verifyDoneMsg:
		return msg
	case tea.BatchMsg:
		for _, c := range msg {
			if c == nil {
				continue
			}
			if done, ok := c().(verifyDoneMsg); ok {
				return done
			}
		}
	}
	t.Fatal("no verifyDoneMsg produced")
	return verifyDoneMsg{}
}
