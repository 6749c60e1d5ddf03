package ui

import (
	"fmt"
	"strings"

	"factcheck/internal/render"

	"github.com/charmbracelet/lipgloss"
)

const excerptWidth = 160

// View renders the form and, once a verdict is shown, the result panel.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.styles.Header.Render("FactCheck"))
	b.WriteString("\n")
	b.WriteString(m.styles.Subtitle.Render("Verify a claim against trusted sources"))
	b.WriteString("\n\n")

	b.WriteString(m.styles.Input.Render(m.textarea.View()))
	b.WriteString("\n")
	b.WriteString(m.renderControls())
	b.WriteString("\n")

	if notice := m.ctrl.UI().Notice; notice != "" {
		b.WriteString(m.styles.Error.Render(notice))
		b.WriteString("\n")
	}

	if m.panel.ResultVisible {
		b.WriteString("\n")
		b.WriteString(m.styles.ResultPanel.Render(m.result.View()))
		b.WriteString("\n")
	}

	b.WriteString(m.styles.Footer.Render("enter: verify • pgup/pgdn: scroll result • esc: quit"))
	return m.styles.Content.Render(b.String())
}

func (m Model) renderControls() string {
	counterStyle := m.styles.Counter
	if m.panel.OverLimit {
		counterStyle = m.styles.CounterOver
	}
	counter := counterStyle.Render(m.panel.Counter)

	var button string
	if m.panel.SubmitEnabled {
		button = m.styles.Button.Render(m.panel.SubmitLabel)
	} else {
		button = m.styles.ButtonBusy.Render(m.panel.SubmitLabel)
	}
	if m.panel.Busy {
		button = lipgloss.JoinHorizontal(lipgloss.Center, m.spinner.View(), " ", button)
	}

	return lipgloss.JoinHorizontal(lipgloss.Center, button, "  ", counter)
}

// renderResult draws the badge, confidence gauge and evidence cards.
func (m Model) renderResult() string {
	if !m.panel.ResultVisible {
		return ""
	}
	p := m.panel

	var b strings.Builder
	b.WriteString(m.styles.RenderBadge(p.Badge))
	b.WriteString("\n\n")

	gauge := m.gauge
	gauge.FullColor = string(m.styles.Color(p.Ring.Color))
	b.WriteString(m.styles.Bold.Render("Confidence "))
	b.WriteString(gauge.ViewAs(p.Ring.Fill()))
	b.WriteString(" ")
	b.WriteString(lipgloss.NewStyle().Foreground(m.styles.Color(p.Ring.Color)).Bold(true).Render(p.Ring.Label()))
	b.WriteString("\n\n")

	b.WriteString(m.styles.Title.Render("Evidence"))
	b.WriteString("\n")
	if len(p.Cards) == 0 {
		b.WriteString(m.styles.Muted.Render("No sources returned."))
		b.WriteString("\n")
	}
	for _, c := range p.Cards {
		card := fmt.Sprintf("%s\n%s",
			m.styles.EvidenceTitle.Render(c.Source),
			m.styles.Body.Render(render.Excerpt(c.Excerpt, excerptWidth)))
		b.WriteString(m.styles.EvidenceCard.Render(card))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
