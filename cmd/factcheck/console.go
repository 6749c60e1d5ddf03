package main

import (
	"fmt"
	"strings"

	"factcheck/internal/render"

	"github.com/charmbracelet/glamour"
)

// consoleSurface collects the workflow's output for a one-shot check and
// renders it as markdown.
type consoleSurface struct {
	badge   render.Badge
	ring    render.Ring
	cards   []render.Card
	visible bool
	notice  string
}

func (c *consoleSurface) SetCounter(string, bool)         {}
func (c *consoleSurface) SetBadge(b render.Badge)         { c.badge = b }
func (c *consoleSurface) SetRing(r render.Ring)           { c.ring = r }
func (c *consoleSurface) SetEvidence(cards []render.Card) { c.cards = cards }
func (c *consoleSurface) SetResultVisible(v bool)         { c.visible = v }
func (c *consoleSurface) SetBusyIndicator(bool)           {}
func (c *consoleSurface) SetSubmit(bool, string)          {}
func (c *consoleSurface) Notify(msg string)               { c.notice = msg }
func (c *consoleSurface) ScrollIntoView()                 {}

// Markdown renders the current result, or the failure notice.
func (c *consoleSurface) Markdown(claim string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Fact check\n\n> %s\n\n", claim)

	if !c.visible {
		if c.notice != "" {
			fmt.Fprintf(&b, "**%s**\n", c.notice)
		}
		return b.String()
	}

	fmt.Fprintf(&b, "**Verdict:** `%s`\n\n", c.badge.Label)
	fmt.Fprintf(&b, "**Confidence:** %s %s\n\n", c.ring.Label(), bar(c.ring.Fill(), 20))
	b.WriteString("## Evidence\n\n")
	if len(c.cards) == 0 {
		b.WriteString("_No sources returned._\n")
	}
	for _, card := range c.cards {
		fmt.Fprintf(&b, "- **%s**: %s\n", card.Source, render.Excerpt(card.Excerpt, 200))
	}
	return b.String()
}

func bar(fill float64, width int) string {
	n := int(fill*float64(width) + 0.5)
	if n < 0 {
		n = 0
	}
	if n > width {
		n = width
	}
	return "`" + strings.Repeat("█", n) + strings.Repeat("░", width-n) + "`"
}

// renderMarkdown renders md for the terminal, falling back to the raw text.
func renderMarkdown(md string, plain bool) string {
	if plain {
		return md
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return out
}
