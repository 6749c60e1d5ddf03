package claim

import (
	"fmt"
	"unicode/utf8"
)

// Edit is the outcome of running a text change through Guard.
type Edit struct {
	// Text is the stored text, never longer than MaxChars.
	Text string
	// Length is the character count shown by the counter.
	Length int
	// OverLimit is set only on the edit that overflowed. The truncation
	// restores compliance, so the next edit clears it again.
	OverLimit bool
}

// Counter renders the live counter text, e.g. "42/500".
func (e Edit) Counter() string {
	return fmt.Sprintf("%d/%d", e.Length, MaxChars)
}

// Remaining returns how many characters can still be typed.
func (e Edit) Remaining() int {
	return MaxChars - e.Length
}

// Guard enforces MaxChars on a text change. Overflow is discarded silently.
func Guard(text string) Edit {
	n := utf8.RuneCountInString(text)
	if n <= MaxChars {
		return Edit{Text: text, Length: n}
	}

	// Cut on a rune boundary.
	cut, count := 0, 0
	for i := range text {
		if count == MaxChars {
			cut = i
			break
		}
		count++
	}
	return Edit{Text: text[:cut], Length: MaxChars, OverLimit: true}
}
