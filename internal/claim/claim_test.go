package claim

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// INPUT GUARD
// =============================================================================

func TestGuard_UnderLimit(t *testing.T) {
	e := Guard("The sky is blue")
	assert.Equal(t, "The sky is blue", e.Text)
	assert.Equal(t, 15, e.Length)
	assert.False(t, e.OverLimit)
	assert.Equal(t, "15/500", e.Counter())
	assert.Equal(t, 485, e.Remaining())
}

func TestGuard_ExactlyAtLimit(t *testing.T) {
	e := Guard(strings.Repeat("a", MaxChars))
	assert.Equal(t, MaxChars, e.Length)
	assert.False(t, e.OverLimit)
}

func TestGuard_TruncatesOverflow(t *testing.T) {
	e := Guard(strings.Repeat("x", 600))
	assert.Len(t, e.Text, MaxChars)
	assert.Equal(t, MaxChars, e.Length)
	assert.True(t, e.OverLimit)
	assert.Equal(t, "500/500", e.Counter())

	// The truncated text is compliant, so re-guarding it clears the flag.
	again := Guard(e.Text)
	assert.False(t, again.OverLimit)
}

func TestGuard_CountsCharactersNotBytes(t *testing.T) {
	text := strings.Repeat("é", 510)
	e := Guard(text)
	require.True(t, utf8.ValidString(e.Text))
	assert.Equal(t, MaxChars, utf8.RuneCountInString(e.Text))
	assert.True(t, e.OverLimit)
}

func TestGuard_EditSequenceInvariant(t *testing.T) {
	edits := []string{"", "a", strings.Repeat("b", 499), strings.Repeat("c", 501), "short", strings.Repeat("d", 2000)}
	for _, text := range edits {
		e := Guard(text)
		n := utf8.RuneCountInString(text)
		want := n
		if want > MaxChars {
			want = MaxChars
		}
		assert.Equal(t, want, e.Length, "len=%d", n)
		assert.LessOrEqual(t, utf8.RuneCountInString(e.Text), MaxChars)
	}
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "", Normalize("   \n\t "))
	assert.Equal(t, "claim", Normalize("  claim \n"))
}

// =============================================================================
// VERDICTS
// =============================================================================

func TestParseVerdict(t *testing.T) {
	tests := []struct {
		in   string
		want Verdict
		ok   bool
	}{
		{"REAL", VerdictReal, true},
		{"fake", VerdictFake, true},
		{"NOT ENOUGH INFO", VerdictNotEnoughInfo, true},
		{"not_enough_info", VerdictNotEnoughInfo, true},
		{"mostly-true", VerdictReal, true},
		{"half-true", VerdictNotEnoughInfo, true},
		{"pants-fire", VerdictFake, true},
		{"barely-true", VerdictFake, true},
		{"satire", Verdict("SATIRE"), false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseVerdict(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.ok, ok)
		})
	}
}

func TestVerdictValid(t *testing.T) {
	for _, v := range Verdicts {
		assert.True(t, v.Valid(), v)
	}
	assert.False(t, Verdict("MAYBE").Valid())
}

func TestResultClone(t *testing.T) {
	r := Result{Verdict: VerdictReal, Confidence: 80, Sources: []Evidence{{Name: "a", Text: "b"}}}
	c := r.Clone()
	c.Sources[0].Name = "changed"
	assert.Equal(t, "a", r.Sources[0].Name)
}

// =============================================================================
// CLEANING
// =============================================================================

func TestClean(t *testing.T) {
	in := "Check this URL: http://example.com! It's <important> & should be cleaned."
	assert.Equal(t, "check this url it's should be cleaned", Clean(in))
	assert.Equal(t, "the earth is flat", Clean("  The <b>Earth</b> is FLAT!!  "))
	assert.Equal(t, "mail me", Clean("mail me user@example.com"))
}
