// Package claim defines the claim text rules and the verification result
// types shared by every provider, the controller, and the renderer.
package claim

import "strings"

// MaxChars is the maximum length of a claim, in characters.
const MaxChars = 500

// Verdict is a provider's categorical judgment of a claim.
type Verdict string

const (
	VerdictReal          Verdict = "REAL"
	VerdictFake          Verdict = "FAKE"
	VerdictNotEnoughInfo Verdict = "NOT_ENOUGH_INFO"
)

// Verdicts lists the valid verdicts in display order.
var Verdicts = []Verdict{VerdictReal, VerdictFake, VerdictNotEnoughInfo}

// Valid reports whether v is one of the three enumerated verdicts.
func (v Verdict) Valid() bool {
	switch v {
	case VerdictReal, VerdictFake, VerdictNotEnoughInfo:
		return true
	}
	return false
}

// Evidence is a named source with an excerpt supporting a verdict.
type Evidence struct {
	Name string `json:"name"`
	Text string `json:"text"`
}

// Result is the immutable outcome of a single verification call.
type Result struct {
	Verdict    Verdict    `json:"verdict"`
	Confidence int        `json:"confidence"`
	Sources    []Evidence `json:"sources"`
}

// Clone returns a copy of r that shares no slice memory with it.
func (r Result) Clone() Result {
	out := r
	if r.Sources != nil {
		out.Sources = make([]Evidence, len(r.Sources))
		copy(out.Sources, r.Sources)
	}
	return out
}

// Normalize trims the claim for submission. Live edits are never trimmed.
func Normalize(text string) string {
	return strings.TrimSpace(text)
}
