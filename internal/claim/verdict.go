package claim

import "strings"

// liarLabels maps the six LIAR dataset ratings onto the three verdicts.
var liarLabels = map[string]Verdict{
	"true":        VerdictReal,
	"mostly-true": VerdictReal,
	"half-true":   VerdictNotEnoughInfo,
	"barely-true": VerdictFake,
	"false":       VerdictFake,
	"pants-fire":  VerdictFake,
}

// ParseVerdict maps a backend's verdict string onto a Verdict. It accepts
// the canonical names in any case, the spaced form "NOT ENOUGH INFO", and
// the LIAR six-way labels. ok is false for anything else.
func ParseVerdict(s string) (v Verdict, ok bool) {
	raw := strings.TrimSpace(s)
	if mapped, found := liarLabels[strings.ToLower(raw)]; found {
		return mapped, true
	}

	norm := strings.ToUpper(raw)
	norm = strings.NewReplacer(" ", "_", "-", "_").Replace(norm)
	switch norm {
	case "REAL", "TRUE":
		return VerdictReal, true
	case "FAKE", "FALSE":
		return VerdictFake, true
	case "NOT_ENOUGH_INFO", "UNCERTAIN", "UNKNOWN":
		return VerdictNotEnoughInfo, true
	}
	return Verdict(norm), false
}
