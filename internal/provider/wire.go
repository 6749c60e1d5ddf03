package provider

import (
	"encoding/json"
	"fmt"
	"html"
	"strings"

	"factcheck/internal/claim"

	"github.com/microcosm-cc/bluemonday"
)

// wireResult is the provider contract as it appears on the wire.
type wireResult struct {
	Verdict    string `json:"verdict"`
	Confidence int    `json:"confidence"`
	Sources    []struct {
		Name string `json:"name"`
		Text string `json:"text"`
	} `json:"sources"`
}

// strict strips all markup from backend strings before they reach a
// display surface.
var strict = bluemonday.StrictPolicy()

// decodeResult parses a contract payload. Verdicts outside the enumeration
// are passed through verbatim for the renderer's fallback; confidence is
// clamped into [0,100].
func decodeResult(data []byte) (claim.Result, error) {
	var w wireResult
	if err := json.Unmarshal(data, &w); err != nil {
		return claim.Result{}, fmt.Errorf("%w: malformed result: %v", ErrUnavailable, err)
	}
	if strings.TrimSpace(w.Verdict) == "" {
		return claim.Result{}, fmt.Errorf("%w: result has no verdict", ErrUnavailable)
	}

	verdict, _ := claim.ParseVerdict(w.Verdict)

	conf := w.Confidence
	if conf < 0 {
		conf = 0
	}
	if conf > 100 {
		conf = 100
	}

	sources := make([]claim.Evidence, 0, len(w.Sources))
	for _, s := range w.Sources {
		sources = append(sources, claim.Evidence{
			Name: sanitize(s.Name),
			Text: sanitize(s.Text),
		})
	}

	return claim.Result{Verdict: verdict, Confidence: conf, Sources: sources}, nil
}

// sanitize drops markup and returns plain text. The policy escapes its
// output, so entities are decoded again for the terminal surfaces.
func sanitize(s string) string {
	return strings.TrimSpace(html.UnescapeString(strict.Sanitize(s)))
}

// cleanModelOutput removes markdown code fences LLMs like to add.
func cleanModelOutput(text string) string {
	cleaned := strings.TrimSpace(text)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```JSON")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	return strings.TrimSpace(cleaned)
}
