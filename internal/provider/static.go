package provider

import (
	"context"
	"time"

	"factcheck/internal/claim"
)

// Static is the deterministic provider: it always answers with the same
// result or error after an optional delay.
type Static struct {
	Result claim.Result
	Err    error
	Delay  time.Duration
}

// NewStatic returns a Static answering with verdict and confidence and the
// reference sources. Confidence is clamped into [0,100].
func NewStatic(verdict claim.Verdict, confidence int) *Static {
	confidence = max(0, min(confidence, 100))
	return &Static{Result: claim.Result{
		Verdict:    verdict,
		Confidence: confidence,
		Sources:    ReferenceSources(),
	}}
}

// Verify returns the fixed answer.
func (s *Static) Verify(ctx context.Context, _ string) (claim.Result, error) {
	if err := sleep(ctx, s.Delay); err != nil {
		return claim.Result{}, err
	}
	if s.Err != nil {
		return claim.Result{}, s.Err
	}
	return s.Result.Clone(), nil
}
