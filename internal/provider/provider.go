// Package provider defines the verification provider boundary and its
// implementations.
//
// A Provider turns claim text into a claim.Result or fails. The controller
// only ever sees this interface; the keyword mock, the deterministic Static
// double, the Gemini and Remote adapters and the Consensus fan-out are
// interchangeable behind it.
package provider

import (
	"context"
	"errors"
	"time"

	"factcheck/internal/claim"
)

// ErrUnavailable is returned when a backend cannot be reached or answers
// with something other than a result.
var ErrUnavailable = errors.New("verification provider unavailable")

// Provider verifies a claim. Implementations may block for an arbitrary
// latency and must honour ctx cancellation where they can.
type Provider interface {
	Verify(ctx context.Context, text string) (claim.Result, error)
}

// Func adapts a function to Provider.
type Func func(ctx context.Context, text string) (claim.Result, error)

// Verify calls f.
func (f Func) Verify(ctx context.Context, text string) (claim.Result, error) {
	return f(ctx, text)
}

// ReferenceSources is the fixed evidence set returned by the offline
// providers, in display order.
func ReferenceSources() []claim.Evidence {
	return []claim.Evidence{
		{Name: "BBC News", Text: "According to recent reports, verifying this information"},
		{Name: "Wikipedia", Text: "The consensus on this topic typically suggests"},
		{Name: "Reuters", Text: "Analysis of available data confirms"},
	}
}

// sleep waits for d or until ctx is done.
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
