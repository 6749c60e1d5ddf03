package provider

import (
	"context"
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	"factcheck/internal/claim"
)

// DefaultLatency is the keyword provider's simulated network latency.
const DefaultLatency = 2 * time.Second

// Keyword is the demo provider. It decides by keyword where it can and by
// a random draw where it cannot; the random source is injected so runs are
// reproducible.
type Keyword struct {
	Latency time.Duration

	mu  sync.Mutex
	rng *rand.Rand
}

// NewKeyword creates a keyword provider. A nil rng seeds one from the
// runtime's random source.
func NewKeyword(latency time.Duration, rng *rand.Rand) *Keyword {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Keyword{Latency: latency, rng: rng}
}

// NewSeededKeyword creates a keyword provider with a fixed seed.
func NewSeededKeyword(latency time.Duration, seed uint64) *Keyword {
	return NewKeyword(latency, rand.New(rand.NewPCG(seed, seed)))
}

// Verify waits out the latency, then classifies the claim.
func (k *Keyword) Verify(ctx context.Context, text string) (claim.Result, error) {
	if err := sleep(ctx, k.Latency); err != nil {
		return claim.Result{}, err
	}

	k.mu.Lock()
	draw := k.rng.Float64()
	confidence := 70 + k.rng.IntN(30) // [70,99]
	k.mu.Unlock()

	return claim.Result{
		Verdict:    Classify(text, draw),
		Confidence: confidence,
		Sources:    ReferenceSources(),
	}, nil
}

// Classify applies the keyword rules, falling back to the draw r in [0,1).
// Keywords match anywhere in the raw claim, ignoring case.
func Classify(text string, r float64) claim.Verdict {
	lower := strings.ToLower(text)
	switch {
	case strings.Contains(lower, "flat"), strings.Contains(lower, "fake"):
		return claim.VerdictFake
	case strings.Contains(lower, "water"), strings.Contains(lower, "sky"):
		return claim.VerdictReal
	case r > 0.6:
		return claim.VerdictReal
	case r > 0.3:
		return claim.VerdictFake
	default:
		return claim.VerdictNotEnoughInfo
	}
}
