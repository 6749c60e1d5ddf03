package provider

import (
	"context"
	"errors"
	"fmt"

	"factcheck/internal/claim"

	"golang.org/x/sync/errgroup"
)

// ErrNoConsensus is returned when every consensus member failed.
var ErrNoConsensus = errors.New("no consensus member produced a result")

// Consensus fans a claim out to several providers and merges their
// verdicts by plurality. A tie yields NOT_ENOUGH_INFO.
type Consensus struct {
	members     []Provider
	parallelism int
}

// NewConsensus creates a fan-out over members. parallelism <= 0 runs all
// members at once.
func NewConsensus(parallelism int, members ...Provider) *Consensus {
	return &Consensus{members: members, parallelism: parallelism}
}

// Verify queries all members and merges the successful answers.
func (c *Consensus) Verify(ctx context.Context, text string) (claim.Result, error) {
	if len(c.members) == 0 {
		return claim.Result{}, ErrNoConsensus
	}

	results := make([]claim.Result, len(c.members))
	errs := make([]error, len(c.members))

	var g errgroup.Group
	if c.parallelism > 0 {
		g.SetLimit(c.parallelism)
	}
	for i, m := range c.members {
		g.Go(func() error {
			results[i], errs[i] = m.Verify(ctx, text)
			return nil
		})
	}
	_ = g.Wait()

	var ok []claim.Result
	var failures []error
	for i := range c.members {
		if errs[i] != nil {
			failures = append(failures, fmt.Errorf("member %d: %w", i, errs[i]))
			continue
		}
		ok = append(ok, results[i])
	}
	if len(ok) == 0 {
		return claim.Result{}, errors.Join(append([]error{ErrNoConsensus}, failures...)...)
	}
	if err := ctx.Err(); err != nil {
		return claim.Result{}, err
	}
	return merge(ok), nil
}

// merge picks the plurality verdict. Confidence is the mean over the
// winning answers (all answers on a tie) and sources are the winners'
// sources in member order.
func merge(results []claim.Result) claim.Result {
	counts := make(map[claim.Verdict]int)
	var order []claim.Verdict
	for _, r := range results {
		if counts[r.Verdict] == 0 {
			order = append(order, r.Verdict)
		}
		counts[r.Verdict]++
	}

	var best claim.Verdict
	bestN, tie := 0, false
	for _, v := range order {
		switch n := counts[v]; {
		case n > bestN:
			best, bestN, tie = v, n, false
		case n == bestN:
			tie = true
		}
	}

	out := claim.Result{Verdict: best}
	if tie {
		out.Verdict = claim.VerdictNotEnoughInfo
	}

	sum, n := 0, 0
	for _, r := range results {
		if !tie && r.Verdict != best {
			continue
		}
		sum += r.Confidence
		n++
		if !tie {
			out.Sources = append(out.Sources, r.Sources...)
		}
	}
	if n > 0 {
		out.Confidence = sum / n
	}
	if tie {
		for _, r := range results {
			out.Sources = append(out.Sources, r.Sources...)
		}
	}
	return out
}
