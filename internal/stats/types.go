package stats

import "time"

// Data is the root structure stored on disk.
type Data struct {
	Version   string    `json:"version"`
	Aggregate Aggregate `json:"aggregate"`
}

// Outcome describes one finished verification. It deliberately carries no
// claim text.
type Outcome struct {
	Provider   string
	Verdict    string
	Confidence int
	Duration   time.Duration
	Failed     bool
}

// Aggregate holds counters broken down by verdict and provider.
type Aggregate struct {
	Total      Counts            `json:"total"`
	ByVerdict  map[string]int64  `json:"by_verdict"`
	ByProvider map[string]Counts `json:"by_provider"`
	UpdatedAt  time.Time         `json:"updated_at"`
}

// Counts holds call, failure and latency sums.
type Counts struct {
	Calls         int64 `json:"calls"`
	Failures      int64 `json:"failures"`
	LatencyMs     int64 `json:"latency_ms"`
	ConfidenceSum int64 `json:"confidence_sum"`
}

// Add folds one outcome into the counts.
func (c *Counts) Add(o Outcome) {
	c.Calls++
	c.LatencyMs += o.Duration.Milliseconds()
	if o.Failed {
		c.Failures++
		return
	}
	c.ConfidenceSum += int64(o.Confidence)
}

// MeanLatency returns the average call latency.
func (c Counts) MeanLatency() time.Duration {
	if c.Calls == 0 {
		return 0
	}
	return time.Duration(c.LatencyMs/c.Calls) * time.Millisecond
}

// MeanConfidence returns the average confidence of successful calls.
func (c Counts) MeanConfidence() float64 {
	ok := c.Calls - c.Failures
	if ok <= 0 {
		return 0
	}
	return float64(c.ConfidenceSum) / float64(ok)
}
