// Package stats keeps running verdict and latency tallies for factcheck and
// persists them as JSON next to the config.
package stats

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Tracker manages outcome recording and persistence.
type Tracker struct {
	mu       sync.Mutex
	data     Data
	filePath string
	dirty    bool
	now      func() time.Time
}

// NewTracker creates a tracker persisting to path. An existing file is
// loaded; a corrupt one is reported and replaced on the next save.
func NewTracker(path string) (*Tracker, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create stats dir: %w", err)
	}

	t := &Tracker{
		filePath: path,
		data:     Data{Version: "1.0", Aggregate: emptyAggregate()},
		now:      time.Now,
	}
	if err := t.Load(); err != nil {
		return t, fmt.Errorf("failed to load stats: %w", err)
	}
	return t, nil
}

// NewMemoryTracker creates a tracker that is never persisted.
func NewMemoryTracker() *Tracker {
	return &Tracker{
		data: Data{Version: "1.0", Aggregate: emptyAggregate()},
		now:  time.Now,
	}
}

func emptyAggregate() Aggregate {
	return Aggregate{
		ByVerdict:  make(map[string]int64),
		ByProvider: make(map[string]Counts),
	}
}

// Load reads the stats from disk.
func (t *Tracker) Load() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.filePath == "" {
		return nil
	}
	raw, err := os.ReadFile(t.filePath)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}

	var data Data
	if err := json.Unmarshal(raw, &data); err != nil {
		return err
	}
	if data.Aggregate.ByVerdict == nil {
		data.Aggregate.ByVerdict = make(map[string]int64)
	}
	if data.Aggregate.ByProvider == nil {
		data.Aggregate.ByProvider = make(map[string]Counts)
	}
	t.data = data
	return nil
}

// Save writes the stats to disk if anything changed.
func (t *Tracker) Save() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.filePath == "" || !t.dirty {
		return nil
	}
	raw, err := json.MarshalIndent(t.data, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(t.filePath, raw, 0644); err != nil {
		return err
	}
	t.dirty = false
	return nil
}

// Record folds a verification outcome into the aggregates.
func (t *Tracker) Record(o Outcome) {
	t.mu.Lock()
	defer t.mu.Unlock()

	agg := &t.data.Aggregate
	agg.Total.Add(o)
	if !o.Failed {
		agg.ByVerdict[o.Verdict]++
	}

	name := o.Provider
	if name == "" {
		name = "unknown"
	}
	entry := agg.ByProvider[name]
	entry.Add(o)
	agg.ByProvider[name] = entry

	agg.UpdatedAt = t.now()
	t.dirty = true
}

// Snapshot returns a copy of the aggregates.
func (t *Tracker) Snapshot() Aggregate {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := t.data.Aggregate
	out.ByVerdict = make(map[string]int64, len(t.data.Aggregate.ByVerdict))
	for k, v := range t.data.Aggregate.ByVerdict {
		out.ByVerdict[k] = v
	}
	out.ByProvider = make(map[string]Counts, len(t.data.Aggregate.ByProvider))
	for k, v := range t.data.Aggregate.ByProvider {
		out.ByProvider[k] = v
	}
	return out
}
