// Package timing records how long named operations take.
package timing

import (
	"sort"
	"sync"
	"time"
)

// Span is one timed operation in progress.
type Span struct {
	tracker   *Tracker
	operation string
	start     time.Time
}

// End records the span's duration and returns it.
func (s Span) End() time.Duration {
	d := s.tracker.now().Sub(s.start)
	s.tracker.record(s.operation, d)
	return d
}

type Tracker struct {
	timings map[string][]time.Duration
	mu      sync.RWMutex
	now     func() time.Time
}

func NewTracker() *Tracker {
	return &Tracker{
		timings: make(map[string][]time.Duration),
		now:     time.Now,
	}
}

// Start begins timing operation.
func (tt *Tracker) Start(operation string) Span {
	return Span{tracker: tt, operation: operation, start: tt.now()}
}

// Measure times fn under operation.
func (tt *Tracker) Measure(operation string, fn func() error) error {
	span := tt.Start(operation)
	defer span.End()
	return fn()
}

func (tt *Tracker) record(operation string, d time.Duration) {
	tt.mu.Lock()
	defer tt.mu.Unlock()
	tt.timings[operation] = append(tt.timings[operation], d)
}

func (tt *Tracker) GetTimings(operation string) []time.Duration {
	tt.mu.RLock()
	defer tt.mu.RUnlock()

	timings := tt.timings[operation]
	if timings == nil {
		return nil
	}

	result := make([]time.Duration, len(timings))
	copy(result, timings)
	return result
}

// Operations returns the recorded operation names in sorted order.
func (tt *Tracker) Operations() []string {
	tt.mu.RLock()
	defer tt.mu.RUnlock()

	names := make([]string, 0, len(tt.timings))
	for name := range tt.timings {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (tt *Tracker) Total(operation string) time.Duration {
	var total time.Duration
	for _, d := range tt.GetTimings(operation) {
		total += d
	}
	return total
}

// Summary maps each operation to its total duration in milliseconds,
// shaped for a log field.
func (tt *Tracker) Summary() map[string]interface{} {
	summary := make(map[string]interface{})
	for _, op := range tt.Operations() {
		summary[op+"_ms"] = tt.Total(op).Milliseconds()
	}
	return summary
}

func (tt *Tracker) Reset() {
	tt.mu.Lock()
	defer tt.mu.Unlock()
	tt.timings = make(map[string][]time.Duration)
}
