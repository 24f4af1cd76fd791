package profiling

import (
	"cmp"
	"slices"
	"strings"
	"sync"
	"time"
)

// Lightweight wall-clock accounting for named pipeline stages.

var (
	mu     sync.Mutex
	totals = make(map[string]time.Duration)
)

// Track returns a stop function that records the elapsed time under the given name.
// Usage: defer profiling.Track("pipeline.generate")()
func Track(name string) func() {
	start := time.Now()
	return func() {
		d := time.Since(start)
		mu.Lock()
		totals[name] += d
		mu.Unlock()
	}
}

// Reset clears all recorded totals.
func Reset() {
	mu.Lock()
	clear(totals)
	mu.Unlock()
}

// Snapshot returns a copy of the recorded totals.
func Snapshot() map[string]time.Duration {
	mu.Lock()
	defer mu.Unlock()
	out := make(map[string]time.Duration, len(totals))
	for k, v := range totals {
		out[k] = v
	}
	return out
}

// Entry is one named total.
type Entry struct {
	Name     string
	Duration time.Duration
}

// TopN returns the n largest totals, longest first.
func TopN(n int) []Entry {
	ss := Snapshot()
	list := make([]Entry, 0, len(ss))
	for k, v := range ss {
		list = append(list, Entry{Name: k, Duration: v})
	}
	slices.SortFunc(list, func(a, b Entry) int {
		if c := cmp.Compare(b.Duration, a.Duration); c != 0 {
			return c
		}
		return cmp.Compare(a.Name, b.Name)
	})
	if n < len(list) {
		list = list[:n]
	}
	return list
}

// Summary formats the top n totals.
// Example: "pipeline.mesh:4.2s, pipeline.generate:2.1s"
func Summary(n int) string {
	top := TopN(n)
	parts := make([]string, 0, len(top))
	for _, e := range top {
		parts = append(parts, e.Name+":"+e.Duration.Round(100*time.Microsecond).String())
	}
	return strings.Join(parts, ", ")
}
