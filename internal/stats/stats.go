// Package stats keeps a rolling window of extraction run outcomes.
package stats

import (
	"slices"
	"sync"
	"time"
)

type run struct {
	at         time.Time
	durationMs int64
	urls       int
	failed     bool
}

// Snapshot aggregates the runs inside the window.
type Snapshot struct {
	Runs      int     `json:"runs"`
	Failed    int     `json:"failed"`
	TotalURLs int     `json:"total_urls"`
	MinMs     int64   `json:"min_ms"`
	MaxMs     int64   `json:"max_ms"`
	AvgMs     float64 `json:"avg_ms"`
	P50Ms     float64 `json:"p50_ms"`
	P95Ms     float64 `json:"p95_ms"`
	P99Ms     float64 `json:"p99_ms"`
}

// RunStats records run latency and yield. Safe for concurrent use.
type RunStats struct {
	mu     sync.Mutex
	runs   []run
	window time.Duration
	now    func() time.Time
}

func NewRunStats(window time.Duration) *RunStats {
	if window <= 0 {
		window = time.Hour
	}
	return &RunStats{
		runs:   make([]run, 0, 256),
		window: window,
		now:    time.Now,
	}
}

// Record adds one finished run. A failed run counts toward latency but not
// toward TotalURLs.
func (s *RunStats) Record(d time.Duration, urls int, err error) {
	ms := d.Milliseconds()
	if ms < 0 {
		ms = 0
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.pruneLocked(now)
	r := run{at: now, durationMs: ms, failed: err != nil}
	if err == nil {
		r.urls = urls
	}
	s.runs = append(s.runs, r)
}

func (s *RunStats) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pruneLocked(s.now())
	if len(s.runs) == 0 {
		return Snapshot{}
	}

	snap := Snapshot{Runs: len(s.runs)}
	values := make([]int64, 0, len(s.runs))
	var sum int64
	for _, r := range s.runs {
		values = append(values, r.durationMs)
		sum += r.durationMs
		snap.TotalURLs += r.urls
		if r.failed {
			snap.Failed++
		}
	}
	slices.Sort(values)

	snap.MinMs = values[0]
	snap.MaxMs = values[len(values)-1]
	snap.AvgMs = float64(sum) / float64(len(values))
	snap.P50Ms = percentile(values, 50)
	snap.P95Ms = percentile(values, 95)
	snap.P99Ms = percentile(values, 99)
	return snap
}

func (s *RunStats) pruneLocked(now time.Time) {
	cutoff := now.Add(-s.window)
	s.runs = slices.DeleteFunc(s.runs, func(r run) bool {
		return r.at.Before(cutoff)
	})
}

// percentile interpolates linearly between the closest ranks.
func percentile(sorted []int64, pct float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	if pct <= 0 {
		return float64(sorted[0])
	}
	if pct >= 100 {
		return float64(sorted[len(sorted)-1])
	}

	index := (float64(len(sorted)-1) * pct) / 100.0
	lower := int(index)
	upper := lower + 1
	if upper >= len(sorted) {
		return float64(sorted[lower])
	}
	weight := index - float64(lower)
	lo := float64(sorted[lower])
	hi := float64(sorted[upper])
	return lo + ((hi - lo) * weight)
}
