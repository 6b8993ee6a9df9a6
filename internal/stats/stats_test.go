package stats

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunStatsSnapshotPercentiles(t *testing.T) {
	stats := NewRunStats(time.Hour)
	for _, ms := range []int{100, 200, 300, 400, 500} {
		stats.Record(time.Duration(ms)*time.Millisecond, 2, nil)
	}

	snap := stats.Snapshot()
	require.Equal(t, 5, snap.Runs)
	assert.Equal(t, 10, snap.TotalURLs)
	assert.Equal(t, int64(100), snap.MinMs)
	assert.Equal(t, int64(500), snap.MaxMs)
	assert.Equal(t, 300.0, snap.AvgMs)
	assert.Equal(t, 300.0, snap.P50Ms)
	assert.InDelta(t, 480.0, snap.P95Ms, 1e-9)
	assert.InDelta(t, 496.0, snap.P99Ms, 1e-9)
}

func TestRunStatsFailedRunsCarryNoURLs(t *testing.T) {
	stats := NewRunStats(time.Hour)
	stats.Record(10*time.Millisecond, 3, nil)
	stats.Record(20*time.Millisecond, 99, errors.New("parse csv"))

	snap := stats.Snapshot()
	assert.Equal(t, 2, snap.Runs)
	assert.Equal(t, 1, snap.Failed)
	assert.Equal(t, 3, snap.TotalURLs)
}

func TestRunStatsPrunesExpiredRuns(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	stats := NewRunStats(time.Minute)
	stats.now = func() time.Time { return now }

	stats.Record(100*time.Millisecond, 1, nil)
	now = now.Add(2 * time.Minute)
	assert.Equal(t, 0, stats.Snapshot().Runs)

	stats.Record(200*time.Millisecond, 1, nil)
	snap := stats.Snapshot()
	assert.Equal(t, 1, snap.Runs)
	assert.Equal(t, int64(200), snap.MinMs)
	assert.Equal(t, int64(200), snap.MaxMs)
}

func TestRunStatsClampsNegativeDuration(t *testing.T) {
	stats := NewRunStats(time.Hour)
	stats.Record(-10*time.Millisecond, 0, nil)

	snap := stats.Snapshot()
	require.Equal(t, 1, snap.Runs)
	assert.Equal(t, int64(0), snap.MinMs)
	assert.Equal(t, int64(0), snap.MaxMs)
}

func TestRunStatsEmpty(t *testing.T) {
	assert.Equal(t, Snapshot{}, NewRunStats(0).Snapshot())
}
