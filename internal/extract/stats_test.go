package extract

import (
	"testing"
	"time"
)

func TestStats_SnapshotPercentiles(t *testing.T) {
	stats := NewStats(time.Hour)
	for _, ms := range []int{100, 200, 300, 400, 500} {
		stats.Record(time.Duration(ms)*time.Millisecond, false)
	}

	snap := stats.Snapshot()
	if snap.Count != 5 {
		t.Fatalf("expected count=5, got %d", snap.Count)
	}
	if snap.MinMs != 100 {
		t.Fatalf("expected min=100, got %f", snap.MinMs)
	}
	if snap.MaxMs != 500 {
		t.Fatalf("expected max=500, got %f", snap.MaxMs)
	}
	if snap.AvgMs != 300 {
		t.Fatalf("expected avg=300, got %f", snap.AvgMs)
	}
	if snap.P50Ms != 300 {
		t.Fatalf("expected p50=300, got %f", snap.P50Ms)
	}
	if snap.P95Ms != 480 {
		t.Fatalf("expected p95=480, got %f", snap.P95Ms)
	}
	if snap.P99Ms != 496 {
		t.Fatalf("expected p99=496, got %f", snap.P99Ms)
	}
}

func TestStats_PrunesExpiredSamples(t *testing.T) {
	now := time.Date(2023, 1, 15, 12, 0, 0, 0, time.UTC)
	stats := NewStats(10 * time.Second)
	stats.now = func() time.Time { return now }

	stats.Record(100*time.Millisecond, false)
	now = now.Add(25 * time.Second)

	if snap := stats.Snapshot(); snap.Count != 0 {
		t.Fatalf("expected count=0 after prune, got %d", snap.Count)
	}

	stats.Record(200*time.Millisecond, false)
	snap := stats.Snapshot()
	if snap.Count != 1 {
		t.Fatalf("expected count=1 for fresh sample, got %d", snap.Count)
	}
	if snap.MinMs != 200 || snap.MaxMs != 200 {
		t.Fatalf("expected min=max=200, got min=%f max=%f", snap.MinMs, snap.MaxMs)
	}
}

func TestStats_CountsFailures(t *testing.T) {
	stats := NewStats(time.Hour)
	stats.Record(time.Millisecond, false)
	stats.Record(time.Millisecond, true)
	stats.Record(-time.Second, true)

	snap := stats.Snapshot()
	if snap.Count != 3 {
		t.Fatalf("expected count=3, got %d", snap.Count)
	}
	if snap.Failed != 2 {
		t.Fatalf("expected failed=2, got %d", snap.Failed)
	}
	if snap.MinMs != 0 {
		t.Fatalf("expected clamped min=0, got %f", snap.MinMs)
	}
}
