package pipeline

import (
	"testing"
	"time"
)

func TestAnalysisStats_EmptySnapshot(t *testing.T) {
	s := NewAnalysisStats(time.Hour)
	snap := s.Snapshot()
	if snap.Count != 0 || snap.MinMs != 0 || snap.P99Ms != 0 {
		t.Errorf("empty snapshot = %+v", snap)
	}
}

func TestAnalysisStats_Aggregates(t *testing.T) {
	s := NewAnalysisStats(time.Hour)
	for _, ms := range []int64{10, 20, 30, 40, 50} {
		s.Record(ms)
	}

	snap := s.Snapshot()
	if snap.Count != 5 {
		t.Fatalf("count = %d", snap.Count)
	}
	if snap.MinMs != 10 || snap.MaxMs != 50 {
		t.Errorf("min/max = %d/%d", snap.MinMs, snap.MaxMs)
	}
	if snap.AvgMs != 30 {
		t.Errorf("avg = %f", snap.AvgMs)
	}
	if snap.P50Ms != 30 {
		t.Errorf("p50 = %f", snap.P50Ms)
	}
	// P95 over 5 samples interpolates between the two largest.
	if snap.P95Ms < 48 || snap.P95Ms > 50 {
		t.Errorf("p95 = %f", snap.P95Ms)
	}
}

func TestAnalysisStats_NegativeClampedToZero(t *testing.T) {
	s := NewAnalysisStats(time.Hour)
	s.Record(-5)
	snap := s.Snapshot()
	if snap.Count != 1 || snap.MinMs != 0 {
		t.Errorf("snapshot = %+v", snap)
	}
}

func TestAnalysisStats_WindowPrunes(t *testing.T) {
	s := NewAnalysisStats(50 * time.Millisecond)
	s.Record(100)
	time.Sleep(80 * time.Millisecond)
	s.Record(200)

	snap := s.Snapshot()
	if snap.Count != 1 || snap.MinMs != 200 {
		t.Errorf("expected only the recent sample, got %+v", snap)
	}
}

func TestPercentile(t *testing.T) {
	values := []int64{10, 20, 30, 40}
	tests := []struct {
		pct  float64
		want float64
	}{
		{0, 10},
		{100, 40},
		{50, 25},
		{-1, 10},
		{150, 40},
	}
	for _, tt := range tests {
		if got := percentile(values, tt.pct); got != tt.want {
			t.Errorf("percentile(%v) = %f, want %f", tt.pct, got, tt.want)
		}
	}
	if got := percentile(nil, 50); got != 0 {
		t.Errorf("percentile(nil) = %f", got)
	}
}
