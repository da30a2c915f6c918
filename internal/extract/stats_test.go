package extract

import (
	"testing"
	"time"
)

func TestStats_EmptySnapshot(t *testing.T) {
	s := NewStats(time.Hour)
	snap := s.Snapshot()
	if snap.Count != 0 {
		t.Errorf("expected empty snapshot, got count %d", snap.Count)
	}
}

func TestStats_RecordAndAggregate(t *testing.T) {
	s := NewStats(time.Hour)
	for _, ms := range []int64{100, 200, 300} {
		s.Record(ms)
	}

	snap := s.Snapshot()
	if snap.Count != 3 {
		t.Fatalf("expected 3 samples, got %d", snap.Count)
	}
	if snap.MinMs != 100 || snap.MaxMs != 300 {
		t.Errorf("expected min 100 max 300, got %d/%d", snap.MinMs, snap.MaxMs)
	}
	if snap.AvgMs != 200 {
		t.Errorf("expected avg 200, got %v", snap.AvgMs)
	}
	if snap.P50Ms != 200 {
		t.Errorf("expected p50 200, got %v", snap.P50Ms)
	}
}

func TestStats_NegativeDurationClamped(t *testing.T) {
	s := NewStats(time.Hour)
	s.Record(-5)
	snap := s.Snapshot()
	if snap.MinMs != 0 {
		t.Errorf("expected negative sample clamped to 0, got %d", snap.MinMs)
	}
}
