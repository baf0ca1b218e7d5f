package layout

import (
	"testing"
	"time"
)

func TestLayoutStats_EmptySnapshot(t *testing.T) {
	s := NewLayoutStats(time.Hour)
	snap := s.Snapshot()
	if snap.Count != 0 || snap.MinUs != 0 || snap.AvgUs != 0 {
		t.Errorf("expected zero snapshot, got %+v", snap)
	}
}

func TestLayoutStats_Percentiles(t *testing.T) {
	s := NewLayoutStats(time.Hour)
	for _, us := range []int64{100, 200, 300, 400, 500} {
		s.Record(time.Duration(us) * time.Microsecond)
	}

	snap := s.Snapshot()
	if snap.Count != 5 {
		t.Fatalf("expected count 5, got %d", snap.Count)
	}
	if snap.MinUs != 100 || snap.MaxUs != 500 {
		t.Errorf("min/max: %d/%d", snap.MinUs, snap.MaxUs)
	}
	if snap.AvgUs != 300 {
		t.Errorf("avg: %g", snap.AvgUs)
	}
	if snap.P50Us != 300 {
		t.Errorf("p50: %g", snap.P50Us)
	}
	if snap.P95Us != 480 {
		t.Errorf("p95: %g", snap.P95Us)
	}
	if snap.P99Us != 496 {
		t.Errorf("p99: %g", snap.P99Us)
	}
}

func TestLayoutStats_NegativeDurationClamped(t *testing.T) {
	s := NewLayoutStats(time.Hour)
	s.Record(-5 * time.Millisecond)

	snap := s.Snapshot()
	if snap.Count != 1 || snap.MinUs != 0 {
		t.Errorf("expected clamped zero, got %+v", snap)
	}
}

func TestLayoutStats_WindowPrunes(t *testing.T) {
	s := NewLayoutStats(20 * time.Millisecond)
	s.Record(time.Millisecond)

	time.Sleep(40 * time.Millisecond)

	if snap := s.Snapshot(); snap.Count != 0 {
		t.Errorf("expected pruned window, got count %d", snap.Count)
	}
}

func TestLayoutStats_SingleValue(t *testing.T) {
	s := NewLayoutStats(time.Hour)
	s.Record(250 * time.Microsecond)

	snap := s.Snapshot()
	if snap.P50Us != 250 || snap.P95Us != 250 || snap.P99Us != 250 {
		t.Errorf("expected all percentiles 250, got %+v", snap)
	}
}
