package pipeline

import (
	"testing"
	"time"
)

func TestContentHashHex(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"},
		{"hello world", "b94d27b9934d3e08a52e52d7da7dabfac484efe37a5380ee9088f7ace2efcde9"},
	}
	for _, tt := range tests {
		if got := ContentHashHex([]byte(tt.input)); got != tt.want {
			t.Errorf("ContentHashHex(%q) = %s, want %s", tt.input, got, tt.want)
		}
	}
}

func TestJob_StatusTransitions(t *testing.T) {
	job := &Job{ID: "j1", Status: StatusQueued}

	job.SetStatus(StatusExtracting, "extracting")
	if job.Snapshot().Status != StatusExtracting {
		t.Errorf("expected extracting, got %s", job.Snapshot().Status)
	}

	job.SetStatus(StatusAnalyzing, "analyzing")
	job.SetSummary(Summary{WordCount: 10, Chapters: 2})
	job.SetStatus(StatusCompleted, "done")

	snap := job.Snapshot()
	if snap.Status != StatusCompleted || snap.Phase != "done" {
		t.Errorf("final state: %s/%s", snap.Status, snap.Phase)
	}
	if snap.Summary == nil || snap.Summary.WordCount != 10 || snap.Summary.Chapters != 2 {
		t.Errorf("summary not carried: %+v", snap.Summary)
	}
}

func TestJob_SnapshotIsolation(t *testing.T) {
	job := &Job{ID: "j1"}
	job.SetSummary(Summary{WordCount: 5})

	snap := job.Snapshot()
	snap.Summary.WordCount = 99

	if job.Snapshot().Summary.WordCount != 5 {
		t.Error("snapshot mutation leaked into the job")
	}
}

func TestJob_ErrorsNeverNilInSnapshot(t *testing.T) {
	job := &Job{ID: "j1"}
	if job.Snapshot().Errors == nil {
		t.Error("expected empty slice, got nil")
	}

	job.AddError("boom")
	errs := job.Snapshot().Errors
	if len(errs) != 1 || errs[0] != "boom" {
		t.Errorf("unexpected errors: %v", errs)
	}
}

func TestJobStore_PutGet(t *testing.T) {
	s := NewJobStore(time.Hour)
	job := &Job{ID: "j1", UpdatedAt: time.Now()}
	s.Put(job)

	if got := s.Get("j1"); got != job {
		t.Error("expected stored job back")
	}
	if got := s.Get("missing"); got != nil {
		t.Errorf("expected nil for unknown id, got %v", got)
	}
}

func TestJobStore_CleanupExpires(t *testing.T) {
	s := NewJobStore(time.Millisecond)
	s.Put(&Job{ID: "old", UpdatedAt: time.Now().Add(-time.Minute)})
	s.Put(&Job{ID: "fresh", UpdatedAt: time.Now()})

	s.Cleanup()

	if s.Get("old") != nil {
		t.Error("expected expired job evicted")
	}
	if s.Get("fresh") == nil {
		t.Error("expected fresh job kept")
	}
}

func TestNewJobID(t *testing.T) {
	a := NewJobID()
	b := NewJobID()
	if a == b {
		t.Error("expected unique ids")
	}
	if len(a) != 26 {
		t.Errorf("expected 26-char id, got %d (%s)", len(a), a)
	}
}
