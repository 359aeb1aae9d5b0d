package pipeline

import (
	"testing"
	"time"

	"github.com/dgallion1/pdfoutline/internal/outline"
)

func TestJobStatusTransitions(t *testing.T) {
	job := &Job{ID: "j1", Status: StatusQueued, CreatedAt: time.Now()}

	job.SetStatus(StatusLoading, "loading")
	if job.Status != StatusLoading || job.Phase != "loading" {
		t.Errorf("got %s/%s", job.Status, job.Phase)
	}
	before := job.UpdatedAt

	time.Sleep(time.Millisecond)
	job.SetStatus(StatusCompleted, "done")
	if job.Status != StatusCompleted {
		t.Errorf("got %s", job.Status)
	}
	if !job.UpdatedAt.After(before) {
		t.Error("UpdatedAt did not advance")
	}
}

func TestJobErrorsAndResult(t *testing.T) {
	job := &Job{ID: "j2"}

	job.AddError("first problem")
	job.AddError("second problem")
	if len(job.Progress.Errors) != 2 {
		t.Fatalf("errors = %v", job.Progress.Errors)
	}

	res := outline.Result{
		Title: "Doc",
		Outline: []outline.Entry{
			{Level: outline.H1, Text: "Intro", Page: 0},
			{Level: outline.H2, Text: "Detail", Page: 1},
		},
	}
	job.SetResult(res)
	if got := job.Result(); got == nil || got.Title != "Doc" {
		t.Fatalf("result = %+v", got)
	}
	if job.Progress.Headings != 2 {
		t.Errorf("headings = %d", job.Progress.Headings)
	}
}

func TestJobSnapshotErrorsNeverNil(t *testing.T) {
	job := &Job{ID: "j3", Status: StatusQueued}
	snap := job.Snapshot()
	if snap.Progress.Errors == nil {
		t.Error("snapshot errors must be an empty slice, not nil")
	}
}

func TestJobStorePutGetList(t *testing.T) {
	store := NewJobStore(time.Hour)
	older := &Job{ID: "a", CreatedAt: time.Now().Add(-time.Minute), UpdatedAt: time.Now()}
	newer := &Job{ID: "b", CreatedAt: time.Now(), UpdatedAt: time.Now()}
	store.Put(older)
	store.Put(newer)

	if store.Get("a") != older {
		t.Error("Get returned wrong job")
	}
	if store.Get("missing") != nil {
		t.Error("expected nil for unknown id")
	}

	list := store.List()
	if len(list) != 2 || list[0].ID != "b" || list[1].ID != "a" {
		t.Errorf("expected newest first, got %v, %v", list[0].ID, list[1].ID)
	}
}

func TestJobStoreCleanup(t *testing.T) {
	store := NewJobStore(10 * time.Minute)
	stale := &Job{ID: "stale", UpdatedAt: time.Now().Add(-time.Hour)}
	fresh := &Job{ID: "fresh", UpdatedAt: time.Now()}
	store.Put(stale)
	store.Put(fresh)

	store.Cleanup()
	if store.Get("stale") != nil {
		t.Error("stale job survived cleanup")
	}
	if store.Get("fresh") == nil {
		t.Error("fresh job evicted")
	}
}

func TestContentHashHex(t *testing.T) {
	got := ContentHashHex([]byte("hello"))
	want := "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824"
	if got != want {
		t.Errorf("ContentHashHex = %s, want %s", got, want)
	}
	if ContentHashHex([]byte("hello")) != got {
		t.Error("hash not deterministic")
	}
	if ContentHashHex([]byte("hello!")) == got {
		t.Error("distinct content produced same hash")
	}
}

func TestNewJobID(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := NewJobID()
		if len(id) != 26 {
			t.Fatalf("id %q has length %d, want 26", id, len(id))
		}
		if seen[id] {
			t.Fatalf("duplicate id %q", id)
		}
		seen[id] = true
	}
}
