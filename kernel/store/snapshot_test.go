package store

import (
	"testing"

	"github.com/tigerater/chronoctl/kernel/model"
	"github.com/tigerater/chronoctl/kernel/state"
)

func TestCaptureRestore_RoundTrip(t *testing.T) {
	source := state.NewAppState()
	source.Buckets.Dispatch(state.SetAll[model.Bucket]{Status: state.Done, Entities: []model.Bucket{
		{ID: "b2", OrgID: "org-1", Name: "traces"},
		{ID: "b1", OrgID: "org-1", Name: "metrics"},
	}})
	source.Dashboards.Dispatch(state.SetAll[model.Dashboard]{Status: state.Done, Entities: []model.Dashboard{
		{ID: "d1", OrgID: "org-1", Name: "overview"},
	}})
	// checks never finished loading, must not be captured
	source.Checks.Dispatch(state.SetAll[model.Check]{Status: state.Loading})

	snapshot := Capture(source)
	if _, ok := snapshot.Resources["bucket"]; !ok {
		t.Fatal("expected buckets to be captured")
	}
	if _, ok := snapshot.Resources["check"]; ok {
		t.Error("a Loading collection must not be captured")
	}

	restored := state.NewAppState()
	Restore(snapshot, restored)

	buckets := restored.Buckets.State()
	if buckets.Status != state.Done {
		t.Errorf("expected restored buckets to be Done, got %s", buckets.Status)
	}
	if len(buckets.AllIDs) != 2 || buckets.AllIDs[0] != "b2" || buckets.AllIDs[1] != "b1" {
		t.Errorf("expected display order preserved, got %v", buckets.AllIDs)
	}
	if restored.Checks.State().Status != state.NotStarted {
		t.Error("collections absent from the snapshot must stay NotStarted")
	}
}

func TestCaptureRestore_MemoryStore(t *testing.T) {
	source := state.NewAppState()
	source.Labels.Dispatch(state.SetAll[model.Label]{Status: state.Done, Entities: []model.Label{
		{ID: "l1", Name: "prod"},
	}})

	s := NewMemoryStore()
	if err := s.Save(Capture(source)); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := s.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	restored := state.NewAppState()
	Restore(loaded, restored)
	labels := restored.Labels.State()
	if labels.Len() != 1 {
		t.Fatalf("expected 1 restored label, got %d", labels.Len())
	}
	if labels.ByID["l1"].Name != "prod" {
		t.Errorf("unexpected label name '%s'", labels.ByID["l1"].Name)
	}
}
