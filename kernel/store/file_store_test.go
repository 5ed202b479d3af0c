package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestFileStore_LoadMissingFile(t *testing.T) {
	s := NewFileStore(t.TempDir())

	snapshot, err := s.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if snapshot.Version != Version {
		t.Errorf("expected version '%s', got '%s'", Version, snapshot.Version)
	}
	if len(snapshot.Resources) != 0 {
		t.Errorf("expected empty resources, got %d", len(snapshot.Resources))
	}
}

func TestFileStore_SaveLoadRoundTrip(t *testing.T) {
	s := NewFileStore(t.TempDir())

	snapshot := NewSnapshot()
	snapshot.Resources["bucket"] = json.RawMessage(`[{"id":"b1","orgID":"org-1","name":"metrics"}]`)
	if err := s.Save(snapshot); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if snapshot.SavedAt.IsZero() {
		t.Error("expected Save to stamp SavedAt")
	}

	loaded, err := s.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	raw, ok := loaded.Resources["bucket"]
	if !ok {
		t.Fatal("expected bucket resources to survive the round trip")
	}
	var buckets []map[string]any
	if err := json.Unmarshal(raw, &buckets); err != nil {
		t.Fatalf("failed to parse restored buckets: %v", err)
	}
	if len(buckets) != 1 || buckets[0]["name"] != "metrics" {
		t.Errorf("unexpected restored buckets: %v", buckets)
	}
}

func TestFileStore_VersionMismatchDiscards(t *testing.T) {
	dir := t.TempDir()
	stale := map[string]any{
		"version":   "0-beta",
		"savedAt":   time.Now(),
		"resources": map[string]any{"bucket": []any{map[string]any{"id": "old"}}},
	}
	data, err := json.Marshal(stale)
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, stateFileName), data, 0600); err != nil {
		t.Fatal(err)
	}

	s := NewFileStore(dir)
	snapshot, err := s.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(snapshot.Resources) != 0 {
		t.Error("version mismatch must discard cached resources")
	}
	if snapshot.Version != Version {
		t.Errorf("expected fresh snapshot at version '%s', got '%s'", Version, snapshot.Version)
	}
}

func TestFileStore_LoadCorruptFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, stateFileName), []byte("{not json"), 0600); err != nil {
		t.Fatal(err)
	}

	s := NewFileStore(dir)
	if _, err := s.Load(); err == nil {
		t.Fatal("expected error for corrupt state file")
	}
}
