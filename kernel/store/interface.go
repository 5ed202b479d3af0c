package store

import (
	"encoding/json"
	"time"
)

// Version tags the persisted blob. A mismatch on load logs a notice and
// discards the blob; there is no migration.
const Version = "1"

// Snapshot is the persisted local state: the cached resource collections,
// serialized per kind in display order.
type Snapshot struct {
	Version   string                     `json:"version"`
	SavedAt   time.Time                  `json:"savedAt"`
	Resources map[string]json.RawMessage `json:"resources"`
}

func NewSnapshot() *Snapshot {
	return &Snapshot{
		Version:   Version,
		Resources: map[string]json.RawMessage{},
	}
}

// LocalStore persists console state between runs.
type LocalStore interface {
	Load() (*Snapshot, error)
	Save(*Snapshot) error
}
