package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const stateFileName = "local_state.json"

// FileStore keeps the snapshot as a JSON file under the console's config
// directory.
type FileStore struct {
	dir string
	mu  sync.RWMutex
}

func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

// DefaultDir returns the per-user state directory.
func DefaultDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), ".chronoctl")
	}
	return filepath.Join(home, ".chronoctl")
}

func (s *FileStore) path() string {
	return filepath.Join(s.dir, stateFileName)
}

// Load reads the persisted snapshot. A missing file or a version mismatch
// yields a fresh empty snapshot; the mismatch is logged, never migrated.
func (s *FileStore) Load() (*Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.path())
	if os.IsNotExist(err) {
		return NewSnapshot(), nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read local state [%s]", s.path())
	}

	snapshot := &Snapshot{}
	if err := json.Unmarshal(data, snapshot); err != nil {
		return nil, errors.Wrapf(err, "failed to parse local state [%s]", s.path())
	}
	if snapshot.Version != Version {
		logrus.Warnf("local state version mismatch (found '%s', want '%s'); discarding cached state", snapshot.Version, Version)
		return NewSnapshot(), nil
	}
	if snapshot.Resources == nil {
		snapshot.Resources = map[string]json.RawMessage{}
	}
	return snapshot, nil
}

func (s *FileStore) Save(snapshot *Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot.Version = Version
	snapshot.SavedAt = time.Now().UTC()

	if err := os.MkdirAll(s.dir, 0700); err != nil {
		return errors.Wrap(err, "failed to create state directory")
	}
	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to marshal local state")
	}
	if err := os.WriteFile(s.path(), data, 0600); err != nil {
		return errors.Wrapf(err, "failed to write local state [%s]", s.path())
	}
	return nil
}
