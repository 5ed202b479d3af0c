package model

import (
	"fmt"
	"sort"
	"sync"
)

// Kind describes a resource kind served by the backend API.
type Kind struct {
	Singular  string // e.g. "bucket"
	Plural    string // e.g. "buckets"
	APIPath   string // e.g. "/api/v2/buckets"
	Labelable bool   // supports the /labels sub-resource
}

var (
	registryMu sync.RWMutex
	registry   = make(map[string]Kind)
)

// RegisterKind registers a resource kind under its singular name.
// e.g. RegisterKind(Kind{Singular: "bucket", Plural: "buckets", APIPath: "/api/v2/buckets"})
func RegisterKind(k Kind) {
	registryMu.Lock()
	defer registryMu.Unlock()
	if _, dup := registry[k.Singular]; dup {
		panic("RegisterKind called twice for " + k.Singular)
	}
	registry[k.Singular] = k
}

// GetKind looks up a registered resource kind by singular name.
func GetKind(name string) (Kind, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	k, ok := registry[name]
	if !ok {
		return Kind{}, fmt.Errorf("resource kind '%s' not found in registry", name)
	}
	return k, nil
}

// Kinds returns the singular names of all registered kinds, sorted.
func Kinds() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
