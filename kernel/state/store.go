package state

import (
	"sync"

	"github.com/tigerater/chronoctl/kernel/model"
)

// CollectionStore owns one collection and serializes dispatches against it.
// Dispatch runs the reduction to completion under the lock, so actions are
// never interleaved within a single collection. State returns the current
// snapshot; because reductions are clone-on-write, a returned snapshot is
// immutable even while later dispatches land.
type CollectionStore[E Entity] struct {
	mu  sync.RWMutex
	col Collection[E]
}

func NewCollectionStore[E Entity]() *CollectionStore[E] {
	return &CollectionStore[E]{col: NewCollection[E]()}
}

func (s *CollectionStore[E]) Dispatch(action Action[E]) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.col = Reduce(s.col, action)
}

func (s *CollectionStore[E]) State() Collection[E] {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.col
}

// AppState is the process-wide state tree: one collection per resource kind,
// all created empty with status NotStarted. It is torn down only when the
// process exits; there are no ambient globals, callers pass it explicitly.
type AppState struct {
	Labels         *CollectionStore[model.Label]
	Buckets        *CollectionStore[model.Bucket]
	Checks         *CollectionStore[model.Check]
	Dashboards     *CollectionStore[model.Dashboard]
	Variables      *CollectionStore[model.Variable]
	Authorizations *CollectionStore[model.Authorization]
	Members        *CollectionStore[model.Member]
	Templates      *CollectionStore[model.Template]
	Scrapers       *CollectionStore[model.Scraper]
}

func NewAppState() *AppState {
	return &AppState{
		Labels:         NewCollectionStore[model.Label](),
		Buckets:        NewCollectionStore[model.Bucket](),
		Checks:         NewCollectionStore[model.Check](),
		Dashboards:     NewCollectionStore[model.Dashboard](),
		Variables:      NewCollectionStore[model.Variable](),
		Authorizations: NewCollectionStore[model.Authorization](),
		Members:        NewCollectionStore[model.Member](),
		Templates:      NewCollectionStore[model.Template](),
		Scrapers:       NewCollectionStore[model.Scraper](),
	}
}
