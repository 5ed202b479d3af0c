package state

// RemoteDataState describes the most recent bulk-fetch outcome for a
// collection. It is collection-level, never per-entity.
type RemoteDataState int

const (
	NotStarted RemoteDataState = iota
	Loading
	Done
	Error
)

func (s RemoteDataState) String() string {
	switch s {
	case NotStarted:
		return "not-started"
	case Loading:
		return "loading"
	case Done:
		return "done"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}

// Entity is any domain object with a stable string identifier.
type Entity interface {
	GetID() string
}

// Collection is the normalized per-kind slice of state: entities keyed by id,
// the id order defining list order, and the bulk-fetch status.
//
// Invariants, preserved by every reduction:
//   - AllIDs contains no duplicates
//   - every id in AllIDs has an entry in ByID and vice versa
//   - Status changes only through SetAll
type Collection[E Entity] struct {
	ByID   map[string]E
	AllIDs []string
	Status RemoteDataState
}

// NewCollection returns an initialized, empty collection with status
// NotStarted. The zero Collection value is deliberately distinguishable
// (nil ByID) so selectors can catch reads of never-initialized state.
func NewCollection[E Entity]() Collection[E] {
	return Collection[E]{ByID: map[string]E{}}
}

// Initialized reports whether the collection was created through
// NewCollection rather than being a zero value.
func (c Collection[E]) Initialized() bool {
	return c.ByID != nil
}

// Len returns the number of entities in the collection.
func (c Collection[E]) Len() int {
	return len(c.AllIDs)
}
