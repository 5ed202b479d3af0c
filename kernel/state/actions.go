package state

import "github.com/tigerater/chronoctl/kernel/model"

// Action is the closed set of transitions a collection reducer accepts.
// Reduce matches the set exhaustively and panics on anything else, so new
// action kinds cannot be added without handling them.
type Action[E Entity] interface {
	isAction()
}

// SetAll sets the collection status and, when Entities is non-nil, rebuilds
// ByID/AllIDs from it in input order. A nil Entities changes only the status,
// which is how Loading/Error are marked without discarding cached entities
// (the console keeps showing stale data while refreshing).
type SetAll[E Entity] struct {
	Status   RemoteDataState
	Entities []E
}

// SetOne upserts a single entity. Its id is appended to AllIDs only if not
// already present.
type SetOne[E Entity] struct {
	Entity E
}

// Remove deletes the entity with the given id. Removing an absent id is a
// no-op, not an error.
type Remove[E Entity] struct {
	ID string
}

// Edit shallow-merges Patch into the entity at ID, field by top-level JSON
// key. Editing an absent id is a silent no-op; callers are expected to fetch
// before editing.
type Edit[E Entity] struct {
	ID    string
	Patch map[string]any
}

// AddLabel appends a label to the entity's label list. A no-op when the
// entity is absent or its kind does not carry labels.
type AddLabel[E Entity] struct {
	ID    string
	Label model.Label
}

// RemoveLabel filters the label with LabelID out of the entity's label list.
type RemoveLabel[E Entity] struct {
	ID      string
	LabelID string
}

func (SetAll[E]) isAction()      {}
func (SetOne[E]) isAction()      {}
func (Remove[E]) isAction()      {}
func (Edit[E]) isAction()        {}
func (AddLabel[E]) isAction()    {}
func (RemoveLabel[E]) isAction() {}
