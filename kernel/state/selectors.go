package state

import (
	"github.com/pkg/errors"
)

// ErrNotFound is the cause of GetByID errors for ids absent from an
// initialized collection. Distinguish it from the panic below: not-found is
// a data condition, reading a never-initialized collection is a bug.
var ErrNotFound = errors.New("resource not found")

// GetAll projects the collection into its display order, mapping AllIDs
// through ByID.
func GetAll[E Entity](c Collection[E]) []E {
	mustBeInitialized(c)
	out := make([]E, 0, len(c.AllIDs))
	for _, id := range c.AllIDs {
		out = append(out, c.ByID[id])
	}
	return out
}

// GetByID returns the entity with the given id, or an error caused by
// ErrNotFound when the collection does not contain it.
func GetByID[E Entity](c Collection[E], id string) (E, error) {
	mustBeInitialized(c)
	entity, ok := c.ByID[id]
	if !ok {
		var zero E
		return zero, errors.Wrapf(ErrNotFound, "no entity with id [%s]", id)
	}
	return entity, nil
}

// GetAllMatching returns, in display order, the entities for which pred holds.
func GetAllMatching[E Entity](c Collection[E], pred func(E) bool) []E {
	all := GetAll(c)
	out := make([]E, 0, len(all))
	for _, entity := range all {
		if pred(entity) {
			out = append(out, entity)
		}
	}
	return out
}

func mustBeInitialized[E Entity](c Collection[E]) {
	if !c.Initialized() {
		var zero E
		panic(errors.Errorf("selector invoked on uninitialized %T collection; collections must be created via NewAppState", zero))
	}
}
