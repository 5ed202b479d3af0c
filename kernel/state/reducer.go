package state

import (
	"encoding/json"
	"fmt"

	"github.com/openziti/foundation/v2/stringz"
	"github.com/tigerater/chronoctl/kernel/model"
)

// Reduce is the pure transition function (collection, action) -> collection.
// It never mutates its input: maps and slices are cloned on write, so
// snapshots handed out before a dispatch stay valid.
func Reduce[E Entity](c Collection[E], action Action[E]) Collection[E] {
	switch a := action.(type) {
	case SetAll[E]:
		return reduceSetAll(c, a)
	case SetOne[E]:
		return reduceSetOne(c, a)
	case Remove[E]:
		return reduceRemove(c, a)
	case Edit[E]:
		return reduceEdit(c, a)
	case AddLabel[E]:
		return reduceAddLabel(c, a)
	case RemoveLabel[E]:
		return reduceRemoveLabel(c, a)
	default:
		panic(fmt.Sprintf("unhandled action type %T", action))
	}
}

func reduceSetAll[E Entity](c Collection[E], a SetAll[E]) Collection[E] {
	if a.Entities == nil {
		c.Status = a.Status
		return c
	}

	byID := make(map[string]E, len(a.Entities))
	allIDs := make([]string, 0, len(a.Entities))
	for _, entity := range a.Entities {
		id := entity.GetID()
		if _, seen := byID[id]; !seen {
			allIDs = append(allIDs, id)
		}
		byID[id] = entity
	}
	return Collection[E]{ByID: byID, AllIDs: allIDs, Status: a.Status}
}

func reduceSetOne[E Entity](c Collection[E], a SetOne[E]) Collection[E] {
	id := a.Entity.GetID()

	byID := cloneByID(c.ByID)
	byID[id] = a.Entity

	allIDs := c.AllIDs
	if !stringz.Contains(c.AllIDs, id) {
		allIDs = append(append(make([]string, 0, len(c.AllIDs)+1), c.AllIDs...), id)
	}
	return Collection[E]{ByID: byID, AllIDs: allIDs, Status: c.Status}
}

func reduceRemove[E Entity](c Collection[E], a Remove[E]) Collection[E] {
	if _, present := c.ByID[a.ID]; !present {
		return c
	}

	byID := cloneByID(c.ByID)
	delete(byID, a.ID)

	allIDs := make([]string, 0, len(c.AllIDs)-1)
	for _, id := range c.AllIDs {
		if id != a.ID {
			allIDs = append(allIDs, id)
		}
	}
	return Collection[E]{ByID: byID, AllIDs: allIDs, Status: c.Status}
}

func reduceEdit[E Entity](c Collection[E], a Edit[E]) Collection[E] {
	existing, present := c.ByID[a.ID]
	if !present {
		return c
	}

	merged, err := shallowMerge(existing, a.Patch)
	if err != nil {
		return c
	}

	byID := cloneByID(c.ByID)
	byID[a.ID] = merged
	return Collection[E]{ByID: byID, AllIDs: c.AllIDs, Status: c.Status}
}

func reduceAddLabel[E Entity](c Collection[E], a AddLabel[E]) Collection[E] {
	return withLabels(c, a.ID, func(labels []model.Label) []model.Label {
		return append(append(make([]model.Label, 0, len(labels)+1), labels...), a.Label)
	})
}

func reduceRemoveLabel[E Entity](c Collection[E], a RemoveLabel[E]) Collection[E] {
	return withLabels(c, a.ID, func(labels []model.Label) []model.Label {
		filtered := make([]model.Label, 0, len(labels))
		for _, label := range labels {
			if label.ID != a.LabelID {
				filtered = append(filtered, label)
			}
		}
		return filtered
	})
}

// withLabels rewrites the label list of the entity at id through fn. Entities
// whose kind carries no labels reduce to a no-op.
func withLabels[E Entity](c Collection[E], id string, fn func([]model.Label) []model.Label) Collection[E] {
	entity, present := c.ByID[id]
	if !present {
		return c
	}
	labeled, ok := any(&entity).(model.Labeled)
	if !ok {
		return c
	}
	labeled.SetLabels(fn(labeled.GetLabels()))

	byID := cloneByID(c.ByID)
	byID[id] = entity
	return Collection[E]{ByID: byID, AllIDs: c.AllIDs, Status: c.Status}
}

// shallowMerge overlays the patch's top-level keys onto the entity's JSON
// form and decodes the result back into the entity type.
func shallowMerge[E Entity](entity E, patch map[string]any) (E, error) {
	var zero E

	raw, err := json.Marshal(entity)
	if err != nil {
		return zero, err
	}
	fields := map[string]any{}
	if err := json.Unmarshal(raw, &fields); err != nil {
		return zero, err
	}
	for key, value := range patch {
		fields[key] = value
	}
	merged, err := json.Marshal(fields)
	if err != nil {
		return zero, err
	}

	var out E
	if err := json.Unmarshal(merged, &out); err != nil {
		return zero, err
	}
	return out, nil
}

func cloneByID[E Entity](byID map[string]E) map[string]E {
	clone := make(map[string]E, len(byID)+1)
	for id, entity := range byID {
		clone[id] = entity
	}
	return clone
}
