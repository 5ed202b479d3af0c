package model

// Label is a user-defined tag attachable to most resource kinds. Labels are
// themselves a resource kind with their own collection.
type Label struct {
	ID         string            `json:"id"`
	OrgID      string            `json:"orgID,omitempty"`
	Name       string            `json:"name"`
	Properties map[string]string `json:"properties,omitempty"`
}

func (l Label) GetID() string {
	return l.ID
}

// Labeled is implemented by entities that carry a labels list.
type Labeled interface {
	GetLabels() []Label
	SetLabels([]Label)
}

func init() {
	RegisterKind(Kind{Singular: "label", Plural: "labels", APIPath: "/api/v2/labels"})
}
