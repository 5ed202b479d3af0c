package model

import "encoding/json"

// TemplateMeta names and versions a template document.
type TemplateMeta struct {
	Name        string `json:"name"`
	Version     string `json:"version,omitempty"`
	Type        string `json:"type,omitempty"`
	Description string `json:"description,omitempty"`
}

// Template is a document describing a set of resources (dashboards, cells,
// variables) that can be exported and re-applied elsewhere. Content is kept
// opaque; the console never interprets it beyond round-tripping.
type Template struct {
	ID      string          `json:"id"`
	OrgID   string          `json:"orgID,omitempty"`
	Meta    TemplateMeta    `json:"meta"`
	Content json.RawMessage `json:"content,omitempty"`
	Labels  []Label         `json:"labels,omitempty"`
}

func (t Template) GetID() string {
	return t.ID
}

func (t *Template) GetLabels() []Label {
	return t.Labels
}

func (t *Template) SetLabels(labels []Label) {
	t.Labels = labels
}

func init() {
	RegisterKind(Kind{Singular: "template", Plural: "templates", APIPath: "/api/v2/templates", Labelable: true})
}
