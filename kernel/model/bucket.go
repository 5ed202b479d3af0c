package model

// RetentionRule controls how long points written to a bucket are kept.
// EverySeconds of zero means retention is infinite.
type RetentionRule struct {
	Type         string `json:"type"`
	EverySeconds int64  `json:"everySeconds"`
}

type Bucket struct {
	ID             string          `json:"id"`
	OrgID          string          `json:"orgID"`
	Name           string          `json:"name"`
	Description    string          `json:"description,omitempty"`
	RetentionRules []RetentionRule `json:"retentionRules"`
	Labels         []Label         `json:"labels,omitempty"`
}

func (b Bucket) GetID() string {
	return b.ID
}

func (b *Bucket) GetLabels() []Label {
	return b.Labels
}

func (b *Bucket) SetLabels(labels []Label) {
	b.Labels = labels
}

func init() {
	RegisterKind(Kind{Singular: "bucket", Plural: "buckets", APIPath: "/api/v2/buckets", Labelable: true})
}
