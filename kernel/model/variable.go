package model

// VariableArguments holds the value source of a dashboard variable. Type is
// one of "constant", "map" or "query"; only the matching field is set.
type VariableArguments struct {
	Type     string            `json:"type"`
	Values   []string          `json:"values,omitempty"`
	ValueMap map[string]string `json:"valueMap,omitempty"`
	Query    string            `json:"query,omitempty"`
	Language string            `json:"language,omitempty"`
}

type Variable struct {
	ID        string            `json:"id"`
	OrgID     string            `json:"orgID"`
	Name      string            `json:"name"`
	Selected  []string          `json:"selected,omitempty"`
	Arguments VariableArguments `json:"arguments"`
	Labels    []Label           `json:"labels,omitempty"`
}

func (v Variable) GetID() string {
	return v.ID
}

func (v *Variable) GetLabels() []Label {
	return v.Labels
}

func (v *Variable) SetLabels(labels []Label) {
	v.Labels = labels
}

func init() {
	RegisterKind(Kind{Singular: "variable", Plural: "variables", APIPath: "/api/v2/variables", Labelable: true})
}
