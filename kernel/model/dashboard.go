package model

// Cell positions a single view on a dashboard grid.
type Cell struct {
	ID     string `json:"id"`
	X      int32  `json:"x"`
	Y      int32  `json:"y"`
	W      int32  `json:"w"`
	H      int32  `json:"h"`
	ViewID string `json:"viewID,omitempty"`
}

type Dashboard struct {
	ID          string  `json:"id"`
	OrgID       string  `json:"orgID"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Cells       []Cell  `json:"cells,omitempty"`
	Labels      []Label `json:"labels,omitempty"`
}

func (d Dashboard) GetID() string {
	return d.ID
}

func (d *Dashboard) GetLabels() []Label {
	return d.Labels
}

func (d *Dashboard) SetLabels(labels []Label) {
	d.Labels = labels
}

func init() {
	RegisterKind(Kind{Singular: "dashboard", Plural: "dashboards", APIPath: "/api/v2/dashboards", Labelable: true})
}
