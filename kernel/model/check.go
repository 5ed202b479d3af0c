package model

// Threshold maps a value range to an alert level for a threshold check.
type Threshold struct {
	Level     string  `json:"level"` // "ok", "info", "warn", "crit"
	Value     float64 `json:"value"`
	AllValues bool    `json:"allValues,omitempty"`
}

// Check is an alerting check: a query evaluated on a schedule, with
// thresholds deciding the produced status level.
type Check struct {
	ID                    string      `json:"id"`
	OrgID                 string      `json:"orgID"`
	Name                  string      `json:"name"`
	Query                 string      `json:"query"`
	Every                 string      `json:"every,omitempty"`
	Offset                string      `json:"offset,omitempty"`
	Status                string      `json:"status"` // "active" or "inactive"
	StatusMessageTemplate string      `json:"statusMessageTemplate,omitempty"`
	Thresholds            []Threshold `json:"thresholds,omitempty"`
	Labels                []Label     `json:"labels,omitempty"`
}

func (c Check) GetID() string {
	return c.ID
}

func (c *Check) GetLabels() []Label {
	return c.Labels
}

func (c *Check) SetLabels(labels []Label) {
	c.Labels = labels
}

func init() {
	RegisterKind(Kind{Singular: "check", Plural: "checks", APIPath: "/api/v2/checks", Labelable: true})
}
