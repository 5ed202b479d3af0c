package model

// Member is a user's membership in the selected organization.
type Member struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"` // "member" or "owner"
}

func (m Member) GetID() string {
	return m.ID
}

func init() {
	RegisterKind(Kind{Singular: "member", Plural: "members", APIPath: "/api/v2/members"})
}
