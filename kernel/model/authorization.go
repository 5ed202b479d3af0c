package model

// Permission grants an action ("read" or "write") on a resource type,
// optionally scoped to a single resource id.
type Permission struct {
	Action   string             `json:"action"`
	Resource PermissionResource `json:"resource"`
}

type PermissionResource struct {
	Type  string `json:"type"`
	ID    string `json:"id,omitempty"`
	OrgID string `json:"orgID,omitempty"`
}

// Authorization is an API token plus the permissions it carries.
type Authorization struct {
	ID          string       `json:"id"`
	OrgID       string       `json:"orgID"`
	UserID      string       `json:"userID,omitempty"`
	Token       string       `json:"token,omitempty"`
	Status      string       `json:"status"` // "active" or "inactive"
	Description string       `json:"description,omitempty"`
	Permissions []Permission `json:"permissions"`
}

func (a Authorization) GetID() string {
	return a.ID
}

func init() {
	RegisterKind(Kind{Singular: "authorization", Plural: "authorizations", APIPath: "/api/v2/authorizations"})
}
