package api

import (
	"context"
	"net/http"

	"github.com/tigerater/chronoctl/kernel/model"
)

func (c *Client) GetAuthorizations(ctx context.Context) ([]model.Authorization, error) {
	var resp struct {
		Authorizations []model.Authorization `json:"authorizations"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/v2/authorizations", c.orgQuery(), nil, http.StatusOK, &resp); err != nil {
		return nil, err
	}
	return resp.Authorizations, nil
}

func (c *Client) PostAuthorization(ctx context.Context, auth model.Authorization) (model.Authorization, error) {
	if auth.OrgID == "" {
		auth.OrgID = c.OrgID
	}
	var created model.Authorization
	err := c.do(ctx, http.MethodPost, "/api/v2/authorizations", nil, auth, http.StatusCreated, &created)
	return created, err
}

// PatchAuthorizationStatus toggles a token between active and inactive.
func (c *Client) PatchAuthorizationStatus(ctx context.Context, id, status string) (model.Authorization, error) {
	var patched model.Authorization
	err := c.do(ctx, http.MethodPatch, "/api/v2/authorizations/"+id, nil, map[string]any{"status": status}, http.StatusOK, &patched)
	return patched, err
}

func (c *Client) DeleteAuthorization(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/v2/authorizations/"+id, nil, nil, http.StatusNoContent, nil)
}
