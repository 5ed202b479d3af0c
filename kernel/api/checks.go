package api

import (
	"context"
	"net/http"

	"github.com/tigerater/chronoctl/kernel/model"
)

func (c *Client) GetChecks(ctx context.Context) ([]model.Check, error) {
	var resp struct {
		Checks []model.Check `json:"checks"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/v2/checks", c.orgQuery(), nil, http.StatusOK, &resp); err != nil {
		return nil, err
	}
	return resp.Checks, nil
}

func (c *Client) GetCheck(ctx context.Context, id string) (model.Check, error) {
	var check model.Check
	err := c.do(ctx, http.MethodGet, "/api/v2/checks/"+id, nil, nil, http.StatusOK, &check)
	return check, err
}

func (c *Client) PostCheck(ctx context.Context, check model.Check) (model.Check, error) {
	if check.OrgID == "" {
		check.OrgID = c.OrgID
	}
	var created model.Check
	err := c.do(ctx, http.MethodPost, "/api/v2/checks", nil, check, http.StatusCreated, &created)
	return created, err
}

func (c *Client) PatchCheck(ctx context.Context, id string, update map[string]any) (model.Check, error) {
	var patched model.Check
	err := c.do(ctx, http.MethodPatch, "/api/v2/checks/"+id, nil, update, http.StatusOK, &patched)
	return patched, err
}

func (c *Client) DeleteCheck(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/v2/checks/"+id, nil, nil, http.StatusNoContent, nil)
}
