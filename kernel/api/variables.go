package api

import (
	"context"
	"net/http"

	"github.com/tigerater/chronoctl/kernel/model"
)

func (c *Client) GetVariables(ctx context.Context) ([]model.Variable, error) {
	var resp struct {
		Variables []model.Variable `json:"variables"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/v2/variables", c.orgQuery(), nil, http.StatusOK, &resp); err != nil {
		return nil, err
	}
	return resp.Variables, nil
}

func (c *Client) PostVariable(ctx context.Context, variable model.Variable) (model.Variable, error) {
	if variable.OrgID == "" {
		variable.OrgID = c.OrgID
	}
	var created model.Variable
	err := c.do(ctx, http.MethodPost, "/api/v2/variables", nil, variable, http.StatusCreated, &created)
	return created, err
}

func (c *Client) PatchVariable(ctx context.Context, id string, update map[string]any) (model.Variable, error) {
	var patched model.Variable
	err := c.do(ctx, http.MethodPatch, "/api/v2/variables/"+id, nil, update, http.StatusOK, &patched)
	return patched, err
}

func (c *Client) DeleteVariable(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/v2/variables/"+id, nil, nil, http.StatusNoContent, nil)
}
