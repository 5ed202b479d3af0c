package api

import (
	"context"
	"net/http"

	"github.com/tigerater/chronoctl/kernel/model"
)

func (c *Client) GetTemplates(ctx context.Context) ([]model.Template, error) {
	var resp struct {
		Templates []model.Template `json:"templates"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/v2/templates", c.orgQuery(), nil, http.StatusOK, &resp); err != nil {
		return nil, err
	}
	return resp.Templates, nil
}

func (c *Client) GetTemplate(ctx context.Context, id string) (model.Template, error) {
	var template model.Template
	err := c.do(ctx, http.MethodGet, "/api/v2/templates/"+id, nil, nil, http.StatusOK, &template)
	return template, err
}

func (c *Client) PostTemplate(ctx context.Context, template model.Template) (model.Template, error) {
	if template.OrgID == "" {
		template.OrgID = c.OrgID
	}
	var created model.Template
	err := c.do(ctx, http.MethodPost, "/api/v2/templates", nil, template, http.StatusCreated, &created)
	return created, err
}

func (c *Client) DeleteTemplate(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/v2/templates/"+id, nil, nil, http.StatusNoContent, nil)
}
