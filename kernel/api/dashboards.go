package api

import (
	"context"
	"net/http"

	"github.com/tigerater/chronoctl/kernel/model"
)

func (c *Client) GetDashboards(ctx context.Context) ([]model.Dashboard, error) {
	var resp struct {
		Dashboards []model.Dashboard `json:"dashboards"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/v2/dashboards", c.orgQuery(), nil, http.StatusOK, &resp); err != nil {
		return nil, err
	}
	return resp.Dashboards, nil
}

func (c *Client) GetDashboard(ctx context.Context, id string) (model.Dashboard, error) {
	var dashboard model.Dashboard
	err := c.do(ctx, http.MethodGet, "/api/v2/dashboards/"+id, nil, nil, http.StatusOK, &dashboard)
	return dashboard, err
}

func (c *Client) PostDashboard(ctx context.Context, dashboard model.Dashboard) (model.Dashboard, error) {
	if dashboard.OrgID == "" {
		dashboard.OrgID = c.OrgID
	}
	var created model.Dashboard
	err := c.do(ctx, http.MethodPost, "/api/v2/dashboards", nil, dashboard, http.StatusCreated, &created)
	return created, err
}

func (c *Client) PatchDashboard(ctx context.Context, id string, update map[string]any) (model.Dashboard, error) {
	var patched model.Dashboard
	err := c.do(ctx, http.MethodPatch, "/api/v2/dashboards/"+id, nil, update, http.StatusOK, &patched)
	return patched, err
}

func (c *Client) DeleteDashboard(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/v2/dashboards/"+id, nil, nil, http.StatusNoContent, nil)
}
