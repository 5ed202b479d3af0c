package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/tigerater/chronoctl/kernel/model"
)

// Members are scoped to the selected organization rather than queried by an
// orgID parameter.

func (c *Client) GetMembers(ctx context.Context) ([]model.Member, error) {
	var resp struct {
		Users []model.Member `json:"users"`
	}
	path := fmt.Sprintf("/api/v2/orgs/%s/members", c.OrgID)
	if err := c.do(ctx, http.MethodGet, path, nil, nil, http.StatusOK, &resp); err != nil {
		return nil, err
	}
	return resp.Users, nil
}

func (c *Client) PostMember(ctx context.Context, userID string) (model.Member, error) {
	var created model.Member
	path := fmt.Sprintf("/api/v2/orgs/%s/members", c.OrgID)
	err := c.do(ctx, http.MethodPost, path, nil, map[string]string{"id": userID}, http.StatusCreated, &created)
	return created, err
}

func (c *Client) DeleteMember(ctx context.Context, userID string) error {
	path := fmt.Sprintf("/api/v2/orgs/%s/members/%s", c.OrgID, userID)
	return c.do(ctx, http.MethodDelete, path, nil, nil, http.StatusNoContent, nil)
}
