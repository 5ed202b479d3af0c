package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/pkg/errors"
	"github.com/tigerater/chronoctl/kernel/model"
)

func (c *Client) GetLabels(ctx context.Context) ([]model.Label, error) {
	var resp struct {
		Labels []model.Label `json:"labels"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/v2/labels", c.orgQuery(), nil, http.StatusOK, &resp); err != nil {
		return nil, err
	}
	return resp.Labels, nil
}

func (c *Client) PostLabel(ctx context.Context, label model.Label) (model.Label, error) {
	if label.OrgID == "" {
		label.OrgID = c.OrgID
	}
	var resp struct {
		Label model.Label `json:"label"`
	}
	err := c.do(ctx, http.MethodPost, "/api/v2/labels", nil, label, http.StatusCreated, &resp)
	return resp.Label, err
}

func (c *Client) PatchLabel(ctx context.Context, id string, update map[string]any) (model.Label, error) {
	var resp struct {
		Label model.Label `json:"label"`
	}
	err := c.do(ctx, http.MethodPatch, "/api/v2/labels/"+id, nil, update, http.StatusOK, &resp)
	return resp.Label, err
}

func (c *Client) DeleteLabel(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/v2/labels/"+id, nil, nil, http.StatusNoContent, nil)
}

// AddResourceLabel attaches an existing label to a resource of the given
// kind; the sub-resource path comes from the kind registry.
func (c *Client) AddResourceLabel(ctx context.Context, kind, resourceID, labelID string) (model.Label, error) {
	k, err := model.GetKind(kind)
	if err != nil {
		return model.Label{}, err
	}
	if !k.Labelable {
		return model.Label{}, errors.Errorf("resource kind '%s' does not support labels", kind)
	}

	var resp struct {
		Label model.Label `json:"label"`
	}
	path := fmt.Sprintf("%s/%s/labels", k.APIPath, resourceID)
	err = c.do(ctx, http.MethodPost, path, nil, map[string]string{"labelID": labelID}, http.StatusCreated, &resp)
	return resp.Label, err
}

func (c *Client) DeleteResourceLabel(ctx context.Context, kind, resourceID, labelID string) error {
	k, err := model.GetKind(kind)
	if err != nil {
		return err
	}
	if !k.Labelable {
		return errors.Errorf("resource kind '%s' does not support labels", kind)
	}

	path := fmt.Sprintf("%s/%s/labels/%s", k.APIPath, resourceID, labelID)
	return c.do(ctx, http.MethodDelete, path, nil, nil, http.StatusNoContent, nil)
}
