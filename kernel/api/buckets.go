package api

import (
	"context"
	"net/http"

	"github.com/tigerater/chronoctl/kernel/model"
)

func (c *Client) GetBuckets(ctx context.Context) ([]model.Bucket, error) {
	var resp struct {
		Buckets []model.Bucket `json:"buckets"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/v2/buckets", c.orgQuery(), nil, http.StatusOK, &resp); err != nil {
		return nil, err
	}
	return resp.Buckets, nil
}

func (c *Client) GetBucket(ctx context.Context, id string) (model.Bucket, error) {
	var bucket model.Bucket
	err := c.do(ctx, http.MethodGet, "/api/v2/buckets/"+id, nil, nil, http.StatusOK, &bucket)
	return bucket, err
}

func (c *Client) PostBucket(ctx context.Context, bucket model.Bucket) (model.Bucket, error) {
	if bucket.OrgID == "" {
		bucket.OrgID = c.OrgID
	}
	var created model.Bucket
	err := c.do(ctx, http.MethodPost, "/api/v2/buckets", nil, bucket, http.StatusCreated, &created)
	return created, err
}

// PatchBucket sends a partial update; only the keys present in update change.
func (c *Client) PatchBucket(ctx context.Context, id string, update map[string]any) (model.Bucket, error) {
	var patched model.Bucket
	err := c.do(ctx, http.MethodPatch, "/api/v2/buckets/"+id, nil, update, http.StatusOK, &patched)
	return patched, err
}

func (c *Client) DeleteBucket(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/v2/buckets/"+id, nil, nil, http.StatusNoContent, nil)
}
