package api

import (
	"context"
	"net/http"

	"github.com/tigerater/chronoctl/kernel/model"
)

func (c *Client) GetScrapers(ctx context.Context) ([]model.Scraper, error) {
	var resp struct {
		Configurations []model.Scraper `json:"configurations"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/v2/scrapers", c.orgQuery(), nil, http.StatusOK, &resp); err != nil {
		return nil, err
	}
	return resp.Configurations, nil
}

func (c *Client) PostScraper(ctx context.Context, scraper model.Scraper) (model.Scraper, error) {
	if scraper.OrgID == "" {
		scraper.OrgID = c.OrgID
	}
	var created model.Scraper
	err := c.do(ctx, http.MethodPost, "/api/v2/scrapers", nil, scraper, http.StatusCreated, &created)
	return created, err
}

func (c *Client) PatchScraper(ctx context.Context, id string, update map[string]any) (model.Scraper, error) {
	var patched model.Scraper
	err := c.do(ctx, http.MethodPatch, "/api/v2/scrapers/"+id, nil, update, http.StatusOK, &patched)
	return patched, err
}

func (c *Client) DeleteScraper(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/v2/scrapers/"+id, nil, nil, http.StatusNoContent, nil)
}
