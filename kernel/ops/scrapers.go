package ops

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/tigerater/chronoctl/kernel/model"
	"github.com/tigerater/chronoctl/kernel/state"
)

func (c *Console) FetchScrapers(ctx context.Context) {
	c.State.Scrapers.Dispatch(state.SetAll[model.Scraper]{Status: state.Loading})

	scrapers, err := c.Client.GetScrapers(ctx)
	if err != nil {
		logrus.WithError(err).Error("failed to fetch scrapers")
		c.State.Scrapers.Dispatch(state.SetAll[model.Scraper]{Status: state.Error})
		c.Notify.Error(failureMessage("failed to fetch scrapers", err))
		return
	}
	c.State.Scrapers.Dispatch(state.SetAll[model.Scraper]{Status: state.Done, Entities: emptyIfNil(scrapers)})
}

func (c *Console) CreateScraper(ctx context.Context, scraper model.Scraper) (model.Scraper, error) {
	created, err := c.Client.PostScraper(ctx, scraper)
	if err != nil {
		logrus.WithError(err).Errorf("failed to create scraper '%s'", scraper.Name)
		c.Notify.Error(failureMessage("failed to create scraper", err))
		return model.Scraper{}, err
	}
	c.State.Scrapers.Dispatch(state.SetOne[model.Scraper]{Entity: created})
	c.Notify.Success(fmt.Sprintf("scraper '%s' created", created.Name))
	return created, nil
}

func (c *Console) UpdateScraper(ctx context.Context, id string, update map[string]any) (model.Scraper, error) {
	patched, err := c.Client.PatchScraper(ctx, id, update)
	if err != nil {
		logrus.WithError(err).Errorf("failed to update scraper [%s]", id)
		c.Notify.Error(failureMessage("failed to update scraper", err))
		return model.Scraper{}, err
	}
	c.State.Scrapers.Dispatch(state.SetOne[model.Scraper]{Entity: patched})
	c.Notify.Success(fmt.Sprintf("scraper '%s' updated", patched.Name))
	return patched, nil
}

func (c *Console) DeleteScraper(ctx context.Context, id string) {
	if err := c.Client.DeleteScraper(ctx, id); err != nil {
		logrus.WithError(err).Errorf("failed to delete scraper [%s]", id)
		c.Notify.Error(failureMessage("failed to delete scraper", err))
		return
	}
	c.State.Scrapers.Dispatch(state.Remove[model.Scraper]{ID: id})
	c.Notify.Success("scraper deleted")
}
