package ops

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/tigerater/chronoctl/kernel/model"
	"github.com/tigerater/chronoctl/kernel/state"
)

func (c *Console) FetchChecks(ctx context.Context) {
	c.State.Checks.Dispatch(state.SetAll[model.Check]{Status: state.Loading})

	checks, err := c.Client.GetChecks(ctx)
	if err != nil {
		logrus.WithError(err).Error("failed to fetch checks")
		c.State.Checks.Dispatch(state.SetAll[model.Check]{Status: state.Error})
		c.Notify.Error(failureMessage("failed to fetch checks", err))
		return
	}
	c.State.Checks.Dispatch(state.SetAll[model.Check]{Status: state.Done, Entities: emptyIfNil(checks)})
}

func (c *Console) CreateCheck(ctx context.Context, check model.Check) (model.Check, error) {
	created, err := c.Client.PostCheck(ctx, check)
	if err != nil {
		logrus.WithError(err).Errorf("failed to create check '%s'", check.Name)
		c.Notify.Error(failureMessage("failed to create check", err))
		return model.Check{}, err
	}
	c.State.Checks.Dispatch(state.SetOne[model.Check]{Entity: created})
	c.Notify.Success(fmt.Sprintf("check '%s' created", created.Name))
	return created, nil
}

func (c *Console) UpdateCheck(ctx context.Context, id string, update map[string]any) (model.Check, error) {
	patched, err := c.Client.PatchCheck(ctx, id, update)
	if err != nil {
		logrus.WithError(err).Errorf("failed to update check [%s]", id)
		c.Notify.Error(failureMessage("failed to update check", err))
		return model.Check{}, err
	}
	c.State.Checks.Dispatch(state.SetOne[model.Check]{Entity: patched})
	c.Notify.Success(fmt.Sprintf("check '%s' updated", patched.Name))
	return patched, nil
}

func (c *Console) DeleteCheck(ctx context.Context, id string) {
	if err := c.Client.DeleteCheck(ctx, id); err != nil {
		logrus.WithError(err).Errorf("failed to delete check [%s]", id)
		c.Notify.Error(failureMessage("failed to delete check", err))
		return
	}
	c.State.Checks.Dispatch(state.Remove[model.Check]{ID: id})
	c.Notify.Success("check deleted")
}
