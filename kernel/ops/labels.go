package ops

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/tigerater/chronoctl/kernel/model"
	"github.com/tigerater/chronoctl/kernel/state"
)

func (c *Console) FetchLabels(ctx context.Context) {
	c.State.Labels.Dispatch(state.SetAll[model.Label]{Status: state.Loading})

	labels, err := c.Client.GetLabels(ctx)
	if err != nil {
		logrus.WithError(err).Error("failed to fetch labels")
		c.State.Labels.Dispatch(state.SetAll[model.Label]{Status: state.Error})
		c.Notify.Error(failureMessage("failed to fetch labels", err))
		return
	}
	c.State.Labels.Dispatch(state.SetAll[model.Label]{Status: state.Done, Entities: emptyIfNil(labels)})
}

func (c *Console) CreateLabel(ctx context.Context, label model.Label) (model.Label, error) {
	created, err := c.Client.PostLabel(ctx, label)
	if err != nil {
		logrus.WithError(err).Errorf("failed to create label '%s'", label.Name)
		c.Notify.Error(failureMessage("failed to create label", err))
		return model.Label{}, err
	}
	c.State.Labels.Dispatch(state.SetOne[model.Label]{Entity: created})
	c.Notify.Success(fmt.Sprintf("label '%s' created", created.Name))
	return created, nil
}

func (c *Console) UpdateLabel(ctx context.Context, id string, update map[string]any) (model.Label, error) {
	patched, err := c.Client.PatchLabel(ctx, id, update)
	if err != nil {
		logrus.WithError(err).Errorf("failed to update label [%s]", id)
		c.Notify.Error(failureMessage("failed to update label", err))
		return model.Label{}, err
	}
	c.State.Labels.Dispatch(state.SetOne[model.Label]{Entity: patched})
	c.Notify.Success(fmt.Sprintf("label '%s' updated", patched.Name))
	return patched, nil
}

func (c *Console) DeleteLabel(ctx context.Context, id string) {
	if err := c.Client.DeleteLabel(ctx, id); err != nil {
		logrus.WithError(err).Errorf("failed to delete label [%s]", id)
		c.Notify.Error(failureMessage("failed to delete label", err))
		return
	}
	c.State.Labels.Dispatch(state.Remove[model.Label]{ID: id})
	c.Notify.Success("label deleted")
}
