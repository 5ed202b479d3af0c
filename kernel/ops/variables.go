package ops

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/tigerater/chronoctl/kernel/model"
	"github.com/tigerater/chronoctl/kernel/state"
)

func (c *Console) FetchVariables(ctx context.Context) {
	c.State.Variables.Dispatch(state.SetAll[model.Variable]{Status: state.Loading})

	variables, err := c.Client.GetVariables(ctx)
	if err != nil {
		logrus.WithError(err).Error("failed to fetch variables")
		c.State.Variables.Dispatch(state.SetAll[model.Variable]{Status: state.Error})
		c.Notify.Error(failureMessage("failed to fetch variables", err))
		return
	}
	c.State.Variables.Dispatch(state.SetAll[model.Variable]{Status: state.Done, Entities: emptyIfNil(variables)})
}

func (c *Console) CreateVariable(ctx context.Context, variable model.Variable) (model.Variable, error) {
	created, err := c.Client.PostVariable(ctx, variable)
	if err != nil {
		logrus.WithError(err).Errorf("failed to create variable '%s'", variable.Name)
		c.Notify.Error(failureMessage("failed to create variable", err))
		return model.Variable{}, err
	}
	c.State.Variables.Dispatch(state.SetOne[model.Variable]{Entity: created})
	c.Notify.Success(fmt.Sprintf("variable '%s' created", created.Name))
	return created, nil
}

func (c *Console) UpdateVariable(ctx context.Context, id string, update map[string]any) (model.Variable, error) {
	patched, err := c.Client.PatchVariable(ctx, id, update)
	if err != nil {
		logrus.WithError(err).Errorf("failed to update variable [%s]", id)
		c.Notify.Error(failureMessage("failed to update variable", err))
		return model.Variable{}, err
	}
	c.State.Variables.Dispatch(state.SetOne[model.Variable]{Entity: patched})
	c.Notify.Success(fmt.Sprintf("variable '%s' updated", patched.Name))
	return patched, nil
}

func (c *Console) DeleteVariable(ctx context.Context, id string) {
	if err := c.Client.DeleteVariable(ctx, id); err != nil {
		logrus.WithError(err).Errorf("failed to delete variable [%s]", id)
		c.Notify.Error(failureMessage("failed to delete variable", err))
		return
	}
	c.State.Variables.Dispatch(state.Remove[model.Variable]{ID: id})
	c.Notify.Success("variable deleted")
}

// SelectVariableValue records the user's picked value for a variable. This
// is console-local state, no backend call; a silent no-op if the variable
// was never fetched.
func (c *Console) SelectVariableValue(id, value string) {
	c.State.Variables.Dispatch(state.Edit[model.Variable]{
		ID:    id,
		Patch: map[string]any{"selected": []string{value}},
	})
}
