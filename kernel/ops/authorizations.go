package ops

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/tigerater/chronoctl/kernel/model"
	"github.com/tigerater/chronoctl/kernel/state"
)

func (c *Console) FetchAuthorizations(ctx context.Context) {
	c.State.Authorizations.Dispatch(state.SetAll[model.Authorization]{Status: state.Loading})

	auths, err := c.Client.GetAuthorizations(ctx)
	if err != nil {
		logrus.WithError(err).Error("failed to fetch authorizations")
		c.State.Authorizations.Dispatch(state.SetAll[model.Authorization]{Status: state.Error})
		c.Notify.Error(failureMessage("failed to fetch tokens", err))
		return
	}
	c.State.Authorizations.Dispatch(state.SetAll[model.Authorization]{Status: state.Done, Entities: emptyIfNil(auths)})
}

func (c *Console) CreateAuthorization(ctx context.Context, auth model.Authorization) (model.Authorization, error) {
	created, err := c.Client.PostAuthorization(ctx, auth)
	if err != nil {
		logrus.WithError(err).Error("failed to create authorization")
		c.Notify.Error(failureMessage("failed to create token", err))
		return model.Authorization{}, err
	}
	c.State.Authorizations.Dispatch(state.SetOne[model.Authorization]{Entity: created})
	c.Notify.Success("token created")
	return created, nil
}

func (c *Console) SetAuthorizationStatus(ctx context.Context, id, status string) (model.Authorization, error) {
	patched, err := c.Client.PatchAuthorizationStatus(ctx, id, status)
	if err != nil {
		logrus.WithError(err).Errorf("failed to update authorization [%s]", id)
		c.Notify.Error(failureMessage("failed to update token", err))
		return model.Authorization{}, err
	}
	c.State.Authorizations.Dispatch(state.SetOne[model.Authorization]{Entity: patched})
	c.Notify.Success(fmt.Sprintf("token set to %s", patched.Status))
	return patched, nil
}

func (c *Console) DeleteAuthorization(ctx context.Context, id string) {
	if err := c.Client.DeleteAuthorization(ctx, id); err != nil {
		logrus.WithError(err).Errorf("failed to delete authorization [%s]", id)
		c.Notify.Error(failureMessage("failed to delete token", err))
		return
	}
	c.State.Authorizations.Dispatch(state.Remove[model.Authorization]{ID: id})
	c.Notify.Success("token deleted")
}
