package ops

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/tigerater/chronoctl/kernel/model"
	"github.com/tigerater/chronoctl/kernel/state"
)

func (c *Console) FetchMembers(ctx context.Context) {
	c.State.Members.Dispatch(state.SetAll[model.Member]{Status: state.Loading})

	members, err := c.Client.GetMembers(ctx)
	if err != nil {
		logrus.WithError(err).Error("failed to fetch members")
		c.State.Members.Dispatch(state.SetAll[model.Member]{Status: state.Error})
		c.Notify.Error(failureMessage("failed to fetch members", err))
		return
	}
	c.State.Members.Dispatch(state.SetAll[model.Member]{Status: state.Done, Entities: emptyIfNil(members)})
}

func (c *Console) AddMember(ctx context.Context, userID string) (model.Member, error) {
	added, err := c.Client.PostMember(ctx, userID)
	if err != nil {
		logrus.WithError(err).Errorf("failed to add member [%s]", userID)
		c.Notify.Error(failureMessage("failed to add member", err))
		return model.Member{}, err
	}
	c.State.Members.Dispatch(state.SetOne[model.Member]{Entity: added})
	c.Notify.Success(fmt.Sprintf("member '%s' added", added.Name))
	return added, nil
}

func (c *Console) RemoveMember(ctx context.Context, userID string) {
	if err := c.Client.DeleteMember(ctx, userID); err != nil {
		logrus.WithError(err).Errorf("failed to remove member [%s]", userID)
		c.Notify.Error(failureMessage("failed to remove member", err))
		return
	}
	c.State.Members.Dispatch(state.Remove[model.Member]{ID: userID})
	c.Notify.Success("member removed")
}
