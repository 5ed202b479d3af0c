package ops

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/tigerater/chronoctl/kernel/model"
	"github.com/tigerater/chronoctl/kernel/state"
)

func (c *Console) FetchDashboards(ctx context.Context) {
	c.State.Dashboards.Dispatch(state.SetAll[model.Dashboard]{Status: state.Loading})

	dashboards, err := c.Client.GetDashboards(ctx)
	if err != nil {
		logrus.WithError(err).Error("failed to fetch dashboards")
		c.State.Dashboards.Dispatch(state.SetAll[model.Dashboard]{Status: state.Error})
		c.Notify.Error(failureMessage("failed to fetch dashboards", err))
		return
	}
	c.State.Dashboards.Dispatch(state.SetAll[model.Dashboard]{Status: state.Done, Entities: emptyIfNil(dashboards)})
}

func (c *Console) CreateDashboard(ctx context.Context, dashboard model.Dashboard) (model.Dashboard, error) {
	created, err := c.Client.PostDashboard(ctx, dashboard)
	if err != nil {
		logrus.WithError(err).Errorf("failed to create dashboard '%s'", dashboard.Name)
		c.Notify.Error(failureMessage("failed to create dashboard", err))
		return model.Dashboard{}, err
	}
	c.State.Dashboards.Dispatch(state.SetOne[model.Dashboard]{Entity: created})
	c.Notify.Success(fmt.Sprintf("dashboard '%s' created", created.Name))
	return created, nil
}

func (c *Console) UpdateDashboard(ctx context.Context, id string, update map[string]any) (model.Dashboard, error) {
	patched, err := c.Client.PatchDashboard(ctx, id, update)
	if err != nil {
		logrus.WithError(err).Errorf("failed to update dashboard [%s]", id)
		c.Notify.Error(failureMessage("failed to update dashboard", err))
		return model.Dashboard{}, err
	}
	c.State.Dashboards.Dispatch(state.SetOne[model.Dashboard]{Entity: patched})
	c.Notify.Success(fmt.Sprintf("dashboard '%s' updated", patched.Name))
	return patched, nil
}

func (c *Console) DeleteDashboard(ctx context.Context, id string) {
	if err := c.Client.DeleteDashboard(ctx, id); err != nil {
		logrus.WithError(err).Errorf("failed to delete dashboard [%s]", id)
		c.Notify.Error(failureMessage("failed to delete dashboard", err))
		return
	}
	c.State.Dashboards.Dispatch(state.Remove[model.Dashboard]{ID: id})
	c.Notify.Success("dashboard deleted")
}

func (c *Console) AddDashboardLabel(ctx context.Context, dashboardID, labelID string) error {
	added, err := c.Client.AddResourceLabel(ctx, "dashboard", dashboardID, labelID)
	if err != nil {
		logrus.WithError(err).Errorf("failed to add label to dashboard [%s]", dashboardID)
		c.Notify.Error(failureMessage("failed to add label", err))
		return err
	}
	c.State.Dashboards.Dispatch(state.AddLabel[model.Dashboard]{ID: dashboardID, Label: added})
	return nil
}

func (c *Console) RemoveDashboardLabel(ctx context.Context, dashboardID, labelID string) {
	if err := c.Client.DeleteResourceLabel(ctx, "dashboard", dashboardID, labelID); err != nil {
		logrus.WithError(err).Errorf("failed to remove label from dashboard [%s]", dashboardID)
		c.Notify.Error(failureMessage("failed to remove label", err))
		return
	}
	c.State.Dashboards.Dispatch(state.RemoveLabel[model.Dashboard]{ID: dashboardID, LabelID: labelID})
}
