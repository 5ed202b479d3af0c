package ops

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/tigerater/chronoctl/kernel/model"
	"github.com/tigerater/chronoctl/kernel/state"
)

func (c *Console) FetchTemplates(ctx context.Context) {
	c.State.Templates.Dispatch(state.SetAll[model.Template]{Status: state.Loading})

	templates, err := c.Client.GetTemplates(ctx)
	if err != nil {
		logrus.WithError(err).Error("failed to fetch templates")
		c.State.Templates.Dispatch(state.SetAll[model.Template]{Status: state.Error})
		c.Notify.Error(failureMessage("failed to fetch templates", err))
		return
	}
	c.State.Templates.Dispatch(state.SetAll[model.Template]{Status: state.Done, Entities: emptyIfNil(templates)})
}

func (c *Console) CreateTemplate(ctx context.Context, template model.Template) (model.Template, error) {
	created, err := c.Client.PostTemplate(ctx, template)
	if err != nil {
		logrus.WithError(err).Errorf("failed to create template '%s'", template.Meta.Name)
		c.Notify.Error(failureMessage("failed to create template", err))
		return model.Template{}, err
	}
	c.State.Templates.Dispatch(state.SetOne[model.Template]{Entity: created})
	c.Notify.Success(fmt.Sprintf("template '%s' created", created.Meta.Name))
	return created, nil
}

func (c *Console) DeleteTemplate(ctx context.Context, id string) {
	if err := c.Client.DeleteTemplate(ctx, id); err != nil {
		logrus.WithError(err).Errorf("failed to delete template [%s]", id)
		c.Notify.Error(failureMessage("failed to delete template", err))
		return
	}
	c.State.Templates.Dispatch(state.Remove[model.Template]{ID: id})
	c.Notify.Success("template deleted")
}
