package export

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/pkg/errors"
	"github.com/tigerater/chronoctl/kernel/model"
	"github.com/tigerater/chronoctl/kernel/state"
)

// Document is the portable export format: a template-style meta header plus
// the exported content.
type Document struct {
	Meta    model.TemplateMeta `json:"meta"`
	Content any                `json:"content"`
}

// Exporter serializes cached resources into documents and hands them to a
// sink. Only kinds with a self-contained document form are exportable.
type Exporter struct {
	State *state.AppState
	Sink  Sink
}

func NewExporter(appState *state.AppState, sink Sink) *Exporter {
	return &Exporter{State: appState, Sink: sink}
}

func (e *Exporter) ExportDashboard(ctx context.Context, id string) (string, error) {
	dashboard, err := state.GetByID(e.State.Dashboards.State(), id)
	if err != nil {
		return "", err
	}
	doc := Document{
		Meta:    model.TemplateMeta{Name: dashboard.Name, Type: "dashboard", Description: dashboard.Description},
		Content: dashboard,
	}
	return e.put(ctx, dashboard.Name, doc)
}

func (e *Exporter) ExportTemplate(ctx context.Context, id string) (string, error) {
	template, err := state.GetByID(e.State.Templates.State(), id)
	if err != nil {
		return "", err
	}
	doc := Document{Meta: template.Meta, Content: template.Content}
	if doc.Meta.Name == "" {
		doc.Meta.Name = template.ID
	}
	return e.put(ctx, doc.Meta.Name, doc)
}

func (e *Exporter) put(ctx context.Context, name string, doc Document) (string, error) {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", errors.Wrap(err, "failed to serialize export document")
	}
	key := slug(name) + ".json"
	if err := e.Sink.Put(ctx, key, data); err != nil {
		return "", err
	}
	return key, nil
}

func slug(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ', r == '-', r == '_', r == '.':
			b.WriteRune('-')
		}
	}
	out := strings.Trim(b.String(), "-")
	if out == "" {
		return "export"
	}
	return out
}
