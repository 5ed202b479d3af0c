package engine

import (
	"context"
	"reflect"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/tigerater/chronoctl/kernel/loader"
	"github.com/tigerater/chronoctl/kernel/model"
	"github.com/tigerater/chronoctl/kernel/ops"
	"github.com/tigerater/chronoctl/kernel/state"
)

// Change is one pending manifest application step. Creates carry the full
// entity; updates carry the target id and a partial patch.
type Change struct {
	Kind   string
	Name   string
	ID     string
	Create any
	Update map[string]any
}

type Diff struct {
	ToCreate  []Change
	ToUpdate  []Change
	Unchanged int
}

type Result struct {
	Created   int
	Updated   int
	Unchanged int
}

// Reconciler drives the cached collections toward a manifest. Resources on
// the backend that the manifest does not mention are left alone; apply is
// additive, not a prune.
type Reconciler struct {
	Console *ops.Console
}

func NewReconciler(console *ops.Console) *Reconciler {
	return &Reconciler{Console: console}
}

// Reconcile refreshes the involved collections, computes the diff and, when
// not a dry run, applies it through the ops layer. Create/update failures
// abort the apply; whatever landed before the failure stays applied.
func (r *Reconciler) Reconcile(ctx context.Context, manifest *loader.Manifest, dryRun bool) (*Result, error) {
	r.Console.FetchLabels(ctx)
	r.Console.FetchBuckets(ctx)
	r.Console.FetchVariables(ctx)
	r.Console.FetchDashboards(ctx)
	if err := r.fetchesSucceeded(); err != nil {
		return nil, err
	}

	diff := ComputeDiff(manifest, r.Console.State)
	result := &Result{Unchanged: diff.Unchanged}

	if dryRun {
		for _, change := range diff.ToCreate {
			logrus.Infof("dry-run: would create %s '%s'", change.Kind, change.Name)
		}
		for _, change := range diff.ToUpdate {
			logrus.Infof("dry-run: would update %s '%s'", change.Kind, change.Name)
		}
		result.Created = len(diff.ToCreate)
		result.Updated = len(diff.ToUpdate)
		return result, nil
	}

	for _, change := range diff.ToCreate {
		if err := r.applyCreate(ctx, change); err != nil {
			return result, errors.Wrapf(err, "failed to create %s '%s'", change.Kind, change.Name)
		}
		result.Created++
	}
	for _, change := range diff.ToUpdate {
		if err := r.applyUpdate(ctx, change); err != nil {
			return result, errors.Wrapf(err, "failed to update %s '%s'", change.Kind, change.Name)
		}
		result.Updated++
	}
	return result, nil
}

func (r *Reconciler) fetchesSucceeded() error {
	checks := map[string]state.RemoteDataState{
		"labels":     r.Console.State.Labels.State().Status,
		"buckets":    r.Console.State.Buckets.State().Status,
		"variables":  r.Console.State.Variables.State().Status,
		"dashboards": r.Console.State.Dashboards.State().Status,
	}
	for kind, status := range checks {
		if status != state.Done {
			return errors.Errorf("unable to load current %s; refusing to reconcile", kind)
		}
	}
	return nil
}

func (r *Reconciler) applyCreate(ctx context.Context, change Change) error {
	var err error
	switch change.Kind {
	case "label":
		_, err = r.Console.CreateLabel(ctx, change.Create.(model.Label))
	case "bucket":
		_, err = r.Console.CreateBucket(ctx, change.Create.(model.Bucket))
	case "variable":
		_, err = r.Console.CreateVariable(ctx, change.Create.(model.Variable))
	case "dashboard":
		_, err = r.Console.CreateDashboard(ctx, change.Create.(model.Dashboard))
	default:
		err = errors.Errorf("unknown change kind '%s'", change.Kind)
	}
	return err
}

func (r *Reconciler) applyUpdate(ctx context.Context, change Change) error {
	var err error
	switch change.Kind {
	case "label":
		_, err = r.Console.UpdateLabel(ctx, change.ID, change.Update)
	case "bucket":
		_, err = r.Console.UpdateBucket(ctx, change.ID, change.Update)
	case "variable":
		_, err = r.Console.UpdateVariable(ctx, change.ID, change.Update)
	case "dashboard":
		_, err = r.Console.UpdateDashboard(ctx, change.ID, change.Update)
	default:
		err = errors.Errorf("unknown change kind '%s'", change.Kind)
	}
	return err
}

// ComputeDiff matches manifest entries against the cached collections by
// name and buckets them into create/update/unchanged.
func ComputeDiff(manifest *loader.Manifest, appState *state.AppState) *Diff {
	diff := &Diff{}

	labels := map[string]model.Label{}
	for _, label := range state.GetAll(appState.Labels.State()) {
		labels[label.Name] = label
	}
	for _, want := range manifest.Labels {
		current, exists := labels[want.Name]
		switch {
		case !exists:
			diff.ToCreate = append(diff.ToCreate, Change{Kind: "label", Name: want.Name, Create: want.ToModel()})
		case !reflect.DeepEqual(current.Properties, want.Properties) && !(len(current.Properties) == 0 && len(want.Properties) == 0):
			diff.ToUpdate = append(diff.ToUpdate, Change{
				Kind: "label", Name: want.Name, ID: current.ID,
				Update: map[string]any{"properties": want.Properties},
			})
		default:
			diff.Unchanged++
		}
	}

	buckets := map[string]model.Bucket{}
	for _, bucket := range state.GetAll(appState.Buckets.State()) {
		buckets[bucket.Name] = bucket
	}
	for _, want := range manifest.Buckets {
		current, exists := buckets[want.Name]
		switch {
		case !exists:
			diff.ToCreate = append(diff.ToCreate, Change{Kind: "bucket", Name: want.Name, Create: want.ToModel()})
		case bucketDrifted(current, want):
			diff.ToUpdate = append(diff.ToUpdate, Change{
				Kind: "bucket", Name: want.Name, ID: current.ID,
				Update: map[string]any{
					"description":    want.Description,
					"retentionRules": want.ToModel().RetentionRules,
				},
			})
		default:
			diff.Unchanged++
		}
	}

	variables := map[string]model.Variable{}
	for _, variable := range state.GetAll(appState.Variables.State()) {
		variables[variable.Name] = variable
	}
	for _, want := range manifest.Variables {
		current, exists := variables[want.Name]
		switch {
		case !exists:
			diff.ToCreate = append(diff.ToCreate, Change{Kind: "variable", Name: want.Name, Create: want.ToModel()})
		case !variableArgsEqual(current.Arguments, want.ToModel().Arguments):
			diff.ToUpdate = append(diff.ToUpdate, Change{
				Kind: "variable", Name: want.Name, ID: current.ID,
				Update: map[string]any{"arguments": want.ToModel().Arguments},
			})
		default:
			diff.Unchanged++
		}
	}

	dashboards := map[string]model.Dashboard{}
	for _, dashboard := range state.GetAll(appState.Dashboards.State()) {
		dashboards[dashboard.Name] = dashboard
	}
	for _, want := range manifest.Dashboards {
		current, exists := dashboards[want.Name]
		switch {
		case !exists:
			diff.ToCreate = append(diff.ToCreate, Change{Kind: "dashboard", Name: want.Name, Create: want.ToModel()})
		case current.Description != want.Description:
			diff.ToUpdate = append(diff.ToUpdate, Change{
				Kind: "dashboard", Name: want.Name, ID: current.ID,
				Update: map[string]any{"description": want.Description},
			})
		default:
			diff.Unchanged++
		}
	}

	return diff
}

func bucketDrifted(current model.Bucket, want loader.BucketYaml) bool {
	if current.Description != want.Description {
		return true
	}
	var currentRetention int64
	for _, rule := range current.RetentionRules {
		if rule.Type == "expire" {
			currentRetention = rule.EverySeconds
		}
	}
	return currentRetention != want.RetentionSeconds
}

func variableArgsEqual(a, b model.VariableArguments) bool {
	if a.Type != b.Type || a.Query != b.Query {
		return false
	}
	if len(a.Values) != len(b.Values) {
		return false
	}
	for i := range a.Values {
		if a.Values[i] != b.Values[i] {
			return false
		}
	}
	return true
}
