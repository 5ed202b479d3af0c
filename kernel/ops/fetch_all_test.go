package ops

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tigerater/chronoctl/kernel/state"
	"gopkg.in/h2non/gock.v1"
)

func TestFetchAll_PrimesEveryCollection(t *testing.T) {
	defer gock.Off()
	gock.New(testURL).Get("/api/v2/labels").Reply(200).JSON(map[string]any{"labels": []any{}})
	gock.New(testURL).Get("/api/v2/buckets").Reply(200).JSON(map[string]any{"buckets": []map[string]any{{"id": "b1", "name": "metrics"}}})
	gock.New(testURL).Get("/api/v2/checks").Reply(200).JSON(map[string]any{"checks": []any{}})
	gock.New(testURL).Get("/api/v2/dashboards").Reply(200).JSON(map[string]any{"dashboards": []any{}})
	gock.New(testURL).Get("/api/v2/variables").Reply(200).JSON(map[string]any{"variables": []any{}})
	gock.New(testURL).Get("/api/v2/authorizations").Reply(200).JSON(map[string]any{"authorizations": []any{}})
	gock.New(testURL).Get("/api/v2/orgs/org-1/members").Reply(200).JSON(map[string]any{"users": []any{}})
	gock.New(testURL).Get("/api/v2/templates").Reply(200).JSON(map[string]any{"templates": []any{}})
	gock.New(testURL).Get("/api/v2/scrapers").Reply(200).JSON(map[string]any{"configurations": []any{}})

	c := testConsole()
	c.FetchAll(context.Background())

	assert.Equal(t, state.Done, c.State.Labels.State().Status)
	assert.Equal(t, state.Done, c.State.Buckets.State().Status)
	assert.Equal(t, state.Done, c.State.Checks.State().Status)
	assert.Equal(t, state.Done, c.State.Dashboards.State().Status)
	assert.Equal(t, state.Done, c.State.Variables.State().Status)
	assert.Equal(t, state.Done, c.State.Authorizations.State().Status)
	assert.Equal(t, state.Done, c.State.Members.State().Status)
	assert.Equal(t, state.Done, c.State.Templates.State().Status)
	assert.Equal(t, state.Done, c.State.Scrapers.State().Status)
	assert.Equal(t, 1, c.State.Buckets.State().Len())
}

func TestFetchAll_PartialFailureLeavesOthersDone(t *testing.T) {
	defer gock.Off()
	gock.New(testURL).Get("/api/v2/labels").Reply(200).JSON(map[string]any{"labels": []any{}})
	gock.New(testURL).Get("/api/v2/buckets").Reply(503).JSON(map[string]any{"message": "unavailable"})
	gock.New(testURL).Get("/api/v2/checks").Reply(200).JSON(map[string]any{"checks": []any{}})
	gock.New(testURL).Get("/api/v2/dashboards").Reply(200).JSON(map[string]any{"dashboards": []any{}})
	gock.New(testURL).Get("/api/v2/variables").Reply(200).JSON(map[string]any{"variables": []any{}})
	gock.New(testURL).Get("/api/v2/authorizations").Reply(200).JSON(map[string]any{"authorizations": []any{}})
	gock.New(testURL).Get("/api/v2/orgs/org-1/members").Reply(200).JSON(map[string]any{"users": []any{}})
	gock.New(testURL).Get("/api/v2/templates").Reply(200).JSON(map[string]any{"templates": []any{}})
	gock.New(testURL).Get("/api/v2/scrapers").Reply(200).JSON(map[string]any{"configurations": []any{}})

	c := testConsole()
	c.FetchAll(context.Background())

	assert.Equal(t, state.Error, c.State.Buckets.State().Status)
	assert.Equal(t, state.Done, c.State.Checks.State().Status)
	assert.Len(t, c.Notify.Active(), 1)
}
