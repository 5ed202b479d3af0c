package mcp

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/tigerater/chronoctl/kernel/api"
	"github.com/tigerater/chronoctl/kernel/model"
	"github.com/tigerater/chronoctl/kernel/notify"
	"github.com/tigerater/chronoctl/kernel/ops"
	"github.com/tigerater/chronoctl/kernel/state"
	"gopkg.in/h2non/gock.v1"
)

func testConsole() *ops.Console {
	client := api.NewClient(&model.EndpointConfig{URL: "http://chrono.test", Token: "tok", OrgID: "org-1"})
	gock.InterceptClient(client.HTTPClient)
	return ops.NewConsole(state.NewAppState(), client, notify.NewCenter())
}

func listRequest(kind string) mcp.CallToolRequest {
	return mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Arguments: map[string]any{
				"kind": kind,
			},
		},
	}
}

func TestNewConsoleMCPServer(t *testing.T) {
	server := NewConsoleMCPServer(testConsole())
	if server == nil {
		t.Fatal("expected server to be created")
	}
	if server.console == nil {
		t.Error("expected console to be set")
	}
}

func TestListResourcesHandler(t *testing.T) {
	console := testConsole()
	console.State.Buckets.Dispatch(state.SetAll[model.Bucket]{Status: state.Done, Entities: []model.Bucket{
		{ID: "b1", Name: "metrics"},
		{ID: "b2", Name: "traces"},
	}})

	server := NewConsoleMCPServer(console)
	result, err := server.listResourcesHandler(context.Background(), listRequest("bucket"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var response map[string]interface{}
	json.Unmarshal([]byte(result.Content[0].(mcp.TextContent).Text), &response)

	if int(response["count"].(float64)) != 2 {
		t.Errorf("expected 2 buckets, got %v", response["count"])
	}
	if response["status"] != "done" {
		t.Errorf("expected status done, got %v", response["status"])
	}
}

func TestListResourcesHandler_NotLoaded(t *testing.T) {
	server := NewConsoleMCPServer(testConsole())
	result, err := server.listResourcesHandler(context.Background(), listRequest("bucket"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var response map[string]interface{}
	json.Unmarshal([]byte(result.Content[0].(mcp.TextContent).Text), &response)

	if response["status"] != "not-started" {
		t.Errorf("expected status not-started, got %v", response["status"])
	}
	if int(response["count"].(float64)) != 0 {
		t.Errorf("expected empty list, got %v", response["count"])
	}
}

func TestListResourcesHandler_UnknownKind(t *testing.T) {
	server := NewConsoleMCPServer(testConsole())
	result, err := server.listResourcesHandler(context.Background(), listRequest("flurble"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.IsError {
		t.Error("expected error result for unknown kind")
	}
}

func TestFetchResourcesHandler(t *testing.T) {
	defer gock.Off()
	gock.New("http://chrono.test").
		Get("/api/v2/buckets").
		Reply(200).
		JSON(map[string]any{"buckets": []map[string]any{{"id": "b1", "name": "metrics"}}})

	server := NewConsoleMCPServer(testConsole())
	result, err := server.fetchResourcesHandler(context.Background(), listRequest("bucket"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var response map[string]interface{}
	json.Unmarshal([]byte(result.Content[0].(mcp.TextContent).Text), &response)

	if int(response["count"].(float64)) != 1 {
		t.Errorf("expected 1 bucket after fetch, got %v", response["count"])
	}
}

func TestNotificationsHandler(t *testing.T) {
	console := testConsole()
	console.Notify.Error("Failed to create bucket: name already taken")

	server := NewConsoleMCPServer(console)
	contents, err := server.notificationsHandler(context.Background(), mcp.ReadResourceRequest{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var response map[string]interface{}
	json.Unmarshal([]byte(contents[0].(mcp.TextResourceContents).Text), &response)

	if int(response["count"].(float64)) != 1 {
		t.Errorf("expected 1 notification, got %v", response["count"])
	}
}
