package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/tigerater/chronoctl/kernel/model"
	"github.com/tigerater/chronoctl/kernel/ops"
	"github.com/tigerater/chronoctl/kernel/state"
)

// ConsoleMCPServer exposes the cached resource collections and the fetch
// operations over the model context protocol, so an agent can inspect and
// refresh console state without driving the CLI.
type ConsoleMCPServer struct {
	server  *server.MCPServer
	console *ops.Console
}

func NewConsoleMCPServer(console *ops.Console) *ConsoleMCPServer {
	srv := server.NewMCPServer(
		"Chronoctl Console",
		"v1.0.0",
		server.WithResourceCapabilities(true, true),
		server.WithToolCapabilities(true),
	)

	cs := &ConsoleMCPServer{
		server:  srv,
		console: console,
	}

	cs.registerTools()
	cs.registerResources()

	return cs
}

func (cs *ConsoleMCPServer) ServeStdio() error {
	return server.ServeStdio(cs.server)
}

func (cs *ConsoleMCPServer) registerTools() {
	list := mcp.NewTool("list_resources",
		mcp.WithDescription("List cached resources of a kind, with the collection load status"),
		mcp.WithString("kind",
			mcp.Description("Resource kind (e.g. bucket, dashboard, variable)"),
			mcp.Required(),
		),
	)
	cs.server.AddTool(list, cs.listResourcesHandler)

	fetch := mcp.NewTool("fetch_resources",
		mcp.WithDescription("Refresh a resource kind from the backend, then list it"),
		mcp.WithString("kind",
			mcp.Description("Resource kind (e.g. bucket, dashboard, variable)"),
			mcp.Required(),
		),
	)
	cs.server.AddTool(fetch, cs.fetchResourcesHandler)
}

func (cs *ConsoleMCPServer) registerResources() {
	resource := mcp.NewResource("chronoctl://notifications", "Console Notifications",
		mcp.WithResourceDescription("Active notifications raised by console operations"),
		mcp.WithMIMEType("application/json"),
	)
	cs.server.AddResource(resource, cs.notificationsHandler)
}

func (cs *ConsoleMCPServer) listResourcesHandler(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	kindName, err := request.RequireString("kind")
	if err != nil {
		return mcp.NewToolResultError("kind argument is required"), nil
	}
	if _, err := model.GetKind(kindName); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return cs.listResult(kindName)
}

func (cs *ConsoleMCPServer) fetchResourcesHandler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	kindName, err := request.RequireString("kind")
	if err != nil {
		return mcp.NewToolResultError("kind argument is required"), nil
	}
	if _, err := model.GetKind(kindName); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	switch kindName {
	case "label":
		cs.console.FetchLabels(ctx)
	case "bucket":
		cs.console.FetchBuckets(ctx)
	case "check":
		cs.console.FetchChecks(ctx)
	case "dashboard":
		cs.console.FetchDashboards(ctx)
	case "variable":
		cs.console.FetchVariables(ctx)
	case "authorization":
		cs.console.FetchAuthorizations(ctx)
	case "member":
		cs.console.FetchMembers(ctx)
	case "template":
		cs.console.FetchTemplates(ctx)
	case "scraper":
		cs.console.FetchScrapers(ctx)
	}
	return cs.listResult(kindName)
}

func (cs *ConsoleMCPServer) listResult(kindName string) (*mcp.CallToolResult, error) {
	status, entities := cs.collectionView(kindName)

	payload, err := json.Marshal(map[string]any{
		"kind":      kindName,
		"status":    status.String(),
		"count":     len(entities),
		"resources": entities,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to serialize %s list: %w", kindName, err)
	}
	return mcp.NewToolResultText(string(payload)), nil
}

func (cs *ConsoleMCPServer) collectionView(kindName string) (state.RemoteDataState, []any) {
	appState := cs.console.State
	switch kindName {
	case "label":
		return collectionView(appState.Labels.State())
	case "bucket":
		return collectionView(appState.Buckets.State())
	case "check":
		return collectionView(appState.Checks.State())
	case "dashboard":
		return collectionView(appState.Dashboards.State())
	case "variable":
		return collectionView(appState.Variables.State())
	case "authorization":
		return collectionView(appState.Authorizations.State())
	case "member":
		return collectionView(appState.Members.State())
	case "template":
		return collectionView(appState.Templates.State())
	case "scraper":
		return collectionView(appState.Scrapers.State())
	default:
		return state.NotStarted, nil
	}
}

func collectionView[E state.Entity](c state.Collection[E]) (state.RemoteDataState, []any) {
	entities := []any{}
	if c.Initialized() {
		for _, entity := range state.GetAll(c) {
			entities = append(entities, entity)
		}
	}
	return c.Status, entities
}

func (cs *ConsoleMCPServer) notificationsHandler(_ context.Context, _ mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	active := cs.console.Notify.Active()
	payload, err := json.Marshal(map[string]any{
		"count":         len(active),
		"notifications": active,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to serialize notifications: %w", err)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      "chronoctl://notifications",
			MIMEType: "application/json",
			Text:     string(payload),
		},
	}, nil
}
