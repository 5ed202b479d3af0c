package export

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/tigerater/chronoctl/kernel/model"
	"github.com/tigerater/chronoctl/kernel/state"
)

func TestExportDashboard_FileSink(t *testing.T) {
	appState := state.NewAppState()
	appState.Dashboards.Dispatch(state.SetAll[model.Dashboard]{Status: state.Done, Entities: []model.Dashboard{
		{ID: "d1", OrgID: "org-1", Name: "Service Overview", Description: "landing page"},
	}})

	dir := t.TempDir()
	exporter := NewExporter(appState, &FileSink{Dir: dir})

	key, err := exporter.ExportDashboard(context.Background(), "d1")
	if err != nil {
		t.Fatalf("ExportDashboard failed: %v", err)
	}
	if key != "service-overview.json" {
		t.Errorf("unexpected export key '%s'", key)
	}

	data, err := os.ReadFile(filepath.Join(dir, key))
	if err != nil {
		t.Fatalf("export file not written: %v", err)
	}
	doc := Document{}
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("export is not valid json: %v", err)
	}
	if doc.Meta.Type != "dashboard" || doc.Meta.Name != "Service Overview" {
		t.Errorf("unexpected document meta: %+v", doc.Meta)
	}
}

func TestExportDashboard_Missing(t *testing.T) {
	appState := state.NewAppState()
	appState.Dashboards.Dispatch(state.SetAll[model.Dashboard]{Status: state.Done, Entities: []model.Dashboard{}})

	exporter := NewExporter(appState, &FileSink{Dir: t.TempDir()})
	if _, err := exporter.ExportDashboard(context.Background(), "nope"); err == nil {
		t.Fatal("expected error for unknown dashboard id")
	}
}

func TestExportTemplate_FallsBackToID(t *testing.T) {
	appState := state.NewAppState()
	appState.Templates.Dispatch(state.SetAll[model.Template]{Status: state.Done, Entities: []model.Template{
		{ID: "t1", Content: json.RawMessage(`{"resources":[]}`)},
	}})

	dir := t.TempDir()
	exporter := NewExporter(appState, &FileSink{Dir: dir})

	key, err := exporter.ExportTemplate(context.Background(), "t1")
	if err != nil {
		t.Fatalf("ExportTemplate failed: %v", err)
	}
	if key != "t1.json" {
		t.Errorf("unexpected export key '%s'", key)
	}
}
