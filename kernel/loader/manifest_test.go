package loader

import (
	"os"
	"path/filepath"
	"testing"
)

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "resources.yml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadManifest_Full(t *testing.T) {
	path := writeManifest(t, `
labels:
  - name: prod
    properties:
      color: "#326BBA"
buckets:
  - name: metrics
    description: app metrics
    retentionSeconds: 604800
  - name: traces
variables:
  - name: host
    type: constant
    values: [a, b]
  - name: top_hosts
    type: query
    query: 'from(bucket:"metrics")'
dashboards:
  - name: overview
    description: landing page
`)

	m, err := LoadManifest(path)
	if err != nil {
		t.Fatalf("LoadManifest failed: %v", err)
	}
	if len(m.Buckets) != 2 {
		t.Errorf("expected 2 buckets, got %d", len(m.Buckets))
	}
	if len(m.Variables) != 2 {
		t.Errorf("expected 2 variables, got %d", len(m.Variables))
	}

	bucket := m.Buckets[0].ToModel()
	if len(bucket.RetentionRules) != 1 || bucket.RetentionRules[0].EverySeconds != 604800 {
		t.Errorf("unexpected retention rules: %v", bucket.RetentionRules)
	}

	infinite := m.Buckets[1].ToModel()
	if len(infinite.RetentionRules) != 0 {
		t.Errorf("bucket without retention should produce no rules, got %v", infinite.RetentionRules)
	}

	variable := m.Variables[1].ToModel()
	if variable.Arguments.Language != "flux" {
		t.Errorf("query variables should default to flux, got '%s'", variable.Arguments.Language)
	}
}

func TestLoadManifest_DuplicateName(t *testing.T) {
	path := writeManifest(t, `
buckets:
  - name: metrics
  - name: metrics
`)
	if _, err := LoadManifest(path); err == nil {
		t.Fatal("expected error for duplicate bucket name")
	}
}

func TestLoadManifest_MissingName(t *testing.T) {
	path := writeManifest(t, `
labels:
  - properties:
      color: red
`)
	if _, err := LoadManifest(path); err == nil {
		t.Fatal("expected error for label without name")
	}
}

func TestLoadManifest_BadVariableType(t *testing.T) {
	path := writeManifest(t, `
variables:
  - name: host
    type: map
`)
	if _, err := LoadManifest(path); err == nil {
		t.Fatal("expected error for unsupported variable type")
	}
}

func TestLoadManifest_FileMissing(t *testing.T) {
	if _, err := LoadManifest(filepath.Join(t.TempDir(), "nope.yml")); err == nil {
		t.Fatal("expected error for missing manifest file")
	}
}
