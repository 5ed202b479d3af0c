package loader

import (
	"os"

	"github.com/pkg/errors"
	"github.com/tigerater/chronoctl/kernel/model"
	"gopkg.in/yaml.v2"
)

// Manifest is a declarative description of org resources, applied through
// the reconciler. Only name-addressable kinds belong here; the backend
// assigns ids.
type Manifest struct {
	Labels     []LabelYaml     `yaml:"labels"`
	Buckets    []BucketYaml    `yaml:"buckets"`
	Variables  []VariableYaml  `yaml:"variables"`
	Dashboards []DashboardYaml `yaml:"dashboards"`
}

type LabelYaml struct {
	Name       string            `yaml:"name"`
	Properties map[string]string `yaml:"properties"`
}

type BucketYaml struct {
	Name             string `yaml:"name"`
	Description      string `yaml:"description"`
	RetentionSeconds int64  `yaml:"retentionSeconds"`
}

type VariableYaml struct {
	Type   string   `yaml:"type"`
	Name   string   `yaml:"name"`
	Values []string `yaml:"values"`
	Query  string   `yaml:"query"`
}

type DashboardYaml struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read manifest [%s]", path)
	}

	manifest := &Manifest{}
	if err := yaml.Unmarshal(data, manifest); err != nil {
		return nil, errors.Wrapf(err, "failed to parse manifest [%s]", path)
	}
	if err := manifest.Validate(); err != nil {
		return nil, err
	}
	return manifest, nil
}

// Validate catches client-side mistakes before anything reaches the backend
// or the state tree.
func (m *Manifest) Validate() error {
	seen := map[string]bool{}
	check := func(kind, name string) error {
		if name == "" {
			return errors.Errorf("manifest contains a %s without a name", kind)
		}
		key := kind + "/" + name
		if seen[key] {
			return errors.Errorf("duplicate %s '%s' in manifest", kind, name)
		}
		seen[key] = true
		return nil
	}

	for _, label := range m.Labels {
		if err := check("label", label.Name); err != nil {
			return err
		}
	}
	for _, bucket := range m.Buckets {
		if err := check("bucket", bucket.Name); err != nil {
			return err
		}
		if bucket.RetentionSeconds < 0 {
			return errors.Errorf("bucket '%s' has negative retention", bucket.Name)
		}
	}
	for _, variable := range m.Variables {
		if err := check("variable", variable.Name); err != nil {
			return err
		}
		switch variable.Type {
		case "constant", "query":
		default:
			return errors.Errorf("variable '%s' has unsupported type '%s'", variable.Name, variable.Type)
		}
	}
	for _, dashboard := range m.Dashboards {
		if err := check("dashboard", dashboard.Name); err != nil {
			return err
		}
	}
	return nil
}

func (l LabelYaml) ToModel() model.Label {
	return model.Label{Name: l.Name, Properties: l.Properties}
}

func (b BucketYaml) ToModel() model.Bucket {
	rules := []model.RetentionRule{}
	if b.RetentionSeconds > 0 {
		rules = append(rules, model.RetentionRule{Type: "expire", EverySeconds: b.RetentionSeconds})
	}
	return model.Bucket{Name: b.Name, Description: b.Description, RetentionRules: rules}
}

func (v VariableYaml) ToModel() model.Variable {
	args := model.VariableArguments{Type: v.Type}
	switch v.Type {
	case "constant":
		args.Values = v.Values
	case "query":
		args.Query = v.Query
		args.Language = "flux"
	}
	return model.Variable{Name: v.Name, Arguments: args}
}

func (d DashboardYaml) ToModel() model.Dashboard {
	return model.Dashboard{Name: d.Name, Description: d.Description}
}
