package model

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
)

// ConsoleConfig is the on-disk console configuration: the set of named
// backend endpoints plus the currently selected one.
type ConsoleConfig struct {
	Default   string                     `yaml:"default"`
	Endpoints map[string]*EndpointConfig `yaml:"endpoints"`
}

type EndpointConfig struct {
	URL    string `yaml:"url"`
	Token  string `yaml:"token"`
	Org    string `yaml:"org"`
	OrgID  string `yaml:"orgId"`
	Region string `yaml:"region,omitempty"` // used by the S3 export sink
}

var (
	configOnce sync.Once
	config     *ConsoleConfig
)

// ConfigPath returns the config file location, honoring CHRONOCTL_CONFIG.
func ConfigPath() string {
	if path := os.Getenv("CHRONOCTL_CONFIG"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), ".chronoctl", "config.yml")
	}
	return filepath.Join(home, ".chronoctl", "config.yml")
}

// GetConfig loads the console config once per process. A missing file is not
// an error; it yields an empty config so `chronoctl login` can create it.
func GetConfig() *ConsoleConfig {
	configOnce.Do(func() {
		cfg, err := LoadConfig(ConfigPath())
		if err != nil {
			logrus.WithError(err).Warnf("unable to load config from [%s], starting empty", ConfigPath())
			cfg = &ConsoleConfig{Endpoints: map[string]*EndpointConfig{}}
		}
		config = cfg
	})
	return config
}

func LoadConfig(path string) (*ConsoleConfig, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &ConsoleConfig{Endpoints: map[string]*EndpointConfig{}}, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read config [%s]", path)
	}

	cfg := &ConsoleConfig{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "failed to parse config [%s]", path)
	}
	if cfg.Endpoints == nil {
		cfg.Endpoints = map[string]*EndpointConfig{}
	}
	return cfg, nil
}

func (c *ConsoleConfig) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return errors.Wrap(err, "failed to create config directory")
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return errors.Wrap(err, "failed to marshal config")
	}
	return os.WriteFile(path, data, 0600)
}

// GetSelectedEndpointId returns the active endpoint name, falling back to the
// sole configured endpoint when no default is set.
func (c *ConsoleConfig) GetSelectedEndpointId() string {
	if c.Default != "" {
		return c.Default
	}
	if len(c.Endpoints) == 1 {
		for name := range c.Endpoints {
			return name
		}
	}
	return ""
}

func (c *ConsoleConfig) GetSelectedEndpoint() (*EndpointConfig, error) {
	id := c.GetSelectedEndpointId()
	if id == "" {
		return nil, errors.New("no endpoint selected; run 'chronoctl login' first")
	}
	endpoint, ok := c.Endpoints[id]
	if !ok {
		return nil, errors.Errorf("endpoint [%s] not found in config", id)
	}
	return endpoint, nil
}
