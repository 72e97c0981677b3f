package tab

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrNoTabs is returned when there are no enabled tabs to display.
var ErrNoTabs = errors.New("no enabled tabs configured")

// Config is the contents of a tabs configuration file.
type Config struct {
	Tabs []Spec `yaml:"tabs"`
}

// LoadConfig reads and validates the tabs configuration file at path.
func LoadConfig(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	cfg, err := ParseConfig(b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// ParseConfig parses and validates a tabs configuration.
func ParseConfig(b []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	for i, spec := range cfg.Tabs {
		if spec.Name == "" {
			return nil, fmt.Errorf("tab %d: missing name", i+1)
		}
		if spec.Command == "" {
			return nil, fmt.Errorf("tab %d (%s): missing command", i+1, spec.Name)
		}
	}
	if len(cfg.Enabled()) == 0 {
		return nil, ErrNoTabs
	}
	return &cfg, nil
}

// Enabled returns the enabled tabs, in the order in which they were
// configured.
func (c *Config) Enabled() []Spec {
	var enabled []Spec
	for _, spec := range c.Tabs {
		if spec.Enabled {
			enabled = append(enabled, spec)
		}
	}
	return enabled
}

// Titles returns the names of the specs.
func Titles(specs []Spec) []string {
	titles := make([]string, len(specs))
	for i, spec := range specs {
		titles[i] = spec.Name
	}
	return titles
}
