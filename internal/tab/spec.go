package tab

import (
	"fmt"
	"log/slog"
	"sort"

	"gopkg.in/yaml.v3"
)

// Spec specifies a tab: a named command whose output is rendered whenever the
// tab is selected.
type Spec struct {
	Name    string   `yaml:"name"`
	Command string   `yaml:"command"`
	Args    []string `yaml:"args"`
	Env     Env      `yaml:"env"`
	Color   Color    `yaml:"color"`
	Enabled bool     `yaml:"enabled"`
	// Dir is the working directory in which to run the command. Empty means
	// the current working directory.
	Dir string `yaml:"dir"`
	// JSON is true if the command outputs JSON that should be pretty printed.
	JSON bool `yaml:"json"`
}

// UnmarshalYAML decodes a spec, enabling the tab unless told otherwise.
func (s *Spec) UnmarshalYAML(node *yaml.Node) error {
	// alias type sheds this method to avoid infinite recursion
	type raw Spec
	r := raw{Enabled: true}
	if err := node.Decode(&r); err != nil {
		return err
	}
	*s = Spec(r)
	return nil
}

func (s Spec) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("name", s.Name),
		slog.String("command", s.Command),
		slog.Any("args", s.Args),
	)
}

// Env is a set of environment variable overrides.
type Env map[string]string

// UnmarshalYAML accepts either a mapping of names to values, or a sequence of
// key/value records:
//
//	env:
//	  - key: TZ
//	    value: UTC
func (e *Env) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.MappingNode:
		m := make(map[string]string)
		if err := node.Decode(&m); err != nil {
			return err
		}
		*e = m
	case yaml.SequenceNode:
		var pairs []struct {
			Key   string `yaml:"key"`
			Value string `yaml:"value"`
		}
		if err := node.Decode(&pairs); err != nil {
			return err
		}
		m := make(map[string]string, len(pairs))
		for _, p := range pairs {
			if p.Key == "" {
				return fmt.Errorf("line %d: env entry missing key", node.Line)
			}
			m[p.Key] = p.Value
		}
		*e = m
	case yaml.ScalarNode:
		// A bare `env:` with no value decodes as a null scalar.
		if node.Tag == "!!null" {
			*e = nil
			return nil
		}
		return fmt.Errorf("line %d: env must be a mapping or a list", node.Line)
	default:
		return fmt.Errorf("line %d: env must be a mapping or a list", node.Line)
	}
	return nil
}

// Environ returns the overrides in KEY=VALUE form, sorted by key.
func (e Env) Environ() []string {
	keys := make([]string, 0, len(e))
	for k := range e {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	environ := make([]string, len(keys))
	for i, k := range keys {
		environ[i] = k + "=" + e[k]
	}
	return environ
}
