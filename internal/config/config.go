// Package config loads the per-sense dimension inclusion table.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/rcliao/memgraph/internal/model"
)

// EnvPath names the environment variable consulted for the config path.
const EnvPath = "MEMGRAPH_CONFIG"

// DefaultPath is used when neither a flag nor EnvPath is set.
const DefaultPath = "senses.yaml"

// Config maps each sense to the dimensions that contribute its causal chains.
type Config struct {
	Senses map[string]model.Inclusion
}

// flag decodes a boolean written either as true/false or as 1/0.
type flag bool

func (f *flag) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: expected a boolean or 0/1", n.Line)
	}
	v, err := strconv.ParseBool(n.Value)
	if err != nil {
		return fmt.Errorf("line %d: invalid flag %q", n.Line, n.Value)
	}
	*f = flag(v)
	return nil
}

type inclusionFile struct {
	Biological flag `yaml:"biological"`
	Emotional  flag `yaml:"emotional"`
	Cultural   flag `yaml:"cultural"`
}

type file struct {
	Senses map[string]inclusionFile `yaml:"senses"`
}

// ResolvePath returns flagPath if set, else $MEMGRAPH_CONFIG, else DefaultPath.
func ResolvePath(flagPath string) string {
	if flagPath != "" {
		return flagPath
	}
	if env := os.Getenv(EnvPath); env != "" {
		return env
	}
	return DefaultPath
}

// Load reads and decodes the config file at path.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	cfg, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Decode parses a config document. Unknown keys are rejected; an empty
// document yields an empty config.
func Decode(r io.Reader) (*Config, error) {
	var raw file
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	cfg := &Config{Senses: make(map[string]model.Inclusion, len(raw.Senses))}
	for sense, in := range raw.Senses {
		if sense == "" {
			return nil, errors.New("decode config: empty sense name")
		}
		cfg.Senses[sense] = model.Inclusion{
			Biological: bool(in.Biological),
			Emotional:  bool(in.Emotional),
			Cultural:   bool(in.Cultural),
		}
	}
	return cfg, nil
}
