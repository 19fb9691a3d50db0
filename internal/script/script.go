// Package script replays a YAML list of memory operations into a registry.
package script

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/rcliao/memgraph/internal/memory"
	"github.com/rcliao/memgraph/internal/model"
)

// Operation names accepted in a step's op field.
const (
	OpAddPattern  = "add_pattern"
	OpAddMemory   = "add_memory"
	OpFillEpisode = "fill_episode"
	OpAttend      = "attend"
)

// Step is one operation of a script.
type Step struct {
	Op        string    `yaml:"op"`
	Event     string    `yaml:"event,omitempty"`
	Sense     string    `yaml:"sense,omitempty"`
	Neuron    int       `yaml:"neuron,omitempty"`
	Patterns  *[]string `yaml:"patterns,omitempty"` // nil means no predecessor
	Dimension string    `yaml:"dimension,omitempty"`
	Chain     string    `yaml:"chain,omitempty"`
	Pattern   string    `yaml:"pattern,omitempty"`
}

// Script is an ordered list of steps.
type Script struct {
	Steps []Step `yaml:"steps"`
}

// Result summarizes an Apply.
type Result struct {
	Steps int `json:"steps"`
}

// Load reads and validates the script at path.
func Load(path string) (*Script, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open script: %w", err)
	}
	defer f.Close()

	s, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Decode parses and validates a script document.
func Decode(r io.Reader) (*Script, error) {
	var s Script
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode script: %w", err)
	}
	for i, st := range s.Steps {
		if err := st.validate(); err != nil {
			return nil, fmt.Errorf("step %d: %w", i+1, err)
		}
	}
	return &s, nil
}

func (st Step) validate() error {
	switch st.Op {
	case OpAddPattern, OpAddMemory, OpFillEpisode:
		if st.Event == "" {
			return fmt.Errorf("%s: event is required", st.Op)
		}
		if st.Sense == "" {
			return fmt.Errorf("%s: sense is required", st.Op)
		}
		if st.Dimension != "" || st.Chain != "" || st.Pattern != "" {
			return fmt.Errorf("%s: dimension, chain and pattern only apply to %s", st.Op, OpAttend)
		}
		if st.Op == OpAddPattern {
			if _, ok := memory.Classify(st.Event); !ok {
				return fmt.Errorf("%s %q: %w", st.Op, st.Event, memory.ErrUnclassifiableEvent)
			}
		}
	case OpAttend:
		if st.Chain == "" {
			return fmt.Errorf("%s: chain is required", st.Op)
		}
		if !model.Dimension(st.Dimension).Valid() {
			return fmt.Errorf("%s: %w %q", st.Op, memory.ErrUnknownDimension, st.Dimension)
		}
		if st.Event != "" || st.Sense != "" || st.Patterns != nil {
			return fmt.Errorf("%s: event, sense and patterns do not apply", st.Op)
		}
	case "":
		return errors.New("op is required")
	default:
		return fmt.Errorf("unknown op %q", st.Op)
	}
	return nil
}

func (st Step) patterns() model.Patterns {
	if st.Patterns == nil {
		return model.NoPatterns
	}
	return model.PatternsOf(*st.Patterns...)
}

// Apply runs the steps in order against reg and stops at the first failure.
// Steps applied before the failure stay applied.
func Apply(reg *memory.Registry, s *Script) (*Result, error) {
	res := &Result{}
	for i, st := range s.Steps {
		if err := apply(reg, st); err != nil {
			return res, fmt.Errorf("step %d (%s): %w", i+1, st.Op, err)
		}
		res.Steps++
	}
	return res, nil
}

func apply(reg *memory.Registry, st Step) error {
	switch st.Op {
	case OpAddPattern:
		return reg.AddPattern(st.Event, st.Sense, st.Neuron, st.patterns())
	case OpAddMemory:
		reg.AddMemory(st.Event, st.Sense, st.Neuron, st.patterns())
		return nil
	case OpFillEpisode:
		return reg.FillEpisode(st.Event, st.Sense, st.Neuron, st.patterns())
	case OpAttend:
		return reg.ResolveAttention(model.Dimension(st.Dimension), st.Chain, st.Pattern)
	}
	return fmt.Errorf("unknown op %q", st.Op)
}
