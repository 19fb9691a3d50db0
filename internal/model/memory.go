// Package model defines the core memory data types.
package model

import "encoding/json"

// Dimension names one of the parallel memory graphs.
type Dimension string

const (
	Biological Dimension = "biological"
	Emotional  Dimension = "emotional"
	Cultural   Dimension = "cultural"
)

// Dimensions returns every dimension in fixed order.
func Dimensions() []Dimension {
	return []Dimension{Biological, Emotional, Cultural}
}

// Valid reports whether d is one of the known dimensions.
func (d Dimension) Valid() bool {
	switch d {
	case Biological, Emotional, Cultural:
		return true
	}
	return false
}

// Patterns is an ordered list of events a record causally follows.
// A Patterns with Valid false means no predecessor was recorded, which is
// different from a present but empty list.
type Patterns struct {
	IDs   []string
	Valid bool
}

// NoPatterns is the absent pattern list.
var NoPatterns = Patterns{}

// PatternsOf returns a present pattern list holding ids.
func PatternsOf(ids ...string) Patterns {
	return Patterns{IDs: append([]string{}, ids...), Valid: true}
}

// Contains reports whether id is in the list. Always false when absent.
func (p Patterns) Contains(id string) bool {
	if !p.Valid {
		return false
	}
	for _, x := range p.IDs {
		if x == id {
			return true
		}
	}
	return false
}

// Clone returns a copy that shares no backing array with p.
func (p Patterns) Clone() Patterns {
	if !p.Valid {
		return NoPatterns
	}
	return PatternsOf(p.IDs...)
}

func (p Patterns) MarshalJSON() ([]byte, error) {
	if !p.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(p.IDs)
}

func (p *Patterns) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*p = NoPatterns
		return nil
	}
	var ids []string
	if err := json.Unmarshal(b, &ids); err != nil {
		return err
	}
	*p = PatternsOf(ids...)
	return nil
}

// Record is a confirmed event in a memory graph.
type Record struct {
	Event        string   `json:"event"`
	Sense        string   `json:"sense"`
	NeuronNumber int      `json:"neuron_number"`
	PatternList  Patterns `json:"pattern_list"`
	LinkedTo     []string `json:"linked_to"`
}

// Clone returns a deep copy of r.
func (r Record) Clone() Record {
	r.PatternList = r.PatternList.Clone()
	r.LinkedTo = append([]string{}, r.LinkedTo...)
	return r
}

// Episode is an observed event that has not been confirmed yet.
type Episode struct {
	Event        string   `json:"event"`
	Sense        string   `json:"sense"`
	NeuronNumber int      `json:"neuron_number"`
	PatternList  Patterns `json:"pattern_list"`
}

// Clone returns a deep copy of e.
func (e Episode) Clone() Episode {
	e.PatternList = e.PatternList.Clone()
	return e
}

// SenseStats holds per-sense counters for one graph.
type SenseStats struct {
	NumberRegisters int `json:"number_registers"`
	// NumberOccurrences is nil until an episode has been filled for the sense.
	NumberOccurrences *int `json:"number_occurrences,omitempty"`
}

// Clone returns a copy that shares no pointers with s.
func (s SenseStats) Clone() SenseStats {
	if s.NumberOccurrences != nil {
		n := *s.NumberOccurrences
		s.NumberOccurrences = &n
	}
	return s
}

// Inclusion selects which dimensions contribute causal chains for a sense.
type Inclusion struct {
	Biological bool `json:"biological"`
	Emotional  bool `json:"emotional"`
	Cultural   bool `json:"cultural"`
}

// Includes reports whether the flag for d is set.
func (in Inclusion) Includes(d Dimension) bool {
	switch d {
	case Biological:
		return in.Biological
	case Emotional:
		return in.Emotional
	case Cultural:
		return in.Cultural
	}
	return false
}
