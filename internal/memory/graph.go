// Package memory implements the per-dimension memory graphs and the registry
// that fans operations out across them.
package memory

import (
	"fmt"

	"github.com/rcliao/memgraph/internal/model"
)

// Graph holds one dimension's confirmed events, provisional episodes and
// per-sense statistics. It is not safe for concurrent use.
type Graph struct {
	dimension model.Dimension

	history      map[string]*model.Record
	episodes     map[string]*model.Episode
	episodeOrder []string
	stats        map[string]*model.SenseStats
}

// NewGraph returns an empty graph for dimension d.
func NewGraph(d model.Dimension) *Graph {
	return &Graph{
		dimension: d,
		history:   make(map[string]*model.Record),
		episodes:  make(map[string]*model.Episode),
		stats:     make(map[string]*model.SenseStats),
	}
}

// Dimension returns the dimension this graph was created for.
func (g *Graph) Dimension() model.Dimension {
	return g.dimension
}

// AddEvent inserts or replaces the confirmed record for event.
//
// Every existing record named in patterns that itself has a pattern list
// gets event appended to its LinkedTo. Empty identifiers in patterns are
// skipped.
func (g *Graph) AddEvent(event, sense string, neuronNumber int, patterns model.Patterns) {
	if patterns.Valid {
		for _, p := range patterns.IDs {
			if p == "" {
				continue
			}
			if prev, ok := g.history[p]; ok && prev.PatternList.Valid {
				prev.LinkedTo = append(prev.LinkedTo, event)
			}
		}
	}

	st, ok := g.stats[sense]
	if !ok {
		st = &model.SenseStats{}
		g.stats[sense] = st
	}
	st.NumberRegisters++

	g.history[event] = &model.Record{
		Event:        event,
		Sense:        sense,
		NeuronNumber: neuronNumber,
		PatternList:  patterns.Clone(),
		LinkedTo:     []string{},
	}
}

// FillEpisode inserts or replaces the provisional episode for event and
// recounts how many confirmed records name event as a pattern. The count is
// stored as the sense's NumberOccurrences.
//
// The sense must already have statistics, i.e. at least one AddEvent for it.
func (g *Graph) FillEpisode(event, sense string, neuronNumber int, patterns model.Patterns) error {
	st, ok := g.stats[sense]
	if !ok {
		return fmt.Errorf("fill episode %q in %s: %w %q", event, g.dimension, ErrUnknownSense, sense)
	}

	n := 0
	for _, r := range g.history {
		if r.PatternList.Contains(event) {
			n++
		}
	}
	st.NumberOccurrences = &n

	if _, ok := g.episodes[event]; !ok {
		g.episodeOrder = append(g.episodeOrder, event)
	}
	g.episodes[event] = &model.Episode{
		Event:        event,
		Sense:        sense,
		NeuronNumber: neuronNumber,
		PatternList:  patterns.Clone(),
	}
	return nil
}

// HasSense reports whether any event was ever recorded for sense.
func (g *Graph) HasSense(sense string) bool {
	_, ok := g.stats[sense]
	return ok
}

// Record returns a copy of the confirmed record for event.
func (g *Graph) Record(event string) (model.Record, bool) {
	r, ok := g.history[event]
	if !ok {
		return model.Record{}, false
	}
	return r.Clone(), true
}

// Episode returns a copy of the provisional episode for event.
func (g *Graph) Episode(event string) (model.Episode, bool) {
	e, ok := g.episodes[event]
	if !ok {
		return model.Episode{}, false
	}
	return e.Clone(), true
}

// All returns a snapshot of every confirmed record keyed by event.
func (g *Graph) All() map[string]model.Record {
	out := make(map[string]model.Record, len(g.history))
	for k, r := range g.history {
		out[k] = r.Clone()
	}
	return out
}

// Episodes returns a snapshot of the provisional episodes in the order they
// were first filled.
func (g *Graph) Episodes() []model.Episode {
	out := make([]model.Episode, 0, len(g.episodeOrder))
	for _, id := range g.episodeOrder {
		out = append(out, g.episodes[id].Clone())
	}
	return out
}
