package memory

import (
	"fmt"

	"github.com/rcliao/memgraph/internal/model"
)

// UpdateLink replaces the pattern list of event with the single pattern.
// Any previous predecessors are dropped, and LinkedTo entries elsewhere in
// the graph are left as they were.
func (g *Graph) UpdateLink(event, pattern string) error {
	r, ok := g.history[event]
	if !ok {
		return fmt.Errorf("update link %q in %s: %w", event, g.dimension, ErrMissingRecord)
	}
	r.PatternList = model.PatternsOf(pattern)
	return nil
}

// ResolveAttention confirms and/or redirects the head of chain.
//
// If the head only exists as an episode it is promoted to a confirmed record.
// A non-empty pattern then replaces the head's pattern list, whether the head
// was just promoted or already confirmed. Any other case is a no-op.
func (g *Graph) ResolveAttention(chain []string, pattern string) error {
	if len(chain) == 0 {
		return nil
	}
	head := chain[0]

	_, confirmed := g.history[head]
	ep, pending := g.episodes[head]

	switch {
	case !confirmed && pending:
		g.AddEvent(ep.Event, ep.Sense, ep.NeuronNumber, ep.PatternList)
		if pattern != "" {
			return g.UpdateLink(ep.Event, pattern)
		}
	case confirmed && pattern != "":
		return g.UpdateLink(head, pattern)
	}
	return nil
}
