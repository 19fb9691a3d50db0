package memory

import (
	"fmt"
	"strings"
)

// ParseChain splits a comma separated event chain into trimmed identifiers.
// Empty elements are dropped; the first remaining element is the head.
func ParseChain(s string) []string {
	var chain []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			chain = append(chain, part)
		}
	}
	return chain
}

// CausalChain reconstructs the chain of events behind the first episode
// filled for sense.
//
// The root is that episode, or the confirmed record with the same identifier
// when one exists. The walk is depth-first pre-order through each pattern
// list. Patterns that name no confirmed record are skipped. Reaching an event
// that is already on the current path returns ErrCyclicPatternChain; the same
// event reached through two separate branches is emitted twice.
func (g *Graph) CausalChain(sense string) ([]string, error) {
	var root string
	found := false
	for _, id := range g.episodeOrder {
		if g.episodes[id].Sense == sense {
			root, found = id, true
			break
		}
	}
	if !found {
		return []string{}, nil
	}

	patterns := g.episodes[root].PatternList
	if r, ok := g.history[root]; ok {
		patterns = r.PatternList
	}

	type frame struct {
		event    string
		patterns []string
		next     int
	}

	chain := []string{root}
	onPath := map[string]bool{root: true}
	stack := []frame{{event: root, patterns: patterns.IDs}}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next == len(top.patterns) {
			delete(onPath, top.event)
			stack = stack[:len(stack)-1]
			continue
		}
		id := top.patterns[top.next]
		top.next++

		r, ok := g.history[id]
		if !ok {
			continue
		}
		if onPath[id] {
			return nil, fmt.Errorf("causal chain for %q in %s: %w at %q", sense, g.dimension, ErrCyclicPatternChain, id)
		}
		chain = append(chain, r.Event)
		onPath[id] = true
		stack = append(stack, frame{event: id, patterns: r.PatternList.IDs})
	}
	return chain, nil
}
