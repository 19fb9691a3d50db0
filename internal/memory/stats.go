package memory

import "github.com/rcliao/memgraph/internal/model"

// Stats returns a snapshot of the per-sense statistics.
func (g *Graph) Stats() map[string]model.SenseStats {
	out := make(map[string]model.SenseStats, len(g.stats))
	for sense, st := range g.stats {
		out[sense] = st.Clone()
	}
	return out
}
