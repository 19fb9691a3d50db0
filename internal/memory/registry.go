package memory

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/rcliao/memgraph/internal/model"
)

// suffixes maps identifier suffixes to dimensions, in match order.
var suffixes = []struct {
	suffix    string
	dimension model.Dimension
}{
	{"_b", model.Biological},
	{"_e", model.Emotional},
	{"_c", model.Cultural},
}

// suffixLen is the length of every dimension suffix.
const suffixLen = 2

// Classify returns the dimension selected by the suffix of event.
func Classify(event string) (model.Dimension, bool) {
	for _, s := range suffixes {
		if strings.HasSuffix(event, s.suffix) {
			return s.dimension, true
		}
	}
	return "", false
}

// SplitSuffix classifies event and returns the key it is stored under: event
// without its two-character suffix.
func SplitSuffix(event string) (string, model.Dimension, bool) {
	d, ok := Classify(event)
	if !ok {
		return event, "", false
	}
	return event[:len(event)-suffixLen], d, true
}

// Registry owns one Graph per dimension and routes operations to them.
// It is not safe for concurrent use; callers serialize access.
type Registry struct {
	graphs map[model.Dimension]*Graph
	logger *slog.Logger
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the logger used for operation tracing.
func WithLogger(l *slog.Logger) Option {
	return func(r *Registry) {
		if l != nil {
			r.logger = l
		}
	}
}

// NewRegistry returns a registry with empty biological, emotional and
// cultural graphs.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		graphs: make(map[model.Dimension]*Graph, 3),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, d := range model.Dimensions() {
		r.graphs[d] = NewGraph(d)
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Graph returns the graph for dimension d.
func (r *Registry) Graph(d model.Dimension) (*Graph, error) {
	g, ok := r.graphs[d]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownDimension, d)
	}
	return g, nil
}

// AddPattern records event in the single dimension named by its suffix.
// The two-character suffix is stripped before storage.
func (r *Registry) AddPattern(event, sense string, neuronNumber int, patterns model.Patterns) error {
	key, d, ok := SplitSuffix(event)
	if !ok {
		return fmt.Errorf("add pattern %q: %w", event, ErrUnclassifiableEvent)
	}
	r.graphs[d].AddEvent(key, sense, neuronNumber, patterns)
	r.logger.Debug("pattern added", "dimension", d, "event", key, "sense", sense)
	return nil
}

// AddMemory records event unchanged in every dimension.
func (r *Registry) AddMemory(event, sense string, neuronNumber int, patterns model.Patterns) {
	for _, d := range model.Dimensions() {
		r.graphs[d].AddEvent(event, sense, neuronNumber, patterns)
	}
	r.logger.Debug("memory added", "event", event, "sense", sense)
}

// FillEpisode fills the episode in every dimension. If any dimension has
// never seen sense, no graph is modified.
func (r *Registry) FillEpisode(event, sense string, neuronNumber int, patterns model.Patterns) error {
	for _, d := range model.Dimensions() {
		if !r.graphs[d].HasSense(sense) {
			return fmt.Errorf("fill episode %q in %s: %w %q", event, d, ErrUnknownSense, sense)
		}
	}
	for _, d := range model.Dimensions() {
		if err := r.graphs[d].FillEpisode(event, sense, neuronNumber, patterns); err != nil {
			return err
		}
	}
	r.logger.Debug("episode filled", "event", event, "sense", sense)
	return nil
}

// ResolveAttention parses the comma separated chain and resolves its head in
// dimension d. See Graph.ResolveAttention.
func (r *Registry) ResolveAttention(d model.Dimension, chain, pattern string) error {
	g, err := r.Graph(d)
	if err != nil {
		return fmt.Errorf("resolve attention: %w", err)
	}
	events := ParseChain(chain)
	if err := g.ResolveAttention(events, pattern); err != nil {
		return err
	}
	r.logger.Debug("attention resolved", "dimension", d, "chain", events, "pattern", pattern)
	return nil
}

// CausalChains returns, per sense in config, the causal chain of every
// dimension whose flag is set. Dimensions with a cleared flag are left out of
// the sense's map.
func (r *Registry) CausalChains(config map[string]model.Inclusion) (map[string]map[model.Dimension][]string, error) {
	out := make(map[string]map[model.Dimension][]string, len(config))
	for sense, in := range config {
		chains := make(map[model.Dimension][]string)
		for _, d := range model.Dimensions() {
			if !in.Includes(d) {
				continue
			}
			chain, err := r.graphs[d].CausalChain(sense)
			if err != nil {
				return nil, err
			}
			chains[d] = chain
		}
		out[sense] = chains
	}
	return out, nil
}

// Stats returns every graph's per-sense statistics keyed by dimension.
func (r *Registry) Stats() map[model.Dimension]map[string]model.SenseStats {
	out := make(map[model.Dimension]map[string]model.SenseStats, len(r.graphs))
	for d, g := range r.graphs {
		out[d] = g.Stats()
	}
	return out
}
