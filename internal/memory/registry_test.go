package memory

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rcliao/memgraph/internal/model"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		event string
		want  model.Dimension
		ok    bool
	}{
		{"Agrado_b", model.Biological, true},
		{"Agrado_e", model.Emotional, true},
		{"Agrado_c", model.Cultural, true},
		{"Agrado", "", false},
		{"Agrado_x", "", false},
		{"_b", model.Biological, true},
	}
	for _, tt := range tests {
		got, ok := Classify(tt.event)
		assert.Equal(t, tt.ok, ok, tt.event)
		assert.Equal(t, tt.want, got, tt.event)
	}
}

func TestAddPatternRoutesBySuffix(t *testing.T) {
	r := NewRegistry()

	require.NoError(t, r.AddPattern("Agrado_b", "sight", 1, model.NoPatterns))
	require.NoError(t, r.AddPattern("Agrado_e", "sight", 89, model.NoPatterns))

	bio, _ := r.Graph(model.Biological)
	emo, _ := r.Graph(model.Emotional)
	cul, _ := r.Graph(model.Cultural)

	rec, ok := bio.Record("Agrado")
	require.True(t, ok)
	assert.Equal(t, 1, rec.NeuronNumber)

	rec, ok = emo.Record("Agrado")
	require.True(t, ok)
	assert.Equal(t, 89, rec.NeuronNumber)

	assert.Empty(t, cul.All())
}

func TestAddPatternStripsOnlySuffix(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.AddPattern("Bebe_b", "sight", 1, model.NoPatterns))

	bio, _ := r.Graph(model.Biological)
	_, ok := bio.Record("Bebe")
	assert.True(t, ok)
}

func TestAddPatternUnclassifiable(t *testing.T) {
	r := NewRegistry()

	err := r.AddPattern("Agrado", "sight", 1, model.NoPatterns)
	require.ErrorIs(t, err, ErrUnclassifiableEvent)
	for _, st := range r.Stats() {
		assert.Empty(t, st)
	}
}

func TestAddMemoryBroadcastsUnmodified(t *testing.T) {
	r := NewRegistry()
	r.AddMemory("Cancion_b", "sight", 2, model.PatternsOf("Agrado"))

	for _, d := range model.Dimensions() {
		g, err := r.Graph(d)
		require.NoError(t, err)
		rec, ok := g.Record("Cancion_b")
		require.True(t, ok, d)
		assert.Equal(t, []string{"Agrado"}, rec.PatternList.IDs)
	}
}

func TestFillEpisodeAllOrNothing(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.AddPattern("Agrado_b", "sight", 1, model.NoPatterns))

	err := r.FillEpisode("Pelicula", "sight", 9, model.PatternsOf("Tesis"))
	require.ErrorIs(t, err, ErrUnknownSense)

	bio, _ := r.Graph(model.Biological)
	assert.Empty(t, bio.Episodes())
	assert.Nil(t, bio.Stats()["sight"].NumberOccurrences)
}

func TestResolveAttentionUnknownDimension(t *testing.T) {
	r := NewRegistry()
	err := r.ResolveAttention("spiritual", "a,b", "")
	require.ErrorIs(t, err, ErrUnknownDimension)

	_, err = r.Graph("spiritual")
	require.ErrorIs(t, err, ErrUnknownDimension)
}

// seed replays the canonical scenario up to the episode fill.
func seed(t *testing.T, r *Registry) {
	t.Helper()
	require.NoError(t, r.AddPattern("Agrado_b", "sight", 1, model.NoPatterns))
	require.NoError(t, r.AddPattern("Agrado_e", "sight", 89, model.NoPatterns))
	r.AddMemory("Cancion", "sight", 2, model.PatternsOf("Agrado"))
	r.AddMemory("Tesis", "sight", 3, model.PatternsOf("Cancion"))
	require.NoError(t, r.FillEpisode("Pelicula", "sight", 9, model.PatternsOf("Tesis")))
}

func TestScenarioBiological(t *testing.T) {
	r := NewRegistry()
	seed(t, r)
	require.NoError(t, r.ResolveAttention(model.Biological, "Pelicula,Tesis,Cancion", ""))

	bio, _ := r.Graph(model.Biological)
	pel, ok := bio.Record("Pelicula")
	require.True(t, ok)
	assert.Equal(t, []string{"Tesis"}, pel.PatternList.IDs)

	tesis, _ := bio.Record("Tesis")
	assert.Equal(t, []string{"Pelicula"}, tesis.LinkedTo)
	cancion, _ := bio.Record("Cancion")
	assert.Equal(t, []string{"Tesis"}, cancion.LinkedTo)
	agrado, _ := bio.Record("Agrado")
	assert.Empty(t, agrado.LinkedTo, "Agrado has no pattern list so it collects no links")

	chain, err := bio.CausalChain("sight")
	require.NoError(t, err)
	assert.Equal(t, []string{"Pelicula", "Tesis", "Cancion", "Agrado"}, chain)

	st := r.Stats()
	assert.Equal(t, 4, st[model.Biological]["sight"].NumberRegisters)
	assert.Equal(t, 0, *st[model.Biological]["sight"].NumberOccurrences)
	assert.Equal(t, 3, st[model.Emotional]["sight"].NumberRegisters)
	assert.Equal(t, 2, st[model.Cultural]["sight"].NumberRegisters)
}

func TestScenarioCultural(t *testing.T) {
	r := NewRegistry()
	seed(t, r)
	require.NoError(t, r.ResolveAttention(model.Cultural, "Pelicula,Tesis,Cancion", ""))

	cul, _ := r.Graph(model.Cultural)
	_, ok := cul.Record("Agrado")
	assert.False(t, ok)

	chain, err := cul.CausalChain("sight")
	require.NoError(t, err)
	assert.Equal(t, []string{"Pelicula", "Tesis", "Cancion"}, chain)

	// Attention in one dimension leaves the others provisional.
	bio, _ := r.Graph(model.Biological)
	_, ok = bio.Record("Pelicula")
	assert.False(t, ok)
}

func TestCausalChainsFiltersDimensions(t *testing.T) {
	r := NewRegistry()
	seed(t, r)
	require.NoError(t, r.ResolveAttention(model.Biological, "Pelicula,Tesis,Cancion", ""))

	got, err := r.CausalChains(map[string]model.Inclusion{
		"sight":   {Biological: true},
		"hearing": {Biological: true, Emotional: true, Cultural: true},
		"taste":   {},
	})
	require.NoError(t, err)

	assert.Equal(t, map[model.Dimension][]string{
		model.Biological: {"Pelicula", "Tesis", "Cancion", "Agrado"},
	}, got["sight"])

	assert.Len(t, got["hearing"], 3)
	for _, chain := range got["hearing"] {
		assert.NotNil(t, chain)
		assert.Empty(t, chain)
	}

	require.Contains(t, got, "taste")
	assert.NotNil(t, got["taste"])
	assert.Empty(t, got["taste"])
}

func TestCausalChainsPropagatesCycle(t *testing.T) {
	r := NewRegistry()
	r.AddMemory("A", "sight", 1, model.PatternsOf("B"))
	r.AddMemory("B", "sight", 1, model.PatternsOf("A"))
	require.NoError(t, r.FillEpisode("A", "sight", 1, model.NoPatterns))

	_, err := r.CausalChains(map[string]model.Inclusion{"sight": {Emotional: true}})
	require.ErrorIs(t, err, ErrCyclicPatternChain)
}

func TestRegistryLogsOperations(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	r := NewRegistry(WithLogger(logger))

	require.NoError(t, r.AddPattern("Agrado_b", "sight", 1, model.NoPatterns))
	assert.Contains(t, buf.String(), "pattern added")
	assert.Contains(t, buf.String(), "dimension=biological")
	assert.Contains(t, buf.String(), "event=Agrado")
}

func TestSplitSuffix(t *testing.T) {
	key, d, ok := SplitSuffix("Agrado_c")
	require.True(t, ok)
	assert.Equal(t, "Agrado", key)
	assert.Equal(t, model.Cultural, d)

	key, _, ok = SplitSuffix("Agrado")
	assert.False(t, ok)
	assert.Equal(t, "Agrado", key)
}
