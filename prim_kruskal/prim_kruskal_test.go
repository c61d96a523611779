package prim_kruskal_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlath-corpus/builder"
	"github.com/katalvlaran/lvlath-corpus/core"
	"github.com/katalvlaran/lvlath-corpus/dfs"
	pk "github.com/katalvlaran/lvlath-corpus/prim_kruskal"
)

// assertSpanningForest checks acyclicity and |F| = |V| - trees, and that
// every forest edge belongs to g.
func assertSpanningForest(t *testing.T, g *core.Graph, f pk.Forest, trees int) {
	t.Helper()
	assert.Equal(t, trees, f.Trees)
	assert.Len(t, f.Edges, g.VertexCount()-trees)
	for _, e := range f.Edges {
		assert.True(t, g.HasEdge(e.From, e.To))
	}
	sub := core.MustGraph(g.Vertices(), f.Edges)
	assert.False(t, dfs.HasCycle(sub))
}

func TestKruskal_EmissionOrderTies(t *testing.T) {
	// Triangle 0-1-2 plus pendant 3: unit weights keep the first two triangle edges.
	g := core.MustGraph(core.Range(4), []core.Edge{
		{From: 0, To: 1}, {From: 1, To: 2}, {From: 2, To: 0}, {From: 2, To: 3},
	})
	f, err := pk.Kruskal(g)
	require.NoError(t, err)
	assert.Equal(t, []core.Edge{{From: 0, To: 1}, {From: 1, To: 2}, {From: 2, To: 3}}, f.Edges)
	assert.Equal(t, int64(3), f.Weight)
	assert.True(t, f.Spanning())
}

func TestPrim_MatchesForestShape(t *testing.T) {
	for seed := int64(0); seed < 10; seed++ {
		s, err := builder.Build(builder.Gnm(12, 14), builder.WithSeed(seed))
		require.NoError(t, err)
		k, err := pk.Kruskal(s.Graph)
		require.NoError(t, err)
		p, err := pk.Compute(s.Graph, pk.WithMethod(pk.MethodPrim))
		require.NoError(t, err)
		assertSpanningForest(t, s.Graph, k, k.Trees)
		assertSpanningForest(t, s.Graph, p, k.Trees)
	}
}

func TestPrim_Root(t *testing.T) {
	g := core.MustGraph(core.Range(3), []core.Edge{{From: 0, To: 1}, {From: 1, To: 2}})
	f, err := pk.Prim(g, 2)
	require.NoError(t, err)
	assert.Equal(t, []core.Edge{{From: 1, To: 2}, {From: 0, To: 1}}, f.Edges)

	_, err = pk.Prim(g, 7)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestForest_DisconnectedAndEdgeless(t *testing.T) {
	g := core.MustGraph(core.Range(5), []core.Edge{{From: 0, To: 1}, {From: 3, To: 4}})
	f, err := pk.Kruskal(g)
	require.NoError(t, err)
	assertSpanningForest(t, g, f, 3)

	_, err = pk.Compute(g, pk.WithRequireConnected())
	assert.ErrorIs(t, err, pk.ErrDisconnected)

	empty, err := pk.Kruskal(core.MustGraph(core.Range(1), nil))
	require.NoError(t, err)
	assert.Empty(t, empty.Edges)
	assert.Equal(t, 1, empty.Trees)
}

func TestCompute_WeightedAndInvalid(t *testing.T) {
	g := core.MustGraph(core.Range(3), []core.Edge{{From: 0, To: 1}, {From: 1, To: 2}, {From: 0, To: 2}})
	heavy := func(e core.Edge) int64 {
		if e.Key() == (core.EdgeKey{U: 0, V: 1}) {
			return 10
		}

		return 1
	}
	for _, m := range []string{pk.MethodKruskal, pk.MethodPrim} {
		f, err := pk.Compute(g, pk.WithMethod(m), pk.WithWeight(heavy))
		require.NoError(t, err)
		assert.Equal(t, int64(2), f.Weight, m)
	}

	_, err := pk.Compute(nil)
	assert.ErrorIs(t, err, pk.ErrInvalidGraph)
	_, err = pk.Compute(g, pk.WithMethod("boruvka"))
	assert.ErrorIs(t, err, pk.ErrInvalidGraph)
	assert.Panics(t, func() { pk.WithWeight(nil) })
}

func TestDisjointSet(t *testing.T) {
	ds := pk.NewDisjointSet([]int{1, 2, 3, 3})
	assert.Equal(t, 3, ds.Sets())
	assert.True(t, ds.Union(1, 2))
	assert.False(t, ds.Union(2, 1))
	assert.Equal(t, ds.Find(1), ds.Find(2))
	assert.NotEqual(t, ds.Find(1), ds.Find(3))
	assert.Equal(t, 2, ds.Sets())
}
