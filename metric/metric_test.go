package metric_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlath-corpus/builder"
	"github.com/katalvlaran/lvlath-corpus/core"
	"github.com/katalvlaran/lvlath-corpus/dfs"
	"github.com/katalvlaran/lvlath-corpus/metric"
)

func cycle(n int) *core.Graph {
	edges := make([]core.Edge, 0, n)
	for i := 0; i < n; i++ {
		edges = append(edges, core.Edge{From: i, To: (i + 1) % n})
	}

	return core.MustGraph(core.Range(n), edges)
}

func TestCompute_Path4(t *testing.T) {
	g := core.MustGraph(core.Range(4), []core.Edge{{From: 0, To: 1}, {From: 1, To: 2}, {From: 2, To: 3}})
	s, err := metric.Compute(g)
	require.NoError(t, err)
	assert.Equal(t, metric.FiniteValue(3), s.Diameter)
	assert.Equal(t, metric.FiniteValue(2), s.Radius)
	assert.Equal(t, metric.Infinite, s.Girth)
	assert.Equal(t, "inf", s.Girth.String())
	assert.Equal(t, 0, s.Triangles)
	assert.Equal(t, metric.FiniteValue(3), s.Eccentricity[0])
	assert.Equal(t, metric.FiniteValue(2), s.Eccentricity[1])
}

func TestEccentricities(t *testing.T) {
	g := core.MustGraph(core.Range(5), []core.Edge{{From: 0, To: 1}, {From: 1, To: 2}, {From: 1, To: 3}})
	ecc, err := metric.Eccentricities(g)
	require.NoError(t, err)
	require.Len(t, ecc, 5)
	assert.Equal(t, metric.Infinite, ecc[0], "vertex 4 is unreachable")
	assert.Equal(t, metric.Infinite, ecc[4])

	star := core.MustGraph(core.Range(4), []core.Edge{{From: 1, To: 0}, {From: 1, To: 2}, {From: 1, To: 3}})
	ecc, err = metric.Eccentricities(star)
	require.NoError(t, err)
	assert.Equal(t, map[int]metric.Value{
		0: metric.FiniteValue(2),
		1: metric.FiniteValue(1),
		2: metric.FiniteValue(2),
		3: metric.FiniteValue(2),
	}, ecc)

	s, err := metric.Compute(star)
	require.NoError(t, err)
	assert.Equal(t, s.Eccentricity, ecc)
	d, err := metric.Diameter(star)
	require.NoError(t, err)
	assert.Equal(t, metric.FiniteValue(2), d)
	r, err := metric.Radius(star)
	require.NoError(t, err)
	assert.Equal(t, metric.FiniteValue(1), r)

	_, err = metric.Eccentricities(nil)
	assert.ErrorIs(t, err, metric.ErrGraphNil)
}

func TestCompute_Triangle(t *testing.T) {
	s, err := metric.Compute(cycle(3))
	require.NoError(t, err)
	assert.Equal(t, metric.FiniteValue(3), s.Girth)
	assert.Equal(t, 1, s.Triangles)
	assert.Equal(t, "1", s.Diameter.String())
	assert.Equal(t, metric.FiniteValue(1), s.Radius)
}

func TestCompute_DisconnectedAndSingleton(t *testing.T) {
	g := core.MustGraph(core.Range(3), []core.Edge{{From: 0, To: 1}})
	s, err := metric.Compute(g)
	require.NoError(t, err)
	assert.False(t, s.Diameter.Finite)
	assert.False(t, s.Radius.Finite)

	one, err := metric.Compute(core.MustGraph(core.Range(1), nil))
	require.NoError(t, err)
	assert.Equal(t, metric.FiniteValue(0), one.Diameter)
	assert.Equal(t, metric.FiniteValue(0), one.Radius)

	_, err = metric.Compute(nil)
	assert.ErrorIs(t, err, metric.ErrGraphNil)
}

func TestGirth_Cycles(t *testing.T) {
	for n := 3; n <= 9; n++ {
		assert.Equal(t, metric.FiniteValue(n), metric.Girth(cycle(n)), "C%d", n)
	}
	// C6 with a chord 0-3 has girth 4.
	g := cycle(6)
	chord := core.MustGraph(g.Vertices(), append(g.Edges(), core.Edge{From: 0, To: 3}))
	assert.Equal(t, metric.FiniteValue(4), metric.Girth(chord))
}

func TestTriangles_Complete(t *testing.T) {
	for n := 3; n <= 7; n++ {
		s, err := builder.Build(builder.Complete(n))
		require.NoError(t, err)
		tri, err := metric.Triangles(s.Graph)
		require.NoError(t, err)
		assert.Equal(t, n*(n-1)*(n-2)/6, tri)
	}
}

// Girth is finite exactly when the graph has a cycle.
func TestGirth_AgreesWithCycleCheck(t *testing.T) {
	en, err := builder.NewEnumerator(5)
	require.NoError(t, err)
	for mask := uint64(0); mask < en.Count(); mask += 7 {
		g, err := en.Graph(mask)
		require.NoError(t, err)
		assert.Equal(t, dfs.HasCycle(g), metric.Girth(g).Finite, "mask %d", mask)
	}
}
