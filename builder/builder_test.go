// SPDX-License-Identifier: MIT
// Package builder_test verifies family constructors: parameter validation,
// vertex-id contract, family-specific structure and determinism.
package builder_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlath-corpus/builder"
	"github.com/katalvlaran/lvlath-corpus/core"
)

const testSeed = 20240607

// TestFamilies_VertexContract runs every family over its admissible n range
// and checks ids 0..n-1, simple-graph edges and the stored family label.
func TestFamilies_VertexContract(t *testing.T) {
	rng := rand.New(rand.NewSource(testSeed))
	for _, f := range builder.Families() {
		for n := f.MinNodes(); n <= 20; n++ {
			for rep := 0; rep < 5; rep++ {
				s, err := builder.Generate(f, n, builder.WithRand(rng))
				require.NoError(t, err, "%s n=%d", f, n)
				assert.Equal(t, f, s.Family)
				assert.Equal(t, core.Range(n), s.Graph.Vertices(), "%s n=%d", f, n)
				assert.LessOrEqual(t, s.Graph.EdgeCount(), s.Graph.MaxEdges())
				for _, e := range s.Graph.Edges() {
					assert.NotEqual(t, e.From, e.To)
				}
			}
		}
	}
}

func TestFamilies_TooFewVertices(t *testing.T) {
	for _, f := range builder.Families() {
		_, err := builder.ForFamily(f, f.MinNodes()-1)
		assert.ErrorIs(t, err, builder.ErrTooFewVertices, f.String())
	}
	// Constructors validate on their own, before any RNG use.
	_, err := builder.Build(builder.Star(3))
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)
	_, err = builder.Build(builder.RandomBarabasiAlbert(5))
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)
	_, err = builder.Build(builder.BipartiteGnm(0, 3, 0))
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)
}

func TestFamilies_NeedRandSource(t *testing.T) {
	for _, f := range builder.Families() {
		cons, err := builder.ForFamily(f, 8)
		require.NoError(t, err)
		_, err = builder.Build(cons)
		if f.Stochastic() {
			assert.ErrorIs(t, err, builder.ErrNeedRandSource, f.String())
		} else {
			assert.NoError(t, err, f.String())
		}
	}
}

func TestParamValidation(t *testing.T) {
	cases := []struct {
		name string
		cons builder.Constructor
		want error
	}{
		{"gnm m too large", builder.Gnm(4, 7), builder.ErrParamOutOfRange},
		{"gnm m negative", builder.Gnm(4, -1), builder.ErrParamOutOfRange},
		{"gnp p > 1", builder.Gnp(4, 1.5), builder.ErrInvalidProbability},
		{"gnp p < 0", builder.Gnp(4, -0.1), builder.ErrInvalidProbability},
		{"ba m0 = 1", builder.BarabasiAlbert(6, 1, 1), builder.ErrParamOutOfRange},
		{"ba m > m0", builder.BarabasiAlbert(6, 2, 3), builder.ErrParamOutOfRange},
		{"forest t = 0", builder.BarabasiAlbertForest(6, 0), builder.ErrParamOutOfRange},
		{"bipartite m too large", builder.BipartiteGnm(2, 2, 5), builder.ErrParamOutOfRange},
		{"bipartite p", builder.BipartiteGnp(2, 2, 2), builder.ErrInvalidProbability},
		{"star center", builder.StarAt(5, 5), builder.ErrParamOutOfRange},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := builder.Build(tc.cons, builder.WithSeed(1))
			assert.ErrorIs(t, err, tc.want)
		})
	}

	_, err := builder.Build(nil)
	assert.ErrorIs(t, err, builder.ErrConstructFailed)
}

func TestDeterministicFamilies(t *testing.T) {
	s, err := builder.Build(builder.Empty(5))
	require.NoError(t, err)
	assert.Equal(t, 0, s.Graph.EdgeCount())

	s, err = builder.Build(builder.Complete(5))
	require.NoError(t, err)
	assert.Equal(t, 10, s.Graph.EdgeCount())
	assert.True(t, s.Graph.IsComplete())
	assert.Equal(t, core.Edge{From: 0, To: 1}, s.Graph.Edges()[0])
}

func TestGnm_ExactEdgeCount(t *testing.T) {
	for m := 0; m <= 10; m++ {
		s, err := builder.Build(builder.Gnm(5, m), builder.WithSeed(int64(m)))
		require.NoError(t, err)
		assert.Equal(t, m, s.Graph.EdgeCount())
		v, ok := s.Params.Int("m")
		assert.True(t, ok)
		assert.Equal(t, m, v)
	}
}

func TestGnp_Extremes(t *testing.T) {
	s, err := builder.Build(builder.Gnp(6, 0), builder.WithSeed(3))
	require.NoError(t, err)
	assert.Equal(t, 0, s.Graph.EdgeCount())

	s, err = builder.Build(builder.Gnp(6, 1), builder.WithSeed(3))
	require.NoError(t, err)
	assert.True(t, s.Graph.IsComplete())
}

func TestRandomGnm_SingleVertex(t *testing.T) {
	s, err := builder.Build(builder.RandomGnm(1), builder.WithSeed(9))
	require.NoError(t, err)
	assert.Equal(t, 0, s.Graph.EdgeCount())
}

func TestRandomGnp_ProbabilityRecorded(t *testing.T) {
	rng := rand.New(rand.NewSource(testSeed))
	for i := 0; i < 50; i++ {
		s, err := builder.Build(builder.RandomGnp(7), builder.WithRand(rng))
		require.NoError(t, err)
		p, ok := s.Params.Get("p")
		require.True(t, ok)
		assert.NotEqual(t, "0", p)
	}
}

func TestBarabasiAlbert_Structure(t *testing.T) {
	const n, m0, m = 12, 4, 2
	s, err := builder.Build(builder.BarabasiAlbert(n, m0, m), builder.WithSeed(testSeed))
	require.NoError(t, err)
	// Seed clique plus m edges per later vertex.
	assert.Equal(t, m0*(m0-1)/2+(n-m0)*m, s.Graph.EdgeCount())
	for v := m0; v < n; v++ {
		deg, err := s.Graph.Degree(v)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, deg, m)
	}
}

func TestRandomBarabasiAlbert_ParamRanges(t *testing.T) {
	rng := rand.New(rand.NewSource(testSeed))
	for n := builder.MinBarabasiAlbertNodes; n <= 20; n++ {
		s, err := builder.Build(builder.RandomBarabasiAlbert(n), builder.WithRand(rng))
		require.NoError(t, err)
		m0, _ := s.Params.Int("m0")
		m, _ := s.Params.Int("m")
		assert.GreaterOrEqual(t, m0, 2)
		assert.LessOrEqual(t, m0, n/3)
		assert.GreaterOrEqual(t, m, 1)
		assert.LessOrEqual(t, m, m0)
	}
}

func TestBarabasiAlbertForest_TreeCount(t *testing.T) {
	rng := rand.New(rand.NewSource(testSeed))
	for n := builder.MinForestNodes; n <= 20; n++ {
		s, err := builder.Build(builder.RandomBarabasiAlbertForest(n), builder.WithRand(rng))
		require.NoError(t, err)
		trees, ok := s.Params.Int("t")
		require.True(t, ok)
		assert.GreaterOrEqual(t, trees, 1)
		assert.LessOrEqual(t, trees, n/2)
		// A forest of t trees on n vertices has n-t edges.
		assert.Equal(t, n-trees, s.Graph.EdgeCount())
	}
}

func TestScaleFree_EveryLaterVertexAttached(t *testing.T) {
	s, err := builder.Build(builder.ScaleFree(15), builder.WithSeed(testSeed))
	require.NoError(t, err)
	for v := 1; v < 15; v++ {
		deg, err := s.Graph.Degree(v)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, deg, 1)
	}

	s, err = builder.Build(builder.ScaleFree(1), builder.WithSeed(testSeed))
	require.NoError(t, err)
	assert.Equal(t, 0, s.Graph.EdgeCount())
}

func TestScaleFree_EdgesRunFromExistingToNew(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		s, err := builder.Build(builder.ScaleFree(12), builder.WithSeed(seed))
		require.NoError(t, err)
		edges := s.Graph.Edges()
		require.NotEmpty(t, edges)
		// The second vertex always attaches to the first, since degreeSum is still 0.
		assert.Equal(t, core.Edge{From: 0, To: 1}, edges[0])
		prevTo := 0
		for _, e := range edges {
			assert.Less(t, e.From, e.To, "seed %d: %v", seed, e)
			assert.GreaterOrEqual(t, e.To, prevTo, "seed %d: arrivals are emitted in order", seed)
			prevTo = e.To
		}
	}
}

func TestBipartite_PartitionAndCrossing(t *testing.T) {
	rng := rand.New(rand.NewSource(testSeed))
	for n := 2; n <= 12; n++ {
		for _, cons := range []builder.Constructor{builder.RandomBipartiteGnm(n), builder.RandomBipartiteGnp(n)} {
			s, err := builder.Build(cons, builder.WithRand(rng))
			require.NoError(t, err)
			require.NoError(t, s.Partition.Validate(s.Graph))
			assert.True(t, s.Partition.Crossing(s.Graph))
			n1, _ := s.Params.Int("n1")
			assert.Len(t, s.Partition.First, n1)
			assert.Len(t, s.Partition.Second, n-n1)
		}
	}

	s, err := builder.Build(builder.BipartiteGnm(2, 3, 6), builder.WithSeed(1))
	require.NoError(t, err)
	assert.Equal(t, 6, s.Graph.EdgeCount())
	assert.Equal(t, []int{0, 1}, s.Partition.First)
	assert.Equal(t, []int{2, 3, 4}, s.Partition.Second)
}

func TestStar_Center(t *testing.T) {
	s, err := builder.Build(builder.StarAt(6, 2))
	require.NoError(t, err)
	deg, err := s.Graph.Degree(2)
	require.NoError(t, err)
	assert.Equal(t, 5, deg)
	assert.Equal(t, 5, s.Graph.EdgeCount())

	s, err = builder.Build(builder.Star(9), builder.WithSeed(testSeed))
	require.NoError(t, err)
	center, ok := s.Params.Int("center")
	require.True(t, ok)
	deg, err = s.Graph.Degree(center)
	require.NoError(t, err)
	assert.Equal(t, 8, deg)
}

func TestPath_IsHamiltonianPath(t *testing.T) {
	s, err := builder.Build(builder.Path(10), builder.WithSeed(testSeed))
	require.NoError(t, err)
	g := s.Graph
	assert.Equal(t, 9, g.EdgeCount())
	ends := 0
	for _, v := range g.Vertices() {
		deg, err := g.Degree(v)
		require.NoError(t, err)
		require.True(t, deg == 1 || deg == 2)
		if deg == 1 {
			ends++
		}
	}
	assert.Equal(t, 2, ends)
	// Consecutive edges share an endpoint.
	edges := g.Edges()
	for i := 0; i+1 < len(edges); i++ {
		assert.Equal(t, edges[i].To, edges[i+1].From)
	}
}

func TestDeterminism_SameSeedSameSample(t *testing.T) {
	for _, f := range builder.Families() {
		n := f.MinNodes() + 6
		a, err := builder.Generate(f, n, builder.WithSeed(42))
		require.NoError(t, err)
		b, err := builder.Generate(f, n, builder.WithSeed(42))
		require.NoError(t, err)
		assert.Equal(t, a.Graph.Edges(), b.Graph.Edges(), f.String())
		assert.Equal(t, a.Params, b.Params, f.String())
	}
}

func TestFamily_Labels(t *testing.T) {
	want := []string{"EG", "ERM", "ERP", "BAG", "BAF", "SF", "Complete", "Bipartite-ERM", "Bipartite-ERP", "Star", "Path"}
	for i, f := range builder.Families() {
		assert.Equal(t, want[i], f.String())
		back, err := builder.ParseFamily(f.String())
		require.NoError(t, err)
		assert.Equal(t, f, back)
	}
	_, err := builder.ParseFamily("Petersen")
	assert.ErrorIs(t, err, builder.ErrUnknownFamily)
}

func TestDefaultInstances(t *testing.T) {
	assert.Equal(t, 1, builder.DefaultInstances(builder.FamilyEmpty, 9))
	assert.Equal(t, 1, builder.DefaultInstances(builder.FamilyComplete, 9))
	assert.Equal(t, 9, builder.DefaultInstances(builder.FamilyStar, 9))
	assert.Equal(t, 36, builder.DefaultInstances(builder.FamilyPath, 9))
	assert.Equal(t, builder.DefaultRandomInstances, builder.DefaultInstances(builder.FamilyScaleFree, 9))
}

func TestWithOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { builder.WithRand(nil) })
	assert.Panics(t, func() { builder.WithMaxResample(0) })
}
