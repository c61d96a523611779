package builder_test

import (
	"context"
	"errors"
	"math/bits"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlath-corpus/builder"
	"github.com/katalvlaran/lvlath-corpus/core"
)

func TestEnumerator_CountAndPopcount(t *testing.T) {
	for n := 1; n <= 5; n++ {
		en, err := builder.NewEnumerator(n)
		require.NoError(t, err)
		c := n * (n - 1) / 2
		assert.Equal(t, uint64(1)<<uint(c), en.Count())

		seen := uint64(0)
		err = en.Each(context.Background(), func(mask uint64, g *core.Graph) error {
			assert.Equal(t, seen, mask)
			assert.Equal(t, bits.OnesCount64(mask), g.EdgeCount())
			assert.Equal(t, core.Range(n), g.Vertices())
			seen++

			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, en.Count(), seen)
	}
}

func TestEnumerator_BitOrder(t *testing.T) {
	en, err := builder.NewEnumerator(4)
	require.NoError(t, err)
	// Candidates: (0,1) (0,2) (0,3) (1,2) (1,3) (2,3).
	assert.Equal(t, core.Edge{From: 1, To: 2}, en.Candidates()[3])

	g, err := en.Graph(0b101001)
	require.NoError(t, err)
	assert.Equal(t, []core.Edge{{From: 0, To: 1}, {From: 1, To: 2}, {From: 2, To: 3}}, g.Edges())

	full, err := en.Graph(en.Count() - 1)
	require.NoError(t, err)
	assert.True(t, full.IsComplete())

	_, err = en.Graph(en.Count())
	assert.ErrorIs(t, err, builder.ErrParamOutOfRange)
}

func TestEnumerator_Bounds(t *testing.T) {
	_, err := builder.NewEnumerator(0)
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)
	_, err = builder.NewEnumerator(builder.MaxExhaustiveNodes + 1)
	assert.ErrorIs(t, err, builder.ErrTooManyVertices)

	en, err := builder.NewEnumerator(1)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), en.Count())
}

func TestEnumerator_EachStops(t *testing.T) {
	en, err := builder.NewEnumerator(3)
	require.NoError(t, err)

	stop := errors.New("stop")
	calls := 0
	err = en.Each(context.Background(), func(uint64, *core.Graph) error {
		calls++
		if calls == 3 {
			return stop
		}

		return nil
	})
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, 3, calls)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err = en.Each(ctx, func(uint64, *core.Graph) error { return nil })
	assert.ErrorIs(t, err, context.Canceled)
}

func TestEnumerator_Sample(t *testing.T) {
	en, err := builder.NewEnumerator(3)
	require.NoError(t, err)
	s, err := en.Sample(5)
	require.NoError(t, err)
	assert.True(t, s.Exhaustive)
	m, ok := s.Params.Int("m")
	assert.True(t, ok)
	assert.Equal(t, 2, m)
}
