package dfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlath-corpus/core"
	"github.com/katalvlaran/lvlath-corpus/dfs"
)

func TestDFS_Errors(t *testing.T) {
	_, err := dfs.DFS(nil, 0)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)

	g := core.MustGraph([]int{0}, nil)
	_, err = dfs.DFS(g, 9)
	assert.ErrorIs(t, err, dfs.ErrStartVertexNotFound)
}

func TestDFS_PreAndPostOrder(t *testing.T) {
	// 0-1, 0-2, 1-3: pre-order follows emission order depth-first.
	g := core.MustGraph(core.Range(4), []core.Edge{{From: 0, To: 1}, {From: 0, To: 2}, {From: 1, To: 3}})
	res, err := dfs.DFS(g, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 3, 2}, res.PreOrder)
	assert.Equal(t, []int{3, 1, 2, 0}, res.PostOrder)
	assert.Equal(t, 2, res.Depth[3])
	assert.Equal(t, 1, res.Parent[3])
	_, hasRootParent := res.Parent[0]
	assert.False(t, hasRootParent)
}

func TestDFS_FullTraversalAndDepthLimit(t *testing.T) {
	g := core.MustGraph(core.Range(5), []core.Edge{{From: 0, To: 1}, {From: 1, To: 2}, {From: 3, To: 4}})

	res, err := dfs.DFS(g, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, res.PreOrder)

	res, err = dfs.DFS(g, 0, dfs.WithFullTraversal())
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, res.PreOrder)

	res, err = dfs.DFS(g, 0, dfs.WithMaxDepth(1))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, res.PreOrder)
	_, reached := res.Parent[2]
	assert.False(t, reached)
}

func TestDFS_HooksAndCancel(t *testing.T) {
	g := core.MustGraph(core.Range(3), []core.Edge{{From: 0, To: 1}, {From: 1, To: 2}})
	stop := errors.New("stop")

	_, err := dfs.DFS(g, 0, dfs.WithOnVisit(func(id int) error {
		if id == 2 {
			return stop
		}

		return nil
	}))
	assert.ErrorIs(t, err, stop)

	var exits []int
	_, err = dfs.DFS(g, 0, dfs.WithOnExit(func(id int) error {
		exits = append(exits, id)

		return nil
	}))
	require.NoError(t, err)
	assert.Equal(t, []int{2, 1, 0}, exits)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = dfs.DFS(g, 0, dfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}
