package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/lvlath-corpus/bfs"
	"github.com/katalvlaran/lvlath-corpus/core"
)

// ExampleBFS walks a small tree and reconstructs one path.
func ExampleBFS() {
	//     0
	//    / \
	//   1   2
	//       |
	//       3
	g := core.MustGraph(core.Range(4), []core.Edge{{From: 0, To: 1}, {From: 0, To: 2}, {From: 2, To: 3}})
	res, _ := bfs.BFS(g, 0)
	path, _ := res.PathTo(3)
	fmt.Println(res.Order, res.Depth[3], path)

	// Output:
	// [0 1 2 3] 2 [0 2 3]
}

// ExampleComponents lists the components of a graph with an isolated vertex.
func ExampleComponents() {
	g := core.MustGraph(core.Range(4), []core.Edge{{From: 3, To: 1}})
	fmt.Println(bfs.Components(g))

	// Output:
	// [[0] [1 3] [2]]
}
