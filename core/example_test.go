package core_test

import (
	"fmt"

	"github.com/katalvlaran/lvlath-corpus/core"
)

// ExampleNewBuilder demonstrates staged construction and queries.
func ExampleNewBuilder() {
	b := core.NewBuilder(3)
	_ = b.AddVertices(0, 1, 2)
	_ = b.AddEdge(0, 1)
	_ = b.AddEdge(2, 0)
	fmt.Println(b.AddEdge(1, 0)) // duplicate in the other orientation

	g := b.Build()
	nbrs, _ := g.Neighbors(0)
	fmt.Println(g, g.Edges(), nbrs)

	// Output:
	// AddEdge(1,0): core: multi-edges not allowed
	// Graph(|V|=3, |E|=2) [(0,1) (2,0)] [1 2]
}
