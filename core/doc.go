// Package core provides the immutable, simple, undirected Graph used by every
// other package of the corpus pipeline.
//
// A Graph G = (V, E) is defined over non-negative integer vertex ids:
//
//   - No self-loops: AddEdge(v, v) → ErrLoopNotAllowed.
//   - No parallel edges: {u,v} may appear once, in either orientation
//     → ErrMultiEdgeNotAllowed.
//   - Every edge endpoint must be a member of V → ErrVertexNotFound.
//   - Negative ids are rejected → ErrNegativeVertex.
//
// Ordering:
//
//   - Vertices() is always ascending by id.
//   - Edges() is the emission order: the order edges were added. It is the
//     order the text serializer writes and the order augmentation permutes.
//   - Each Edge keeps the orientation it was added with (From, To). The
//     graph itself is undirected; orientation only matters when a caller
//     derives a transient directed view (topological sort).
//   - Neighbors(v) follow edge emission order.
//
// Lifecycle:
//
//	b := core.NewBuilder(n)     // mutable staging area
//	b.AddVertex(0) ...          // idempotent
//	b.AddEdge(0, 1) ...         // validated immediately
//	g := b.Build()              // immutable snapshot
//
// or in one shot:
//
//	g, err := core.NewGraph([]int{0, 1, 2}, []core.Edge{{From: 0, To: 1}})
//
// A built Graph is never mutated. All accessors return copies, so a Graph
// may be shared freely across goroutines without locking.
//
// Partition describes a bipartition of the vertex set (the two sides of a
// bipartite sample) and can be checked against a graph with Validate.
package core
