// Package bfs provides breadth-first search over a core.Graph, returning
// unweighted distances, parent links and visit order, plus connected
// components built on the same traversal.
//
// What
//
//   - BFS(g, start, opts...) explores vertices in non-decreasing distance
//     from start and returns a Result:
//   - Order:  visit sequence
//   - Depth:  vertex → distance (edges) from start
//   - Parent: vertex → predecessor in the BFS tree (start has none)
//   - Hooks: WithOnVisit may abort the walk with an error.
//   - WithMaxDepth(d) stops expanding beyond depth d (0 = unlimited).
//   - Components(g) partitions V into connected components; each component
//     is listed in BFS order from its smallest vertex, and components are
//     ordered by that smallest vertex.
//
// Determinism
//
//	Neighbors are expanded in core edge-emission order, so the visit
//	sequence is a pure function of the graph and the start vertex.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
package bfs
