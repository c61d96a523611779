// Package prim_kruskal computes minimum spanning forests of a core.Graph with
// Kruskal's or Prim's algorithm.
//
// The corpus graphs are unweighted; by default every edge weighs 1, so any
// spanning forest is minimal and the two methods differ only in which edges
// they pick. A custom weight can be supplied with WithWeight.
//
// Determinism:
//
//   - Kruskal sorts edges STABLY by weight, so equal-weight edges are taken
//     in emission order.
//   - Prim grows one tree per component, rooted at the smallest unvisited
//     vertex (or WithRoot for the first tree); ties in the heap are broken
//     by emission index.
//
// Disconnected graphs yield a forest with one tree per component. Pass
// WithRequireConnected to get ErrDisconnected instead.
//
// Complexity:
//
//   - Kruskal: O(E log E + E·α(V)).
//   - Prim:    O(E log E).
package prim_kruskal
