// Package augment produces structure-preserving variants of a core.Graph.
//
// Two transformations are offered, and they compose:
//
//   - Node shifting: a uniform random bijection of the vertex set applied to
//     every vertex and edge endpoint. The result is isomorphic to the input;
//     the Relabeling records original→shifted ids.
//   - Edge shifting: a uniform random permutation of the edge emission order.
//     Vertex set and edge set are unchanged; only serialization order moves.
//
// Distinct variants (a second relabeling that differs from the first, an
// edge order that differs from the source) are found by bounded retry.
// When the space of alternatives has a single element (≤ 1 vertex for
// relabelings, ≤ 1 edge for orderings) ErrDegenerateSample is returned
// without drawing; when MaxAttempts draws all collide, the same sentinel is
// returned with the attempt count in its message.
//
// Every output graph is re-validated through core.NewGraph. A failure there
// would mean a transformation broke the simple-graph invariants and is
// reported by panic.
//
// All randomness comes from the *rand.Rand handed to New; the same seed and
// input always yield the same variants.
package augment
