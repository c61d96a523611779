// Package builder generates the small undirected graphs that seed the corpus.
//
// Two generation modes are offered:
//
//   - Families (random or deterministic): one Constructor per Family. Each
//     constructor validates n against the family minimum before touching the
//     RNG, draws its own structural parameters (edge count, probability,
//     seed-clique size, ...) and stages a graph over vertex ids 0..n-1.
//   - Exhaustive enumeration: Enumerator walks every labeled simple graph on
//     n vertices by treating an integer as a bitmask over the C(n,2) candidate
//     edges in lexicographic (i<j) order.
//
// Key components:
//
//   - Constructor / Build:    uniform closure type and the orchestrator that
//     resolves options and returns a *Sample (graph, partition, parameters).
//   - BuilderOption:          WithSeed, WithRand, WithMaxResample.
//   - Family / ForFamily:     closed set of labels (EG, ERM, ERP, BAG, BAF, SF,
//     Complete, Bipartite-ERM, Bipartite-ERP, Star, Path) and the registry of
//     their randomized constructors.
//   - Explicit-parameter constructors: Gnm, Gnp, BarabasiAlbert,
//     BarabasiAlbertForest, BipartiteGnm, BipartiteGnp, StarAt.
//
// Randomness never comes from a global source; every stochastic constructor
// returns ErrNeedRandSource when no RNG was supplied. Degenerate parameter
// draws are resampled at most cfg.maxResample times before ErrConstructFailed.
//
// Guarantees:
//
//   - Vertex ids of every sample are exactly 0..n-1.
//   - No self-loops, no duplicate edges (enforced again by core.Builder).
//   - Same constructor + same seed ⇒ identical sample (vertices, edge order,
//     partition, parameters).
package builder
