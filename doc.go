// Package lvlath is a generator of labeled corpora of small undirected
// graphs: many structural families, every labeled graph on a few vertices,
// structure-preserving variants and a fixed taxonomy of properties per graph.
//
// Packages, leaves first:
//
//	core/          immutable simple Graph, Builder and bipartite Partition
//	builder/       one Constructor per family, Build, and the exhaustive Enumerator
//	augment/       node shifting, edge shifting and the reference variant set
//	bfs/, dfs/     traversals, components, cycle check, topological sort
//	prim_kruskal/  spanning forests (Kruskal default, Prim on request)
//	matrix/        integer adjacency/incidence matrices and Floyd–Warshall
//	metric/        eccentricity, diameter, radius, girth, triangle count
//	property/      closed property taxonomy and the ordered, frozen Record
//	corpus/        text graph files, property JSON, dataset layout, prompts
//	catalog/       BadgerDB index of every written artifact
//	config/        YAML/TOML workload, validation, slog + lumberjack logger
//	pipeline/      bounded parallel cells, per-cell RNG streams, metrics
//	cmd/           the lvlath-corpus command line (kong)
//
// Flow of one cell:
//
//	builder (or Enumerator) → core.Graph → augment → property → corpus (+ catalog)
//
// Quick start:
//
//	go run ./cmd/lvlath-corpus enumerate --max 4 --root dataset
//	go run ./cmd/lvlath-corpus generate -c corpus.yaml
package lvlath
