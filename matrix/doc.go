// SPDX-License-Identifier: MIT

// Package matrix provides the small integer linear-algebra layer used by the
// metric and property packages: a row-major Dense matrix, adjacency and
// incidence builders over core.Graph, and Floyd–Warshall hop distances.
package matrix
