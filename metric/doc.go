// Package metric computes scalar graph invariants (eccentricity, diameter,
// radius, girth, triangle count) on top of the matrix and bfs packages.
package metric
