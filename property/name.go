// SPDX-License-Identifier: MIT
// Package: lvlath-corpus/property
//
// name.go: the closed property taxonomy.
//
// The string forms are a stable contract consumed by the prompt templating
// layer; they key the JSON record and must never change.

package property

import (
	"fmt"
)

// Name identifies one property of the taxonomy.
type Name int

// Taxonomy in canonical extraction order.
const (
	NodeCount Name = iota
	EdgeCount
	EdgeAbsence
	NumberOfConnectedComponents
	ConnectedComponents
	ConnectivityTrue
	ConnectivityFalse
	SpanningTree
	BFSTraversalOrder
	DFSTraversalOrder
	CycleCheck
	TopologicalSortOrder
	Diameter
	Radius
	Girth
	NumberOfTriangles
	ShortestPath
	MaximumFlow
	HamiltonPath
)

var nameLabels = [...]string{
	NodeCount:                   "node_count",
	EdgeCount:                   "edge_count",
	EdgeAbsence:                 "edge_absence",
	NumberOfConnectedComponents: "number_of_connected_components",
	ConnectedComponents:         "connected_components",
	ConnectivityTrue:            "connectivity_true",
	ConnectivityFalse:           "connectivity_false",
	SpanningTree:                "spanning_tree",
	BFSTraversalOrder:           "bfs_traversal_order",
	DFSTraversalOrder:           "dfs_traversal_order",
	CycleCheck:                  "cycle_check",
	TopologicalSortOrder:        "topological_sort_order",
	Diameter:                    "diameter",
	Radius:                      "radius",
	Girth:                       "girth",
	NumberOfTriangles:           "number_of_triangles",
	ShortestPath:                "shortest_path",
	MaximumFlow:                 "maximum_flow",
	HamiltonPath:                "hamilton_path",
}

// Names returns the whole taxonomy, reserved names included.
func Names() []Name {
	out := make([]Name, len(nameLabels))
	for i := range nameLabels {
		out[i] = Name(i)
	}

	return out
}

// Computable returns the names an Extractor can populate, in order.
func Computable() []Name {
	out := make([]Name, 0, len(nameLabels))
	for _, n := range Names() {
		if !n.Reserved() {
			out = append(out, n)
		}
	}

	return out
}

// String returns the wire name, e.g. "edge_absence".
func (n Name) String() string {
	if n < 0 || int(n) >= len(nameLabels) {
		return fmt.Sprintf("Name(%d)", int(n))
	}

	return nameLabels[n]
}

// Reserved reports whether n is part of the taxonomy but never populated.
func (n Name) Reserved() bool {
	return n == ShortestPath || n == MaximumFlow || n == HamiltonPath
}

// ParseName maps a wire name back to its Name.
func ParseName(s string) (Name, error) {
	for i, l := range nameLabels {
		if l == s {
			return Name(i), nil
		}
	}

	return 0, fmt.Errorf("ParseName(%q): %w", s, ErrUnknownName)
}

// ParseNames parses every entry of ss, failing on the first unknown one.
func ParseNames(ss []string) ([]Name, error) {
	out := make([]Name, 0, len(ss))
	for _, s := range ss {
		n, err := ParseName(s)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}

	return out, nil
}
