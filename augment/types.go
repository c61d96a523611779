// SPDX-License-Identifier: MIT
// Package: lvlath-corpus/augment
//
// types.go: sentinel errors, Relabeling, Variant and variant names.

package augment

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/lvlath-corpus/core"
)

// ErrDegenerateSample indicates no distinct variant exists or none was found
// within the attempt budget.
var ErrDegenerateSample = errors.New("augment: no distinct variant")

// DefaultMaxAttempts bounds the distinctness retry loops.
const DefaultMaxAttempts = 1000

// RelabelingHeader is the first line of a serialized relabeling table.
const RelabelingHeader = "original_node_id->shifted_node_id"

// Variant names, in the order Variants produces them.
const (
	NodeShift1          = "node-shift-1"
	NodeShift2          = "node-shift-2"
	EdgeShift1          = "edge-shift-1"
	NodeShift1EdgeShift = "node-shift-1-edge-shift-1"
	NodeShift2EdgeShift = "node-shift-2-edge-shift-1"
)

// VariantNames returns every variant name in production order.
func VariantNames() []string {
	return []string{NodeShift1, NodeShift2, EdgeShift1, NodeShift1EdgeShift, NodeShift2EdgeShift}
}

// IsVariantName reports whether name is one of the variant suffixes.
func IsVariantName(name string) bool {
	for _, v := range VariantNames() {
		if v == name {
			return true
		}
	}

	return false
}

// Mapping sends one original vertex id to its shifted id.
type Mapping struct {
	From int
	To   int
}

// Relabeling is a bijection on a vertex set, ordered by original id.
type Relabeling []Mapping

// Map returns the relabeling as a lookup table.
func (r Relabeling) Map() map[int]int {
	m := make(map[int]int, len(r))
	for _, p := range r {
		m[p.From] = p.To
	}

	return m
}

// Equal reports whether r and other send every id to the same place.
func (r Relabeling) Equal(other Relabeling) bool {
	if len(r) != len(other) {
		return false
	}
	for i := range r {
		if r[i] != other[i] {
			return false
		}
	}

	return true
}

// IsIdentity reports whether r maps every id to itself.
func (r Relabeling) IsIdentity() bool {
	for _, p := range r {
		if p.From != p.To {
			return false
		}
	}

	return true
}

// Lines renders the relabeling table: the header, then "from->to" per id.
func (r Relabeling) Lines() []string {
	out := make([]string, 0, len(r)+1)
	out = append(out, RelabelingHeader)
	for _, p := range r {
		out = append(out, fmt.Sprintf("%d->%d", p.From, p.To))
	}

	return out
}

// String joins Lines with newlines.
func (r Relabeling) String() string {
	return strings.Join(r.Lines(), "\n")
}

// Variant is one augmented copy of a source graph.
type Variant struct {
	Name       string
	Graph      *core.Graph
	Relabeling Relabeling // nil for pure edge shifts
}
