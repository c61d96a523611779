// SPDX-License-Identifier: MIT
// Package: lvlath-corpus/builder
//
// family.go: the closed set of generator families and their registry.
//
// Labels are a stable contract: they name dataset directories and appear in
// serialized headers. ParseFamily(f.String()) == f for every family.

package builder

import (
	"fmt"
)

// Family identifies one structural graph family.
type Family int

// Families in their canonical order.
const (
	FamilyEmpty Family = iota
	FamilyGnm
	FamilyGnp
	FamilyBarabasiAlbert
	FamilyBarabasiAlbertForest
	FamilyScaleFree
	FamilyComplete
	FamilyBipartiteGnm
	FamilyBipartiteGnp
	FamilyStar
	FamilyPath
)

var familyLabels = [...]string{
	FamilyEmpty:                "EG",
	FamilyGnm:                  "ERM",
	FamilyGnp:                  "ERP",
	FamilyBarabasiAlbert:       "BAG",
	FamilyBarabasiAlbertForest: "BAF",
	FamilyScaleFree:            "SF",
	FamilyComplete:             "Complete",
	FamilyBipartiteGnm:         "Bipartite-ERM",
	FamilyBipartiteGnp:         "Bipartite-ERP",
	FamilyStar:                 "Star",
	FamilyPath:                 "Path",
}

// Minimum vertex counts per family.
const (
	MinEmptyNodes          = 1
	MinGnmNodes            = 1
	MinGnpNodes            = 1
	MinBarabasiAlbertNodes = 6 // ⌊n/3⌋ ≥ 2 so the seed clique has ≥ 2 vertices
	MinForestNodes         = 2 // ⌊n/2⌋ ≥ 1 root
	MinScaleFreeNodes      = 1
	MinCompleteNodes       = 1
	MinBipartiteNodes      = 2 // both sides non-empty
	MinStarNodes           = 4
	MinPathNodes           = 2
)

// DefaultRandomInstances is the reference instance count for stochastic families.
const DefaultRandomInstances = 50000

// Families returns every family in canonical order.
func Families() []Family {
	out := make([]Family, len(familyLabels))
	for i := range familyLabels {
		out[i] = Family(i)
	}

	return out
}

// String returns the stable label ("ERM", "Bipartite-ERP", ...).
func (f Family) String() string {
	if f < 0 || int(f) >= len(familyLabels) {
		return fmt.Sprintf("Family(%d)", int(f))
	}

	return familyLabels[f]
}

// ParseFamily maps a label back to its Family.
func ParseFamily(label string) (Family, error) {
	for i, l := range familyLabels {
		if l == label {
			return Family(i), nil
		}
	}

	return 0, fmt.Errorf("ParseFamily(%q): %w", label, ErrUnknownFamily)
}

// MinNodes returns the smallest n the family accepts.
func (f Family) MinNodes() int {
	switch f {
	case FamilyBarabasiAlbert:
		return MinBarabasiAlbertNodes
	case FamilyBarabasiAlbertForest:
		return MinForestNodes
	case FamilyBipartiteGnm, FamilyBipartiteGnp:
		return MinBipartiteNodes
	case FamilyStar:
		return MinStarNodes
	case FamilyPath:
		return MinPathNodes
	default:
		return 1
	}
}

// Stochastic reports whether the family consumes randomness.
func (f Family) Stochastic() bool {
	return f != FamilyEmpty && f != FamilyComplete
}

// DefaultInstances is the reference number of instances generated per
// (family, n) cell: one for the deterministic families, one per center for
// Star, one per vertex pair for Path, DefaultRandomInstances otherwise.
func DefaultInstances(f Family, n int) int {
	switch f {
	case FamilyEmpty, FamilyComplete:
		return 1
	case FamilyStar:
		return n
	case FamilyPath:
		return n * (n - 1) / 2
	default:
		return DefaultRandomInstances
	}
}

// ForFamily returns the randomized constructor of f for n vertices.
// n below f.MinNodes() fails immediately with ErrTooFewVertices.
func ForFamily(f Family, n int) (Constructor, error) {
	if n < f.MinNodes() {
		return nil, fmt.Errorf("ForFamily(%s): n=%d < min=%d: %w", f, n, f.MinNodes(), ErrTooFewVertices)
	}
	switch f {
	case FamilyEmpty:
		return Empty(n), nil
	case FamilyGnm:
		return RandomGnm(n), nil
	case FamilyGnp:
		return RandomGnp(n), nil
	case FamilyBarabasiAlbert:
		return RandomBarabasiAlbert(n), nil
	case FamilyBarabasiAlbertForest:
		return RandomBarabasiAlbertForest(n), nil
	case FamilyScaleFree:
		return ScaleFree(n), nil
	case FamilyComplete:
		return Complete(n), nil
	case FamilyBipartiteGnm:
		return RandomBipartiteGnm(n), nil
	case FamilyBipartiteGnp:
		return RandomBipartiteGnp(n), nil
	case FamilyStar:
		return Star(n), nil
	case FamilyPath:
		return Path(n), nil
	default:
		return nil, fmt.Errorf("ForFamily(%d): %w", int(f), ErrUnknownFamily)
	}
}
