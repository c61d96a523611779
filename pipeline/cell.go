// SPDX-License-Identifier: MIT
// Package: lvlath-corpus/pipeline
//
// cell.go: the unit of scheduling and its derived seed.
//
// A cell is one (n, family, instance) slot, or one exhaustive mask. Its RNG
// seeds are FNV-1a over (base seed, location, stream), so a cell draws the
// same graph no matter which worker runs it or in which order.

package pipeline

import (
	"encoding/binary"
	"hash/fnv"
	"iter"
	"math/rand"

	"github.com/katalvlaran/lvlath-corpus/builder"
	"github.com/katalvlaran/lvlath-corpus/config"
	"github.com/katalvlaran/lvlath-corpus/corpus"
)

// Cell identifies one graph to build.
type Cell struct {
	Nodes      int
	Family     builder.Family // ignored when Exhaustive
	Exhaustive bool
	Index      int // 1-based; for exhaustive cells Index = mask + 1
}

// Mask returns the enumerator mask of an exhaustive cell.
func (c Cell) Mask() uint64 {
	return uint64(c.Index - 1)
}

// Location returns where the cell's source graph is written.
func (c Cell) Location() corpus.Location {
	loc := corpus.Location{Nodes: c.Nodes, Index: c.Index}
	if !c.Exhaustive {
		loc.Family = c.Family.String()
	}

	return loc
}

// Stream separates the independent random streams drawn for one location.
type Stream byte

// Random streams. Graph construction, augmentation and property sampling
// never share draws, so any stage can be rerun alone and reproduce the
// same output.
const (
	StreamBuild Stream = iota
	StreamAugment
	StreamProperties
)

// Seed derives the construction seed of the cell from base.
func (c Cell) Seed(base int64) int64 {
	return StreamSeed(base, c.Location(), StreamBuild)
}

// StreamSeed hashes (base, nodes, family, index, variant, stream) with FNV-1a.
func StreamSeed(base int64, loc corpus.Location, s Stream) int64 {
	h := fnv.New64a()
	var buf [8]byte
	put := func(v uint64) {
		binary.LittleEndian.PutUint64(buf[:], v)
		_, _ = h.Write(buf[:])
	}
	put(uint64(base))
	put(uint64(loc.Nodes))
	_, _ = h.Write([]byte(loc.Family))
	_, _ = h.Write([]byte{0})
	put(uint64(loc.Index))
	_, _ = h.Write([]byte(loc.Variant))
	_, _ = h.Write([]byte{0, byte(s)})

	return int64(h.Sum64())
}

func streamRand(base int64, loc corpus.Location, s Stream) *rand.Rand {
	return rand.New(rand.NewSource(StreamSeed(base, loc, s)))
}

// Plan yields every cell of the configured workload: exhaustive cells for
// n in [ExhaustiveMin, ExhaustiveMax] first, then n × family × instance for
// n in [MinNodes, MaxNodes]. Families whose minimum exceeds n are skipped.
func Plan(g config.GenerateConf, families []builder.Family) iter.Seq[Cell] {
	return func(yield func(Cell) bool) {
		if g.ExhaustiveMax > 0 {
			for n := g.ExhaustiveMin; n <= g.ExhaustiveMax; n++ {
				en, err := builder.NewEnumerator(n)
				if err != nil {
					continue
				}
				for i := uint64(0); i < en.Count(); i++ {
					if !yield(Cell{Nodes: n, Exhaustive: true, Index: int(i) + 1}) {
						return
					}
				}
			}
		}
		if g.MaxNodes == 0 {
			return
		}
		for n := g.MinNodes; n <= g.MaxNodes; n++ {
			for _, f := range families {
				if n < f.MinNodes() {
					continue
				}
				count := g.Instances
				if count == 0 {
					count = builder.DefaultInstances(f, n)
				}
				for i := 1; i <= count; i++ {
					if !yield(Cell{Nodes: n, Family: f, Index: i}) {
						return
					}
				}
			}
		}
	}
}

// PlanSize counts the cells Plan would yield.
func PlanSize(g config.GenerateConf, families []builder.Family) int {
	total := 0
	if g.ExhaustiveMax > 0 {
		for n := g.ExhaustiveMin; n <= g.ExhaustiveMax; n++ {
			if en, err := builder.NewEnumerator(n); err == nil {
				total += int(en.Count())
			}
		}
	}
	if g.MaxNodes == 0 {
		return total
	}
	for n := g.MinNodes; n <= g.MaxNodes; n++ {
		for _, f := range families {
			if n < f.MinNodes() {
				continue
			}
			if g.Instances > 0 {
				total += g.Instances
			} else {
				total += builder.DefaultInstances(f, n)
			}
		}
	}

	return total
}

// constructorFor picks the constructor of a generated cell. Under the sweep
// policy Star cells walk the centers in order; every other family, and Star
// under the random policy, draws its parameters from rng.
func constructorFor(c Cell, starCenter string) (builder.Constructor, error) {
	if c.Family == builder.FamilyStar && starCenter == config.StarCenterSweep && c.Nodes >= c.Family.MinNodes() {
		return builder.StarAt(c.Nodes, (c.Index-1)%c.Nodes), nil
	}

	return builder.ForFamily(c.Family, c.Nodes)
}
