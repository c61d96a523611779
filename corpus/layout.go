// SPDX-License-Identifier: MIT
// Package: lvlath-corpus/corpus
//
// layout.go: where artifacts live on disk.
//
//	<root>/nXX/graph_NNNNNN/graph_NNNNNN.csv              exhaustive
//	<root>/nXX/<family>/graph_NNNNNN/graph_NNNNNN.csv     generated
//	.../graph_NNNNNN/graph_NNNNNN-<variant>.csv           augmented copy
//	.../graph_NNNNNN/graph_NNNNNN[-<variant>].json        property record
//
// Instance indices are 1-based.

package corpus

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvlath-corpus/augment"
)

// File extensions used by the layout.
const (
	GraphExt      = ".csv"
	PropertiesExt = ".json"
)

// Location identifies one artifact within the dataset.
type Location struct {
	Nodes   int
	Family  string // empty for exhaustive graphs
	Index   int    // 1-based
	Variant string // empty for source graphs
}

// GraphName returns "graph_NNNNNN".
func GraphName(index int) string {
	return fmt.Sprintf("graph_%06d", index)
}

// NodesDir returns "nXX".
func NodesDir(n int) string {
	return fmt.Sprintf("n%02d", n)
}

// Base returns the file stem, e.g. "graph_000007-edge-shift-1".
func (l Location) Base() string {
	if l.Variant == "" {
		return GraphName(l.Index)
	}

	return GraphName(l.Index) + "-" + l.Variant
}

// Key is the slash-separated artifact id used by the catalog.
func (l Location) Key() string {
	parts := []string{NodesDir(l.Nodes)}
	if l.Family != "" {
		parts = append(parts, l.Family)
	}

	return strings.Join(append(parts, l.Base()), "/")
}

// WithVariant returns a copy of l naming the given variant.
func (l Location) WithVariant(v string) Location {
	l.Variant = v

	return l
}

// Layout resolves Locations under a dataset root.
type Layout struct {
	Root string
}

// Dir returns the graph directory of l.
func (ly Layout) Dir(l Location) string {
	parts := []string{ly.Root, NodesDir(l.Nodes)}
	if l.Family != "" {
		parts = append(parts, l.Family)
	}

	return filepath.Join(append(parts, GraphName(l.Index))...)
}

// GraphPath returns the .csv path of l.
func (ly Layout) GraphPath(l Location) string {
	return filepath.Join(ly.Dir(l), l.Base()+GraphExt)
}

// PropertiesPath returns the .json path of l.
func (ly Layout) PropertiesPath(l Location) string {
	return filepath.Join(ly.Dir(l), l.Base()+PropertiesExt)
}

// Parse recovers the Location of a graph file under ly.Root.
func (ly Layout) Parse(path string) (Location, error) {
	rel, err := filepath.Rel(ly.Root, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return Location{}, fmt.Errorf("%s: %w", path, ErrBadPath)
	}
	parts := strings.Split(filepath.ToSlash(rel), "/")
	var loc Location
	switch len(parts) {
	case 3:
	case 4:
		loc.Family = parts[1]
	default:
		return Location{}, fmt.Errorf("%s: %w", path, ErrBadPath)
	}

	if loc.Nodes, err = parseNodesDir(parts[0]); err != nil {
		return Location{}, fmt.Errorf("%s: %w", path, err)
	}
	dir := parts[len(parts)-2]
	stem := strings.TrimSuffix(parts[len(parts)-1], filepath.Ext(parts[len(parts)-1]))
	if !strings.HasPrefix(stem, dir) {
		return Location{}, fmt.Errorf("%s: file %q outside %q: %w", path, stem, dir, ErrBadPath)
	}
	if loc.Index, err = strconv.Atoi(strings.TrimPrefix(dir, "graph_")); err != nil {
		return Location{}, fmt.Errorf("%s: %w", path, ErrBadPath)
	}
	if rest := strings.TrimPrefix(stem, dir); rest != "" {
		loc.Variant = strings.TrimPrefix(rest, "-")
		if !augment.IsVariantName(loc.Variant) {
			return Location{}, fmt.Errorf("%s: variant %q: %w", path, loc.Variant, ErrBadPath)
		}
	}

	return loc, nil
}

func parseNodesDir(s string) (int, error) {
	if !strings.HasPrefix(s, "n") {
		return 0, ErrBadPath
	}
	n, err := strconv.Atoi(s[1:])
	if err != nil {
		return 0, ErrBadPath
	}

	return n, nil
}

// List returns every graph file under the root, sorted. A missing root is an error.
func (ly Layout) List() ([]string, error) {
	var out []string
	err := filepath.WalkDir(ly.Root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.Type().IsRegular() && filepath.Ext(path) == GraphExt {
			out = append(out, path)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("corpus: list %s: %w", ly.Root, err)
	}
	sort.Strings(out)

	return out, nil
}

// IsVariantPath reports whether a graph file name carries a variant suffix.
func IsVariantPath(path string) bool {
	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	for _, v := range augment.VariantNames() {
		if strings.HasSuffix(stem, "-"+v) {
			return true
		}
	}

	return false
}
