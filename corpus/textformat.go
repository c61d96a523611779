// SPDX-License-Identifier: MIT
// Package: lvlath-corpus/corpus
//
// textformat.go: the line-oriented graph file.
//
// Format:
//
//	# <family> graphs                      (generated graphs only)
//	# number of vertices: <n>
//	# number of edges: <m>
//	# params: m=7 p=0.25                   (when the generator drew any)
//	# First partition: 0, 1, 2             (bipartite only)
//	# Second partition: 3, 4
//	# original_node_id->shifted_node_id    (node-shifted variants only)
//	# 0->3
//	0                                      one vertex per line
//	0 1                                    one edge per line, emission order
//
// Reading: '#' lines are comments, mined for the header fields above; a line
// with one integer is a vertex, two integers an edge, anything else is
// ignored. Partition lines are also accepted without the '#' prefix.

package corpus

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvlath-corpus/augment"
	"github.com/katalvlaran/lvlath-corpus/builder"
	"github.com/katalvlaran/lvlath-corpus/core"
)

const (
	graphsSuffix    = " graphs"
	verticesPrefix  = "number of vertices:"
	edgesPrefix     = "number of edges:"
	paramsPrefix    = "params:"
	firstPrefix     = "First partition:"
	secondPrefix    = "Second partition:"
	relabelArrow    = "->"
	commentLeader   = "#"
	partitionJoiner = ", "
)

// Header carries everything a graph file records besides the graph itself.
type Header struct {
	Family     string // generator label; empty for exhaustive graphs
	Params     builder.Params
	Partition  core.Partition
	Relabeling augment.Relabeling
}

// Document is one graph file.
type Document struct {
	Header Header
	Graph  *core.Graph
}

// NewDocument wraps a generated sample.
func NewDocument(s *builder.Sample) *Document {
	h := Header{Params: s.Params, Partition: s.Partition}
	if !s.Exhaustive {
		h.Family = s.Family.String()
	}

	return &Document{Header: h, Graph: s.Graph}
}

// WriteGraph serializes doc to w.
func WriteGraph(w io.Writer, doc *Document) error {
	bw := bufio.NewWriter(w)
	h, g := doc.Header, doc.Graph
	if h.Family != "" {
		fmt.Fprintf(bw, "%s %s%s\n", commentLeader, h.Family, graphsSuffix)
	}
	fmt.Fprintf(bw, "%s %s %d\n", commentLeader, verticesPrefix, g.VertexCount())
	fmt.Fprintf(bw, "%s %s %d\n", commentLeader, edgesPrefix, g.EdgeCount())
	if len(h.Params) > 0 {
		parts := make([]string, len(h.Params))
		for i, p := range h.Params {
			parts[i] = p.Name + "=" + p.Value
		}
		fmt.Fprintf(bw, "%s %s %s\n", commentLeader, paramsPrefix, strings.Join(parts, " "))
	}
	if !h.Partition.IsZero() {
		fmt.Fprintf(bw, "%s %s %s\n", commentLeader, firstPrefix, joinInts(h.Partition.First))
		fmt.Fprintf(bw, "%s %s %s\n", commentLeader, secondPrefix, joinInts(h.Partition.Second))
	}
	if len(h.Relabeling) > 0 {
		for _, line := range h.Relabeling.Lines() {
			fmt.Fprintf(bw, "%s %s\n", commentLeader, line)
		}
	}
	for _, v := range g.Vertices() {
		fmt.Fprintf(bw, "%d\n", v)
	}
	for _, e := range g.Edges() {
		fmt.Fprintf(bw, "%d %d\n", e.From, e.To)
	}

	return bw.Flush()
}

// ReadGraph parses a graph file. Structural problems surface as core errors.
func ReadGraph(r io.Reader) (*Document, error) {
	var (
		doc      Document
		vertices []int
		edges    []core.Edge
		lineNo   int
	)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		body, isComment := strings.CutPrefix(line, commentLeader)
		if isComment || strings.HasPrefix(line, firstPrefix) || strings.HasPrefix(line, secondPrefix) {
			if err := parseHeaderLine(&doc.Header, strings.TrimSpace(body)); err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			continue
		}
		f := strings.Fields(line)
		ids, ok := atois(f)
		if !ok {
			continue
		}
		switch len(ids) {
		case 1:
			vertices = append(vertices, ids[0])
		case 2:
			edges = append(edges, core.Edge{From: ids[0], To: ids[1]})
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	g, err := core.NewGraph(vertices, edges)
	if err != nil {
		return nil, err
	}
	doc.Graph = g

	return &doc, nil
}

func parseHeaderLine(h *Header, body string) error {
	switch {
	case body == augment.RelabelingHeader:
		if h.Relabeling == nil {
			h.Relabeling = augment.Relabeling{}
		}
	case strings.Contains(body, relabelArrow) && h.Relabeling != nil:
		from, to, _ := strings.Cut(body, relabelArrow)
		a, errA := strconv.Atoi(strings.TrimSpace(from))
		b, errB := strconv.Atoi(strings.TrimSpace(to))
		if errA != nil || errB != nil {
			return fmt.Errorf("relabeling %q: %w", body, ErrMalformedHeader)
		}
		h.Relabeling = append(h.Relabeling, augment.Mapping{From: a, To: b})
	case strings.HasPrefix(body, firstPrefix):
		ids, err := splitInts(strings.TrimPrefix(body, firstPrefix))
		if err != nil {
			return err
		}
		h.Partition.First = ids
	case strings.HasPrefix(body, secondPrefix):
		ids, err := splitInts(strings.TrimPrefix(body, secondPrefix))
		if err != nil {
			return err
		}
		h.Partition.Second = ids
	case strings.HasPrefix(body, paramsPrefix):
		for _, kv := range strings.Fields(strings.TrimPrefix(body, paramsPrefix)) {
			k, v, ok := strings.Cut(kv, "=")
			if !ok {
				return fmt.Errorf("param %q: %w", kv, ErrMalformedHeader)
			}
			h.Params = append(h.Params, builder.Param{Name: k, Value: v})
		}
	case strings.HasSuffix(body, graphsSuffix):
		h.Family = strings.TrimSuffix(body, graphsSuffix)
	}

	return nil
}

// WriteFile writes doc to path, creating parent directories.
func WriteFile(path string, doc *Document) (err error) {
	if err = os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("corpus: mkdir %s: %w", filepath.Dir(path), err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("corpus: create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("corpus: close %s: %w", path, cerr)
		}
	}()
	if err = WriteGraph(f, doc); err != nil {
		return fmt.Errorf("corpus: write %s: %w", path, err)
	}

	return nil
}

// ReadFile reads the graph file at path.
func ReadFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("corpus: open %s: %w", path, err)
	}
	defer f.Close()
	doc, err := ReadGraph(f)
	if err != nil {
		return nil, fmt.Errorf("corpus: read %s: %w", path, err)
	}

	return doc, nil
}

func joinInts(ids []int) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}

	return strings.Join(parts, partitionJoiner)
}

func splitInts(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return []int{}, nil
	}
	var out []int
	for _, p := range strings.Split(s, ",") {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("partition %q: %w", s, ErrMalformedHeader)
		}
		out = append(out, v)
	}

	return out, nil
}

func atois(fields []string) ([]int, bool) {
	if len(fields) == 0 || len(fields) > 2 {
		return nil, false
	}
	out := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, false
		}
		out[i] = v
	}

	return out, true
}
