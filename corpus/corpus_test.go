package corpus_test

import (
	"bytes"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlath-corpus/augment"
	"github.com/katalvlaran/lvlath-corpus/builder"
	"github.com/katalvlaran/lvlath-corpus/core"
	"github.com/katalvlaran/lvlath-corpus/corpus"
	"github.com/katalvlaran/lvlath-corpus/property"
)

func TestTextFormat_RoundTripBipartite(t *testing.T) {
	s, err := builder.Build(builder.BipartiteGnm(3, 4, 6), builder.WithSeed(11))
	require.NoError(t, err)
	doc := corpus.NewDocument(s)

	var buf bytes.Buffer
	require.NoError(t, corpus.WriteGraph(&buf, doc))
	text := buf.String()
	assert.True(t, strings.HasPrefix(text, "# Bipartite-ERM graphs\n# number of vertices: 7\n# number of edges: 6\n"))
	assert.Contains(t, text, "# First partition: 0, 1, 2\n")
	assert.Contains(t, text, "# Second partition: 3, 4, 5, 6\n")
	assert.Contains(t, text, "# params: n1=3 n2=4 m=6\n")

	back, err := corpus.ReadGraph(&buf)
	require.NoError(t, err)
	assert.True(t, back.Graph.SameVertexSet(s.Graph))
	assert.True(t, back.Graph.SameEdgeSet(s.Graph))
	assert.True(t, back.Graph.SameEdgeOrder(s.Graph))
	assert.Equal(t, "Bipartite-ERM", back.Header.Family)
	assert.Equal(t, s.Partition, back.Header.Partition)
	m, ok := back.Header.Params.Int("m")
	assert.True(t, ok)
	assert.Equal(t, 6, m)
}

func TestTextFormat_RelabelingAndLegacyLines(t *testing.T) {
	g := core.MustGraph(core.Range(3), []core.Edge{{From: 0, To: 1}, {From: 1, To: 2}})
	a := augment.New(rand.New(rand.NewSource(4)))
	shifted, rel := a.NodeShift(g)
	var buf bytes.Buffer
	require.NoError(t, corpus.WriteGraph(&buf, &corpus.Document{
		Header: corpus.Header{Relabeling: rel},
		Graph:  shifted,
	}))
	assert.Contains(t, buf.String(), "# "+augment.RelabelingHeader+"\n")
	back, err := corpus.ReadGraph(&buf)
	require.NoError(t, err)
	assert.True(t, rel.Equal(back.Header.Relabeling))
	assert.Empty(t, back.Header.Family)

	legacy := "# Bipartite-ERP graphs\nFirst partition: 0\nSecond partition: 1, 2\n0\n1\n2\n0 1\n0 2\nnot a line\n1 2 3\n"
	doc, err := corpus.ReadGraph(strings.NewReader(legacy))
	require.NoError(t, err)
	assert.Equal(t, []int{0}, doc.Header.Partition.First)
	assert.Equal(t, []int{1, 2}, doc.Header.Partition.Second)
	assert.Equal(t, 2, doc.Graph.EdgeCount())
}

func TestReadGraph_Invalid(t *testing.T) {
	_, err := corpus.ReadGraph(strings.NewReader("0\n1\n0 1\n1 0\n"))
	assert.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed)
	_, err = corpus.ReadGraph(strings.NewReader("0\n0 0\n"))
	assert.ErrorIs(t, err, core.ErrLoopNotAllowed)
	_, err = corpus.ReadGraph(strings.NewReader("# First partition: a, b\n"))
	assert.ErrorIs(t, err, corpus.ErrMalformedHeader)
}

func TestLayout_PathsAndParse(t *testing.T) {
	ly := corpus.Layout{Root: "dataset"}
	gen := corpus.Location{Nodes: 7, Family: "ERM", Index: 12}
	assert.Equal(t, filepath.Join("dataset", "n07", "ERM", "graph_000012", "graph_000012.csv"), ly.GraphPath(gen))
	v := gen.WithVariant(augment.NodeShift2EdgeShift)
	assert.Equal(t, filepath.Join("dataset", "n07", "ERM", "graph_000012", "graph_000012-node-shift-2-edge-shift-1.json"), ly.PropertiesPath(v))
	assert.Equal(t, "n07/ERM/graph_000012-node-shift-2-edge-shift-1", v.Key())

	ex := corpus.Location{Nodes: 3, Index: 5}
	assert.Equal(t, filepath.Join("dataset", "n03", "graph_000005", "graph_000005.csv"), ly.GraphPath(ex))

	for _, loc := range []corpus.Location{gen, v, ex, ex.WithVariant(augment.EdgeShift1)} {
		back, err := ly.Parse(ly.GraphPath(loc))
		require.NoError(t, err)
		assert.Equal(t, loc, back)
	}
	_, err := ly.Parse(filepath.Join("dataset", "n03", "graph_000005", "graph_000005-bogus.csv"))
	assert.ErrorIs(t, err, corpus.ErrBadPath)
	_, err = ly.Parse(filepath.Join("elsewhere", "x.csv"))
	assert.ErrorIs(t, err, corpus.ErrBadPath)

	assert.True(t, corpus.IsVariantPath(ly.GraphPath(v)))
	assert.False(t, corpus.IsVariantPath(ly.GraphPath(gen)))
}

func TestWriteFileAndList(t *testing.T) {
	ly := corpus.Layout{Root: t.TempDir()}
	en, err := builder.NewEnumerator(3)
	require.NoError(t, err)
	for mask := uint64(0); mask < en.Count(); mask++ {
		s, err := en.Sample(mask)
		require.NoError(t, err)
		loc := corpus.Location{Nodes: 3, Index: int(mask) + 1}
		require.NoError(t, corpus.WriteFile(ly.GraphPath(loc), corpus.NewDocument(s)))
	}
	files, err := ly.List()
	require.NoError(t, err)
	require.Len(t, files, 8)

	doc, err := corpus.ReadFile(files[7])
	require.NoError(t, err)
	assert.True(t, doc.Graph.IsComplete())

	_, err = corpus.ReadFile(filepath.Join(ly.Root, "missing.csv"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestWriteProperties(t *testing.T) {
	g := core.MustGraph(core.Range(2), []core.Edge{{From: 0, To: 1}})
	x, err := property.NewExtractor(g, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	require.NoError(t, x.Extract(property.NodeCount, property.Diameter))

	path := filepath.Join(t.TempDir(), "a", "graph_000001.json")
	data, err := corpus.WriteProperties(path, x.Record())
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"node_count\": 2,\n  \"diameter\": 1\n}\n", string(data))

	back, err := corpus.ReadProperties(path)
	require.NoError(t, err)
	assert.Equal(t, float64(2), back["node_count"])
}

func TestDescribe(t *testing.T) {
	g := core.MustGraph(core.Range(3), []core.Edge{{From: 0, To: 1}, {From: 0, To: 2}})

	adj, err := corpus.Describe(g, corpus.StyleAdjacency)
	require.NoError(t, err)
	assert.Contains(t, adj, "The graph has the following nodes: 0, 1, and 2.\n")
	assert.Contains(t, adj, "\t(0, 1)\n\t(0, 2)\n")

	full, err := corpus.Describe(g, corpus.StyleFullAdjacency)
	require.NoError(t, err)
	assert.Contains(t, full, "Node 0, Node 1, and Node 2.\n")
	assert.True(t, strings.HasSuffix(full, "\tNode 0 is connected to Node 1 with an edge;\n\tNode 0 is connected to Node 2 with an edge.\n"))

	inc, err := corpus.Describe(g, corpus.StyleIncident)
	require.NoError(t, err)
	assert.Contains(t, inc, "\tNode 0 has 2 connections: Node 1, and Node 2.\n")
	assert.Contains(t, inc, "\tNode 2 has 1 connection: Node 0.\n")

	// Neighbor order follows edge emission, whichever endpoint comes first.
	g = core.MustGraph(core.Range(4), []core.Edge{{From: 3, To: 1}, {From: 1, To: 0}, {From: 2, To: 1}})
	inc, err = corpus.Describe(g, corpus.StyleIncident)
	require.NoError(t, err)
	assert.Contains(t, inc, "\tNode 1 has 3 connections: Node 3, Node 0, and Node 2.\n")
	assert.Contains(t, inc, "\tNode 3 has 1 connection: Node 1.\n")

	inc, err = corpus.Describe(core.MustGraph(core.Range(2), nil), corpus.StyleIncident)
	require.NoError(t, err)
	assert.Contains(t, inc, "\tNode 1 has 0 connections.\n")

	_, err = corpus.Describe(g, corpus.Style("Matrix"))
	assert.ErrorIs(t, err, corpus.ErrUnknownStyle)
	_, err = corpus.ParseStyle("Matrix")
	assert.ErrorIs(t, err, corpus.ErrUnknownStyle)
}

func TestPromptAndTemplates(t *testing.T) {
	g := core.MustGraph(core.Range(1), nil)
	p, err := corpus.Prompt("Q: <GDL> A:", g, corpus.StyleAdjacency)
	require.NoError(t, err)
	assert.Contains(t, p, "nodes: 0.\n")
	assert.NotContains(t, p, corpus.Placeholder)
	_, err = corpus.Prompt("no marker", g, corpus.StyleAdjacency)
	assert.ErrorIs(t, err, corpus.ErrNoPlaceholder)

	dir := t.TempDir()
	line := "Given a graph in graph description language <GDL>. Count the edges."
	require.NoError(t, os.WriteFile(filepath.Join(dir, "top.txt"), []byte(line+"\n\n"), 0o644))
	tpls, err := corpus.ReadTemplates(dir)
	require.NoError(t, err)
	require.Len(t, tpls, 1)
	assert.Equal(t, "Given a graph in graph description.\n<GDL>\nInstruction: Count the edges.", tpls[0])
	assert.Equal(t, "g-1-s-2-p-3.txt", corpus.PromptFileName(1, 2, 3))
}
