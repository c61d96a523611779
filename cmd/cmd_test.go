package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlath-corpus/catalog"
	"github.com/katalvlaran/lvlath-corpus/config"
	"github.com/katalvlaran/lvlath-corpus/corpus"
)

func TestParser(t *testing.T) {
	c := NewCLI()
	parser, err := c.Parser()
	require.NoError(t, err)

	kctx, err := parser.Parse([]string{"--root", "out", "-j", "3", "generate", "--families", "ERM,Star", "-n", "4", "--star-center", "random", "--no-augment"})
	require.NoError(t, err)
	assert.Equal(t, "generate", kctx.Command())
	assert.Equal(t, "out", c.Root)
	assert.Equal(t, 3, c.Workers)
	assert.Equal(t, []string{"ERM", "Star"}, c.Generate.Families)
	assert.Equal(t, 4, c.Generate.Instances)
	assert.Equal(t, "random", c.Generate.StarCenter)
	assert.True(t, c.Generate.NoAugment)

	c = NewCLI()
	parser, err = c.Parser()
	require.NoError(t, err)
	kctx, err = parser.Parse([]string{"catalog", "get", "n03/graph_000001", "--catalog", "/tmp/cat"})
	require.NoError(t, err)
	assert.Equal(t, "catalog get <id>", kctx.Command())
	assert.Equal(t, "n03/graph_000001", c.Catalog.Get.ID)
	assert.Equal(t, "/tmp/cat", c.CatalogPath)
}

func TestEnumerateCmd_WithCatalog(t *testing.T) {
	root := t.TempDir()
	catDir := filepath.Join(t.TempDir(), "catalog")
	g := &Globals{Root: root, Workers: 2, CatalogPath: catDir, LogLevel: "warn"}

	require.NoError(t, (&EnumerateCmd{Min: 1, Max: 3}).Run(g))

	files, err := corpus.Layout{Root: root}.List()
	require.NoError(t, err)
	assert.Len(t, files, 44)

	require.NoError(t, (&CatalogStatsCmd{}).Run(g))
	require.NoError(t, (&CatalogGetCmd{ID: "n03/graph_000008"}).Run(g))
	require.ErrorIs(t, (&CatalogGetCmd{ID: "n09/graph_000001"}).Run(g), catalog.ErrNotFound)
	require.NoError(t, (&CatalogRunsCmd{}).Run(g))

	cat, err := catalog.Open(catalog.Options{Path: catDir, ReadOnly: true})
	require.NoError(t, err)
	defer cat.Close()
	runs, err := cat.Runs()
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, "enumerate", runs[0].Command)
	assert.Equal(t, int64(1), runs[0].Seed)

	stats, err := cat.Stats()
	require.NoError(t, err)
	require.Len(t, stats, 3)
	assert.Equal(t, catalog.FamilyCount{Nodes: 3, Sources: 8, Total: 36}, stats[2])
}

func TestGenerateCmd_FromYAML(t *testing.T) {
	root := t.TempDir()
	cfgPath := filepath.Join(t.TempDir(), "corpus.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`
dataset:
  root: `+root+`
generate:
  seed: 5
  workers: 2
  exhaustive_max: 0
  min_nodes: 4
  max_nodes: 4
  families: [Path]
augment:
  enabled: false
log:
  level: error
`), 0o644))

	require.NoError(t, (&GenerateCmd{}).Run(&Globals{Config: cfgPath}))

	files, err := corpus.Layout{Root: root}.List()
	require.NoError(t, err)
	assert.Len(t, files, 6, "Path has one instance per vertex pair")

	props, err := corpus.ReadProperties(filepath.Join(root, "n04", "Path", "graph_000001", "graph_000001.json"))
	require.NoError(t, err)
	assert.Equal(t, 3.0, props["edge_count"])
	assert.Equal(t, 3.0, props["diameter"])

	require.NoError(t, (&AugmentCmd{}).Run(&Globals{Config: cfgPath}))
	files, err = corpus.Layout{Root: root}.List()
	require.NoError(t, err)
	assert.Len(t, files, 6*6)
}

func TestPropertiesCmd_InvalidNames(t *testing.T) {
	err := (&PropertiesCmd{Names: []string{"bogus"}}).Run(&Globals{Root: t.TempDir()})
	require.ErrorIs(t, err, config.ErrInvalid)
}

func TestDescribeCmd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "g.csv")
	require.NoError(t, os.WriteFile(path, []byte("0\n1\n2\n0 1\n1 2\n"), 0o644))

	require.NoError(t, (&DescribeCmd{Path: path, Style: "Incident"}).Run())
	require.NoError(t, (&DescribeCmd{Path: path, Style: "Adjacency", Template: "Count edges in <GDL>"}).Run())
	require.ErrorIs(t, (&DescribeCmd{Path: path, Style: "Sideways"}).Run(), corpus.ErrUnknownStyle)
	require.ErrorIs(t, (&DescribeCmd{Path: path, Style: "Adjacency", Template: "no placeholder"}).Run(), corpus.ErrNoPlaceholder)
}

func TestCatalogCmd_NoPath(t *testing.T) {
	err := (&CatalogStatsCmd{}).Run(&Globals{})
	require.ErrorIs(t, err, catalog.ErrBadOptions)
}
