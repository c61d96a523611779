package config_test

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlath-corpus/builder"
	"github.com/katalvlaran/lvlath-corpus/config"
	"github.com/katalvlaran/lvlath-corpus/property"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))

	return p
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	require.NoError(t, config.Validate(cfg))

	assert.Equal(t, "dataset", cfg.Dataset.Root)
	assert.Equal(t, 1, cfg.Generate.ExhaustiveMin)
	assert.Equal(t, 6, cfg.Generate.ExhaustiveMax)
	assert.Equal(t, 7, cfg.Generate.MinNodes)
	assert.Equal(t, 20, cfg.Generate.MaxNodes)
	assert.Equal(t, runtime.NumCPU(), cfg.Generate.Workers)
	assert.Equal(t, builder.DefaultMaxResample, cfg.Generate.MaxResample)
	assert.Equal(t, config.StarCenterSweep, cfg.Generate.StarCenter)
	assert.Equal(t, "kruskal", cfg.Properties.SpanningMethod)
	assert.True(t, cfg.Augment.Enabled)

	fams, err := cfg.Generate.FamilyList()
	require.NoError(t, err)
	assert.Equal(t, builder.Families(), fams)

	names, err := cfg.Properties.NameList()
	require.NoError(t, err)
	assert.Equal(t, property.Computable(), names)
}

func TestLoadYAML(t *testing.T) {
	p := writeFile(t, "corpus.yaml", `
dataset:
  root: /tmp/ds
generate:
  seed: 42
  workers: 3
  exhaustive_max: 0
  min_nodes: 8
  max_nodes: 9
  families: [ERM, Star]
  instances: 5
properties:
  names: [node_count, girth]
  spanning_method: prim
log:
  level: debug
  format: json
`)
	cfg, err := config.Load(p)
	require.NoError(t, err)
	require.NoError(t, config.Validate(cfg))

	assert.Equal(t, "/tmp/ds", cfg.Dataset.Root)
	assert.Equal(t, int64(42), cfg.Generate.Seed)
	assert.Equal(t, 3, cfg.Generate.Workers)
	assert.Equal(t, 0, cfg.Generate.ExhaustiveMax)
	assert.Equal(t, 5, cfg.Generate.Instances)

	fams, err := cfg.Generate.FamilyList()
	require.NoError(t, err)
	assert.Equal(t, []builder.Family{builder.FamilyGnm, builder.FamilyStar}, fams)

	names, err := cfg.Properties.NameList()
	require.NoError(t, err)
	assert.Equal(t, []property.Name{property.NodeCount, property.Girth}, names)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoadYAMLUnknownKey(t *testing.T) {
	p := writeFile(t, "bad.yml", "generate:\n  sead: 1\n")
	_, err := config.Load(p)
	require.Error(t, err)
}

func TestLoadTOML(t *testing.T) {
	p := writeFile(t, "corpus.toml", `
[dataset]
root = "out"

[generate]
seed = 7
workers = 2
families = ["BAG"]

[log]
level = "warn"
file = "corpus.log"
max_log_size = 5
max_log_age = 3
`)
	cfg, err := config.Load(p)
	require.NoError(t, err)
	require.NoError(t, config.Validate(cfg))

	assert.Equal(t, "out", cfg.Dataset.Root)
	assert.Equal(t, int64(7), cfg.Generate.Seed)
	assert.Equal(t, []string{"BAG"}, cfg.Generate.Families)
	assert.Equal(t, 5, cfg.Log.MaxSizeMB)
	assert.Equal(t, 3, cfg.Log.MaxAgeDays)
	assert.Equal(t, "corpus.log", cfg.Log.File)
}

func TestLoadTOMLUnknownKey(t *testing.T) {
	p := writeFile(t, "bad.toml", "[generate]\nseeed = 1\n")
	_, err := config.Load(p)
	require.Error(t, err)
}

func TestLoadErrors(t *testing.T) {
	_, err := config.Load(writeFile(t, "corpus.ini", "x=1"))
	require.ErrorIs(t, err, config.ErrUnsupportedFormat)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestValidateCollectsEverything(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	cfg.Dataset.Root = ""
	cfg.Generate.Workers = 0
	cfg.Generate.ExhaustiveMax = builder.MaxExhaustiveNodes + 1
	cfg.Generate.Families = []string{"Nope"}
	cfg.Generate.StarCenter = "middle"
	cfg.Properties.Names = []string{"maximum_flow", "bogus"}
	cfg.Properties.SpanningMethod = "boruvka"
	cfg.Prompts.Styles = []string{"sideways"}
	cfg.Log.Level = "loud"
	cfg.Log.Format = "xml"

	err = config.Validate(cfg)
	require.ErrorIs(t, err, config.ErrInvalid)
	msg := err.Error()
	for _, want := range []string{
		"dataset.root",
		"generate.workers",
		"generate.exhaustive_max",
		`unknown family "Nope"`,
		"generate.star_center",
		`"maximum_flow" is reserved`,
		`unknown property "bogus"`,
		"spanning_method",
		`unknown style "sideways"`,
		"log.level",
		"log.format",
	} {
		assert.Contains(t, msg, want)
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	log, closer, err := config.NewLogger(config.LogConf{Level: "info", Format: "json"}, &buf)
	require.NoError(t, err)
	defer closer.Close()

	log.Debug("hidden")
	log.Info("shown", "n", 7)
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"msg":"shown"`)
	assert.Contains(t, buf.String(), `"n":7`)

	_, _, err = config.NewLogger(config.LogConf{Level: "loud"}, &buf)
	require.Error(t, err)
}

func TestNewLoggerFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "corpus.log")
	log, closer, err := config.NewLogger(config.LogConf{Level: "debug", File: p, MaxSizeMB: 1}, nil)
	require.NoError(t, err)
	log.Debug("to file")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(p)
	require.NoError(t, err)
	assert.Contains(t, string(data), "to file")
}
