// Package cmd provides the lvlath-corpus command line.
package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/lvlath-corpus/catalog"
	"github.com/katalvlaran/lvlath-corpus/config"
	"github.com/katalvlaran/lvlath-corpus/corpus"
	"github.com/katalvlaran/lvlath-corpus/pipeline"
)

// Version is set at build time via ldflags.
var Version = "dev"

// maxPrintedFailures bounds the failures listed in a summary.
const maxPrintedFailures = 5

// Globals are flags shared by every command. Non-zero values override the
// workload file.
type Globals struct {
	Config      string `short:"c" help:"Workload file (.yaml, .yml or .toml)"`
	Root        string `help:"Dataset root"`
	Seed        int64  `help:"Base seed (0 keeps the configured one)"`
	Workers     int    `short:"j" help:"Parallel cells"`
	CatalogPath string `name:"catalog" help:"BadgerDB catalog directory"`
	LogLevel    string `help:"debug, info, warn or error"`
	LogFile     string `help:"Rotating log file"`
	Metrics     string `help:"Serve Prometheus metrics on this address, e.g. :9090"`
}

func (g *Globals) load() (*config.Config, error) {
	cfg, err := config.Load(g.Config)
	if err != nil {
		return nil, err
	}
	if g.Root != "" {
		cfg.Dataset.Root = g.Root
	}
	if g.Seed != 0 {
		cfg.Generate.Seed = g.Seed
	}
	if g.Workers != 0 {
		cfg.Generate.Workers = g.Workers
	}
	if g.CatalogPath != "" {
		cfg.Catalog.Path = g.CatalogPath
	}
	if g.LogLevel != "" {
		cfg.Log.Level = g.LogLevel
	}
	if g.LogFile != "" {
		cfg.Log.File = g.LogFile
	}
	if g.Metrics != "" {
		cfg.Metrics.Addr = g.Metrics
	}

	return cfg, nil
}

// env is everything a pipeline command holds open while it runs.
type env struct {
	cfg     *config.Config
	log     *slog.Logger
	runner  *pipeline.Runner
	cat     *catalog.Catalog
	srv     *http.Server
	closers []io.Closer
}

// setup loads the workload, applies edit, and wires logging, metrics and
// the catalog into a Runner.
func setup(g *Globals, command string, edit func(*config.Config)) (*env, error) {
	cfg, err := g.load()
	if err != nil {
		return nil, err
	}
	if edit != nil {
		edit(cfg)
	}
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}

	log, logCloser, err := config.NewLogger(cfg.Log, os.Stderr)
	if err != nil {
		return nil, err
	}
	e := &env{cfg: cfg, log: log, closers: []io.Closer{logCloser}}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	opts := []pipeline.Option{pipeline.WithLogger(log), pipeline.WithMetrics(pipeline.NewMetrics(reg))}

	if cfg.Catalog.Path != "" {
		cat, err := catalog.Open(catalog.Options{Path: cfg.Catalog.Path})
		if err != nil {
			e.close()
			return nil, err
		}
		e.cat = cat
		e.closers = append(e.closers, cat)
		opts = append(opts, pipeline.WithCatalog(cat))
	}

	runner, err := pipeline.New(cfg, opts...)
	if err != nil {
		e.close()
		return nil, err
	}
	e.runner = runner

	if e.cat != nil {
		run := catalog.Run{ID: runner.RunID(), Command: command, Seed: cfg.Generate.Seed, StartedAt: time.Now().UTC()}
		if err := e.cat.PutRun(run); err != nil {
			e.close()
			return nil, err
		}
	}

	if cfg.Metrics.Addr != "" {
		mux := http.NewServeMux()
		mux.Handle("GET /metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
		e.srv = &http.Server{Addr: cfg.Metrics.Addr, Handler: mux, ReadHeaderTimeout: 10 * time.Second}
		go func() {
			log.Info("metrics server starting", "addr", cfg.Metrics.Addr)
			if err := e.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Error("metrics server error", "err", err)
			}
		}()
	}

	return e, nil
}

func (e *env) close() {
	if e.srv != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		_ = e.srv.Shutdown(ctx)
		cancel()
	}
	// close in reverse so the logger outlives the catalog
	for i := len(e.closers) - 1; i >= 0; i-- {
		if err := e.closers[i].Close(); err != nil {
			e.log.Warn("close failed", "err", err)
		}
	}
}

// runStage runs one pipeline stage under SIGINT/SIGTERM cancellation and
// prints its summary.
func runStage(g *Globals, command string, edit func(*config.Config),
	stage func(*pipeline.Runner, context.Context) (*pipeline.Report, error)) error {
	e, err := setup(g, command, edit)
	if err != nil {
		return err
	}
	defer e.close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rep, err := stage(e.runner, ctx)
	if rep != nil {
		printReport(rep)
	}
	if err != nil {
		return err
	}
	if !rep.OK() {
		return fmt.Errorf("%s: %d of %d cells failed", rep.Stage, rep.Failed, rep.Cells)
	}

	return nil
}

func printReport(rep *pipeline.Report) {
	if rep.OK() {
		color.Green("✓ %s complete", rep.Stage)
	} else {
		color.Yellow("! %s finished with failures", rep.Stage)
	}
	fmt.Printf("  Run:         %s\n", rep.RunID)
	fmt.Printf("  Cells:       %s\n", humanize.Comma(int64(rep.Cells)))
	if rep.Graphs > 0 {
		fmt.Printf("  Graphs:      %s\n", humanize.Comma(int64(rep.Graphs)))
	}
	if rep.Variants > 0 {
		fmt.Printf("  Variants:    %s\n", humanize.Comma(int64(rep.Variants)))
	}
	if rep.Properties > 0 {
		fmt.Printf("  Properties:  %s\n", humanize.Comma(int64(rep.Properties)))
	}
	if rep.Prompts > 0 {
		fmt.Printf("  Prompts:     %s\n", humanize.Comma(int64(rep.Prompts)))
	}
	fmt.Printf("  Written:     %s\n", humanize.Bytes(uint64(rep.Bytes)))
	fmt.Printf("  Duration:    %s\n", rep.Elapsed.Round(time.Millisecond))
	if rep.Failed == 0 {
		return
	}
	color.Red("  Failed:      %s", humanize.Comma(int64(rep.Failed)))
	for i, f := range rep.Failures {
		if i == maxPrintedFailures {
			color.Red("    … %d more", rep.Failed-maxPrintedFailures)
			break
		}
		color.Red("    %s: %v", f.Cell, f.Err)
	}
}

// GenerateCmd builds the exhaustive and family-generated dataset.
type GenerateCmd struct {
	Families     []string `help:"Family labels (default: all)"`
	MinNodes     int      `help:"Smallest generated vertex count"`
	MaxNodes     int      `help:"Largest generated vertex count"`
	Instances    int      `short:"n" help:"Instances per (family, n) cell (0: family default)"`
	StarCenter   string   `help:"Star center policy: sweep or random (default: configured)"`
	NoExhaustive bool     `help:"Skip the exhaustive graphs"`
	NoAugment    bool     `help:"Skip augmented variants"`
	NoProperties bool     `help:"Skip property extraction"`
}

func (c *GenerateCmd) apply(cfg *config.Config) {
	if len(c.Families) > 0 {
		cfg.Generate.Families = c.Families
	}
	if c.MinNodes != 0 {
		cfg.Generate.MinNodes = c.MinNodes
	}
	if c.MaxNodes != 0 {
		cfg.Generate.MaxNodes = c.MaxNodes
	}
	if c.Instances != 0 {
		cfg.Generate.Instances = c.Instances
	}
	if c.StarCenter != "" {
		cfg.Generate.StarCenter = c.StarCenter
	}
	if c.NoExhaustive {
		cfg.Generate.ExhaustiveMax = 0
	}
	if c.NoAugment {
		cfg.Augment.Enabled = false
	}
	if c.NoProperties {
		cfg.Properties.Enabled = false
	}
}

// Run executes the generate command.
func (c *GenerateCmd) Run(g *Globals) error {
	return runStage(g, "generate", c.apply, (*pipeline.Runner).Generate)
}

// EnumerateCmd writes every labeled graph on Min..Max vertices.
type EnumerateCmd struct {
	Min          int  `default:"1" help:"Smallest vertex count"`
	Max          int  `default:"6" help:"Largest vertex count"`
	NoAugment    bool `help:"Skip augmented variants"`
	NoProperties bool `help:"Skip property extraction"`
}

// Run executes the enumerate command.
func (c *EnumerateCmd) Run(g *Globals) error {
	return runStage(g, "enumerate", func(cfg *config.Config) {
		cfg.Generate.ExhaustiveMin = c.Min
		cfg.Generate.ExhaustiveMax = c.Max
		cfg.Generate.MaxNodes = 0
		if c.NoAugment {
			cfg.Augment.Enabled = false
		}
		if c.NoProperties {
			cfg.Properties.Enabled = false
		}
	}, (*pipeline.Runner).Generate)
}

// AugmentCmd adds variants to an existing dataset.
type AugmentCmd struct {
	NoProperties bool `help:"Skip property extraction for the new variants"`
}

// Run executes the augment command.
func (c *AugmentCmd) Run(g *Globals) error {
	return runStage(g, "augment", func(cfg *config.Config) {
		cfg.Augment.Enabled = true
		if c.NoProperties {
			cfg.Properties.Enabled = false
		}
	}, (*pipeline.Runner).Augment)
}

// PropertiesCmd recomputes property records for an existing dataset.
type PropertiesCmd struct {
	Names          []string `help:"Property names (default: every computable one)"`
	SpanningMethod string   `help:"kruskal or prim"`
}

// Run executes the properties command.
func (c *PropertiesCmd) Run(g *Globals) error {
	return runStage(g, "properties", func(cfg *config.Config) {
		cfg.Properties.Enabled = true
		if len(c.Names) > 0 {
			cfg.Properties.Names = c.Names
		}
		if c.SpanningMethod != "" {
			cfg.Properties.SpanningMethod = c.SpanningMethod
		}
	}, (*pipeline.Runner).Properties)
}

// PromptsCmd stitches every dataset graph into every template.
type PromptsCmd struct {
	Templates string   `required:"" help:"Directory of one-prompt-per-line template files"`
	Output    string   `help:"Output directory"`
	Styles    []string `help:"Description styles (default: all)"`
}

// Run executes the prompts command.
func (c *PromptsCmd) Run(g *Globals) error {
	return runStage(g, "prompts", func(cfg *config.Config) {
		cfg.Prompts.Templates = c.Templates
		if c.Output != "" {
			cfg.Prompts.Output = c.Output
		}
		if len(c.Styles) > 0 {
			cfg.Prompts.Styles = c.Styles
		}
	}, (*pipeline.Runner).Prompts)
}

// DescribeCmd prints the description of one graph file.
type DescribeCmd struct {
	Path     string `arg:"" help:"Graph file"`
	Style    string `default:"Adjacency" help:"Adjacency, FullAdjacency or Incident"`
	Template string `help:"Prompt template containing <GDL>"`
}

// Run executes the describe command.
func (c *DescribeCmd) Run() error {
	style, err := corpus.ParseStyle(c.Style)
	if err != nil {
		return err
	}
	doc, err := corpus.ReadFile(c.Path)
	if err != nil {
		return err
	}
	var out string
	if c.Template != "" {
		out, err = corpus.Prompt(corpus.NormalizeTemplate(c.Template), doc.Graph, style)
	} else {
		out, err = corpus.Describe(doc.Graph, style)
	}
	if err != nil {
		return err
	}
	fmt.Print(out)

	return nil
}

// openCatalog opens the configured catalog read-only.
func openCatalog(g *Globals) (*catalog.Catalog, error) {
	cfg, err := g.load()
	if err != nil {
		return nil, err
	}
	if cfg.Catalog.Path == "" {
		return nil, fmt.Errorf("no catalog configured (catalog.path or --catalog): %w", catalog.ErrBadOptions)
	}

	return catalog.Open(catalog.Options{Path: cfg.Catalog.Path, ReadOnly: true})
}

// CatalogStatsCmd prints per-family artifact counts.
type CatalogStatsCmd struct{}

// Run executes the catalog stats command.
func (c *CatalogStatsCmd) Run(g *Globals) error {
	cat, err := openCatalog(g)
	if err != nil {
		return err
	}
	defer func() { _ = cat.Close() }()

	stats, err := cat.Stats()
	if err != nil {
		return err
	}
	if len(stats) == 0 {
		fmt.Println("Catalog is empty")
		return nil
	}
	total := 0
	color.Cyan("%-6s %-16s %12s %12s", "nodes", "family", "sources", "total")
	for _, s := range stats {
		family := s.Family
		if family == "" {
			family = "(exhaustive)"
		}
		fmt.Printf("%-6d %-16s %12s %12s\n", s.Nodes, family,
			humanize.Comma(int64(s.Sources)), humanize.Comma(int64(s.Total)))
		total += s.Total
	}
	color.Green("%s artifacts", humanize.Comma(int64(total)))

	return nil
}

// CatalogGetCmd prints one catalog entry as JSON.
type CatalogGetCmd struct {
	ID string `arg:"" help:"Artifact id, e.g. n07/ERM/graph_000001-edge-shift-1"`
}

// Run executes the catalog get command.
func (c *CatalogGetCmd) Run(g *Globals) error {
	cat, err := openCatalog(g)
	if err != nil {
		return err
	}
	defer func() { _ = cat.Close() }()

	e, err := cat.Get(c.ID)
	if err != nil {
		return err
	}
	out, err := json.MarshalIndent(e, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))

	return nil
}

// CatalogRunsCmd lists recorded runs.
type CatalogRunsCmd struct{}

// Run executes the catalog runs command.
func (c *CatalogRunsCmd) Run(g *Globals) error {
	cat, err := openCatalog(g)
	if err != nil {
		return err
	}
	defer func() { _ = cat.Close() }()

	runs, err := cat.Runs()
	if err != nil {
		return err
	}
	for _, r := range runs {
		fmt.Printf("%s  %-10s seed=%d  %s\n", r.ID, r.Command, r.Seed, humanize.Time(r.StartedAt))
	}

	return nil
}

// CatalogCmd groups the catalog queries.
type CatalogCmd struct {
	Stats CatalogStatsCmd `cmd:"" help:"Artifact counts per vertex count and family"`
	Get   CatalogGetCmd   `cmd:"" help:"Show one artifact"`
	Runs  CatalogRunsCmd  `cmd:"" help:"List recorded runs"`
}

// CLI is the root Kong command structure.
type CLI struct {
	Globals

	Version kong.VersionFlag `help:"Show version information"`

	Generate   GenerateCmd   `cmd:"" help:"Generate the dataset (exhaustive + families)"`
	Enumerate  EnumerateCmd  `cmd:"" help:"Write every labeled graph on a range of vertex counts"`
	Augment    AugmentCmd    `cmd:"" help:"Add node/edge-shift variants to an existing dataset"`
	Properties PropertiesCmd `cmd:"" help:"Recompute property records for an existing dataset"`
	Prompts    PromptsCmd    `cmd:"" help:"Stitch dataset graphs into prompt templates"`
	Describe   DescribeCmd   `cmd:"" help:"Print the natural-language description of a graph file"`
	Catalog    CatalogCmd    `cmd:"" help:"Query the corpus catalog"`
}

// NewCLI creates a new CLI instance.
func NewCLI() *CLI {
	return &CLI{}
}

// Parser builds the kong parser for c.
func (c *CLI) Parser(options ...kong.Option) (*kong.Kong, error) {
	options = append([]kong.Option{
		kong.Name("lvlath-corpus"),
		kong.Description("Labeled small-graph corpus generator"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{
			"version": Version,
		},
	}, options...)

	return kong.New(c, options...)
}

// Execute parses args and executes the selected command.
func (c *CLI) Execute(args []string) error {
	parser, err := c.Parser()
	if err != nil {
		return err
	}
	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	return kongCtx.Run(&c.Globals)
}
