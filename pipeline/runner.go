// SPDX-License-Identifier: MIT
// Package: lvlath-corpus/pipeline
//
// runner.go: bounded parallel execution of corpus stages.
//
// Stages:
//   - Generate:   build each planned cell, write it, its variants and their
//     property records.
//   - Augment:    add variants to every source graph already on disk.
//   - Properties: recompute the property record of every graph on disk.
//   - Prompts:    stitch every graph into every template in every style.
//
// Contract:
//   - At most cfg.Generate.Workers cells run at once.
//   - A failing cell is logged and recorded in the Report; siblings go on.
//   - Cancelling ctx stops scheduling; the partial Report is returned with
//     ctx.Err().
//   - Output is independent of Workers and scheduling order.

package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"iter"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvlath-corpus/augment"
	"github.com/katalvlaran/lvlath-corpus/builder"
	"github.com/katalvlaran/lvlath-corpus/catalog"
	"github.com/katalvlaran/lvlath-corpus/config"
	"github.com/katalvlaran/lvlath-corpus/corpus"
	"github.com/katalvlaran/lvlath-corpus/property"
)

// Stage names, used in logs, metrics and Reports.
const (
	StageGenerate   = "generate"
	StageAugment    = "augment"
	StageProperties = "properties"
	StagePrompts    = "prompts"
)

// Runner executes stages over one dataset.
type Runner struct {
	cfg      *config.Config
	layout   corpus.Layout
	families []builder.Family
	names    []property.Name
	styles   []corpus.Style

	log     *slog.Logger
	metrics *Metrics
	cat     *catalog.Catalog
	runID   string
}

// Option customizes a Runner.
type Option func(*Runner)

// WithLogger routes stage and cell logs to l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("pipeline: WithLogger(nil)")
	}

	return func(r *Runner) { r.log = l }
}

// WithMetrics reports to m. Panics on nil.
func WithMetrics(m *Metrics) Option {
	if m == nil {
		panic("pipeline: WithMetrics(nil)")
	}

	return func(r *Runner) { r.metrics = m }
}

// WithCatalog indexes every written artifact in c.
func WithCatalog(c *catalog.Catalog) Option {
	return func(r *Runner) { r.cat = c }
}

// WithRunID stamps catalog entries with id instead of a fresh one.
func WithRunID(id string) Option {
	return func(r *Runner) { r.runID = id }
}

// New validates cfg and returns a Runner over cfg.Dataset.Root.
func New(cfg *config.Config, opts ...Option) (*Runner, error) {
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	families, err := cfg.Generate.FamilyList()
	if err != nil {
		return nil, err
	}
	names, err := cfg.Properties.NameList()
	if err != nil {
		return nil, err
	}
	styles, err := cfg.Prompts.StyleList()
	if err != nil {
		return nil, err
	}

	r := &Runner{
		cfg:      cfg,
		layout:   corpus.Layout{Root: cfg.Dataset.Root},
		families: families,
		names:    names,
		styles:   styles,
		log:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.metrics == nil {
		r.metrics = NewMetrics(nil)
	}
	if r.runID == "" {
		r.runID = catalog.NewRunID()
	}

	return r, nil
}

// RunID returns the id stamped on catalog entries.
func (r *Runner) RunID() string { return r.runID }

// Layout returns the dataset layout.
func (r *Runner) Layout() corpus.Layout { return r.layout }

// Planned returns how many cells Generate would run.
func (r *Runner) Planned() int {
	return PlanSize(r.cfg.Generate, r.families)
}

// Generate builds every planned cell.
func (r *Runner) Generate(ctx context.Context) (*Report, error) {
	return schedule(ctx, r, StageGenerate, Plan(r.cfg.Generate, r.families),
		func(c Cell) string { return c.Location().Key() },
		r.generateCell)
}

// Augment writes variants for every source graph under the dataset root.
// Files that already are variants are skipped.
func (r *Runner) Augment(ctx context.Context) (*Report, error) {
	paths, err := r.layout.List()
	if err != nil {
		return nil, err
	}
	sources := make([]string, 0, len(paths))
	for _, p := range paths {
		if !corpus.IsVariantPath(p) {
			sources = append(sources, p)
		}
	}

	return schedule(ctx, r, StageAugment, slices.Values(sources), identity, r.augmentFile)
}

// Properties rewrites the property record of every graph file.
func (r *Runner) Properties(ctx context.Context) (*Report, error) {
	paths, err := r.layout.List()
	if err != nil {
		return nil, err
	}

	return schedule(ctx, r, StageProperties, slices.Values(paths), identity, r.propertiesFile)
}

type indexedPath struct {
	index int
	path  string
}

// Prompts writes g-<i>-s-<j>-p-<k>.txt under cfg.Prompts.Output for graph i
// (sorted dataset order), style j and template k.
func (r *Runner) Prompts(ctx context.Context) (*Report, error) {
	templates, err := corpus.ReadTemplates(r.cfg.Prompts.Templates)
	if err != nil {
		return nil, err
	}
	paths, err := r.layout.List()
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(r.cfg.Prompts.Output, 0o755); err != nil {
		return nil, fmt.Errorf("pipeline: prompts dir: %w", err)
	}
	items := func(yield func(indexedPath) bool) {
		for i, p := range paths {
			if !yield(indexedPath{index: i, path: p}) {
				return
			}
		}
	}

	return schedule(ctx, r, StagePrompts, items,
		func(ip indexedPath) string { return ip.path },
		func(ip indexedPath) (tally, error) { return r.promptFile(ip, templates) })
}

// schedule runs work over items on the bounded pool and aggregates a Report.
func schedule[T any](ctx context.Context, r *Runner, stage string, items iter.Seq[T],
	key func(T) string, work func(T) (tally, error)) (*Report, error) {
	rep := &Report{RunID: r.runID, Stage: stage}
	start := time.Now()
	r.log.Info("stage started", "stage", stage, "run", r.runID, "workers", r.cfg.Generate.Workers)

	var mu sync.Mutex
	g := new(errgroup.Group)
	g.SetLimit(r.cfg.Generate.Workers)
	for it := range items {
		if ctx.Err() != nil {
			break
		}
		g.Go(func() error {
			r.metrics.InFlight.Inc()
			defer r.metrics.InFlight.Dec()

			t0 := time.Now()
			t, err := work(it)
			if err == nil && r.cat != nil && len(t.entries) > 0 {
				err = r.cat.PutBatch(t.entries)
			}
			r.metrics.CellDuration.WithLabelValues(stage).Observe(time.Since(t0).Seconds())

			mu.Lock()
			defer mu.Unlock()
			rep.Cells++
			if err != nil {
				rep.fail(key(it), err)
				r.metrics.Cells.WithLabelValues(stage, "failed").Inc()
				r.log.Warn("cell failed", "stage", stage, "cell", key(it), "err", err)

				return nil
			}
			rep.add(t)
			r.metrics.Cells.WithLabelValues(stage, "ok").Inc()
			r.log.Debug("cell done", "stage", stage, "cell", key(it))

			return nil
		})
	}
	_ = g.Wait() // cells never return errors
	rep.Elapsed = time.Since(start)

	r.log.Info("stage finished", "stage", stage, "cells", rep.Cells, "failed", rep.Failed,
		"elapsed", rep.Elapsed)
	if err := ctx.Err(); err != nil {
		return rep, fmt.Errorf("pipeline: %s interrupted: %w", stage, err)
	}

	return rep, nil
}

func (r *Runner) generateCell(c Cell) (tally, error) {
	rng := streamRand(r.cfg.Generate.Seed, c.Location(), StreamBuild)

	var (
		sample *builder.Sample
		err    error
	)
	if c.Exhaustive {
		var en *builder.Enumerator
		if en, err = builder.NewEnumerator(c.Nodes); err == nil {
			sample, err = en.Sample(c.Mask())
		}
	} else {
		var cons builder.Constructor
		if cons, err = constructorFor(c, r.cfg.Generate.StarCenter); err == nil {
			sample, err = builder.Build(cons,
				builder.WithRand(rng),
				builder.WithMaxResample(r.cfg.Generate.MaxResample))
		}
	}
	if err != nil {
		return tally{}, err
	}

	return r.emit(c.Location(), corpus.NewDocument(sample), true)
}

func (r *Runner) augmentFile(path string) (tally, error) {
	loc, doc, err := r.load(path)
	if err != nil {
		return tally{}, err
	}
	if !r.cfg.Augment.Enabled {
		return tally{}, nil
	}

	return r.emit(loc, doc, false)
}

func (r *Runner) propertiesFile(path string) (tally, error) {
	loc, doc, err := r.load(path)
	if err != nil {
		return tally{}, err
	}
	entry := r.entry(loc, doc)
	data, err := r.writeProperties(loc, doc)
	if err != nil {
		return tally{}, err
	}
	entry.Properties = data
	r.metrics.Artifacts.WithLabelValues("properties").Inc()
	r.metrics.Bytes.Add(float64(len(data)))

	return tally{properties: 1, bytes: int64(len(data)), entries: []catalog.Entry{entry}}, nil
}

func (r *Runner) promptFile(ip indexedPath, templates []string) (tally, error) {
	doc, err := corpus.ReadFile(ip.path)
	if err != nil {
		return tally{}, err
	}
	var t tally
	for _, style := range r.styles {
		j := styleIndex(style)
		for k, tpl := range templates {
			text, err := corpus.Prompt(tpl, doc.Graph, style)
			if err != nil {
				return t, fmt.Errorf("template %d: %w", k, err)
			}
			out := filepath.Join(r.cfg.Prompts.Output, corpus.PromptFileName(ip.index, j, k))
			if err := os.WriteFile(out, []byte(text), 0o644); err != nil {
				return t, fmt.Errorf("pipeline: write %s: %w", out, err)
			}
			t.prompts++
			t.bytes += int64(len(text))
			r.metrics.Artifacts.WithLabelValues("prompt").Inc()
			r.metrics.Bytes.Add(float64(len(text)))
		}
	}

	return t, nil
}

// emit writes the source (when withSource), its variants (when augmentation
// is on) and, when properties are on, one record per written graph.
func (r *Runner) emit(loc corpus.Location, doc *corpus.Document, withSource bool) (tally, error) {
	type artifact struct {
		loc corpus.Location
		doc *corpus.Document
	}
	var (
		t    tally
		arts []artifact
	)

	if withSource {
		if err := corpus.WriteFile(r.layout.GraphPath(loc), doc); err != nil {
			return t, err
		}
		t.graphs++
		r.metrics.Artifacts.WithLabelValues("graph").Inc()
		arts = append(arts, artifact{loc, doc})
	}

	if r.cfg.Augment.Enabled {
		aug := augment.New(streamRand(r.cfg.Generate.Seed, loc, StreamAugment),
			augment.WithMaxAttempts(r.cfg.Augment.MaxAttempts))
		variants, err := aug.Variants(doc.Graph)
		if err != nil {
			return t, fmt.Errorf("%s: %w", loc.Key(), err)
		}
		for _, v := range variants {
			vloc := loc.WithVariant(v.Name)
			vdoc := variantDocument(doc, v)
			if err := corpus.WriteFile(r.layout.GraphPath(vloc), vdoc); err != nil {
				return t, err
			}
			t.variants++
			r.metrics.Artifacts.WithLabelValues("variant").Inc()
			arts = append(arts, artifact{vloc, vdoc})
		}
	}

	for _, a := range arts {
		entry := r.entry(a.loc, a.doc)
		if r.cfg.Properties.Enabled {
			data, err := r.writeProperties(a.loc, a.doc)
			if err != nil {
				return t, err
			}
			entry.Properties = data
			t.properties++
			t.bytes += int64(len(data))
			r.metrics.Artifacts.WithLabelValues("properties").Inc()
			r.metrics.Bytes.Add(float64(len(data)))
		}
		t.entries = append(t.entries, entry)
	}

	return t, nil
}

func (r *Runner) writeProperties(loc corpus.Location, doc *corpus.Document) (json.RawMessage, error) {
	x, err := property.NewExtractor(doc.Graph,
		streamRand(r.cfg.Generate.Seed, loc, StreamProperties),
		property.WithSpanningMethod(r.cfg.Properties.SpanningMethod))
	if err != nil {
		return nil, err
	}
	if err := x.Extract(r.names...); err != nil {
		return nil, fmt.Errorf("%s: %w", loc.Key(), err)
	}

	return corpus.WriteProperties(r.layout.PropertiesPath(loc), x.Record())
}

func (r *Runner) load(path string) (corpus.Location, *corpus.Document, error) {
	loc, err := r.layout.Parse(path)
	if err != nil {
		return corpus.Location{}, nil, err
	}
	doc, err := corpus.ReadFile(path)
	if err != nil {
		return corpus.Location{}, nil, err
	}

	return loc, doc, nil
}

func (r *Runner) entry(loc corpus.Location, doc *corpus.Document) catalog.Entry {
	return catalog.Entry{
		ID:      loc.Key(),
		RunID:   r.runID,
		Nodes:   loc.Nodes,
		Family:  loc.Family,
		Index:   loc.Index,
		Variant: loc.Variant,
		Path:    r.layout.GraphPath(loc),
		Edges:   doc.Graph.EdgeCount(),
	}
}

// variantDocument carries the source header over to a variant, mapping the
// partition through the relabeling when there is one.
func variantDocument(src *corpus.Document, v augment.Variant) *corpus.Document {
	h := src.Header
	h.Relabeling = v.Relabeling
	if v.Relabeling != nil && !h.Partition.IsZero() {
		h.Partition = h.Partition.Relabel(v.Relabeling.Map())
	}

	return &corpus.Document{Header: h, Graph: v.Graph}
}

func styleIndex(s corpus.Style) int {
	for i, st := range corpus.Styles() {
		if st == s {
			return i
		}
	}

	return -1
}

func identity(s string) string { return s }
