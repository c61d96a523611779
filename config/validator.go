package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/lvlath-corpus/builder"
	"github.com/katalvlaran/lvlath-corpus/corpus"
	"github.com/katalvlaran/lvlath-corpus/prim_kruskal"
	"github.com/katalvlaran/lvlath-corpus/property"
)

// ErrInvalid wraps every validation report.
var ErrInvalid = errors.New("config validation errors")

// Validate checks ranges and names and reports every problem at once.
func Validate(cfg *Config) error {
	var errs []string
	add := func(format string, args ...interface{}) {
		errs = append(errs, fmt.Sprintf(format, args...))
	}

	if cfg.Dataset.Root == "" {
		add("dataset.root is required")
	}

	g := cfg.Generate
	if g.Workers < 1 {
		add("generate.workers must be >= 1 (got %d)", g.Workers)
	}
	if g.ExhaustiveMax != 0 {
		if g.ExhaustiveMin < 1 || g.ExhaustiveMin > g.ExhaustiveMax {
			add("generate.exhaustive_min must be in [1, exhaustive_max] (got %d)", g.ExhaustiveMin)
		}
		if g.ExhaustiveMax > builder.MaxExhaustiveNodes {
			add("generate.exhaustive_max must be <= %d (got %d)", builder.MaxExhaustiveNodes, g.ExhaustiveMax)
		}
	}
	if g.MaxNodes != 0 && (g.MinNodes < 1 || g.MinNodes > g.MaxNodes) {
		add("generate.min_nodes must be in [1, max_nodes] (got %d)", g.MinNodes)
	}
	for i, f := range g.Families {
		if _, err := builder.ParseFamily(f); err != nil {
			add("generate.families[%d]: unknown family %q", i, f)
		}
	}
	if g.Instances < 0 {
		add("generate.instances must be >= 0 (got %d)", g.Instances)
	}
	if g.MaxResample < 1 {
		add("generate.max_resample must be >= 1 (got %d)", g.MaxResample)
	}
	if g.StarCenter != StarCenterSweep && g.StarCenter != StarCenterRandom {
		add("generate.star_center must be %q or %q (got %q)", StarCenterSweep, StarCenterRandom, g.StarCenter)
	}

	if cfg.Augment.MaxAttempts < 1 {
		add("augment.max_attempts must be >= 1 (got %d)", cfg.Augment.MaxAttempts)
	}

	for i, name := range cfg.Properties.Names {
		n, err := property.ParseName(name)
		switch {
		case err != nil:
			add("properties.names[%d]: unknown property %q", i, name)
		case n.Reserved():
			add("properties.names[%d]: %q is reserved and never computed", i, name)
		}
	}
	switch cfg.Properties.SpanningMethod {
	case prim_kruskal.MethodKruskal, prim_kruskal.MethodPrim:
	default:
		add("properties.spanning_method must be %q or %q (got %q)",
			prim_kruskal.MethodKruskal, prim_kruskal.MethodPrim, cfg.Properties.SpanningMethod)
	}

	for i, s := range cfg.Prompts.Styles {
		if _, err := corpus.ParseStyle(s); err != nil {
			add("prompts.styles[%d]: unknown style %q", i, s)
		}
	}

	if _, err := parseLevel(cfg.Log.Level); err != nil {
		add("log.level: %v", err)
	}
	if f := cfg.Log.Format; f != "text" && f != "json" {
		add("log.format must be text or json (got %q)", f)
	}
	if cfg.Log.MaxSizeMB < 0 || cfg.Log.MaxAgeDays < 0 || cfg.Log.MaxBackups < 0 {
		add("log rotation limits must be >= 0")
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w:\n  - %s", ErrInvalid, strings.Join(errs, "\n  - "))
	}

	return nil
}

// FamilyList resolves generate.families; empty means every family.
func (g GenerateConf) FamilyList() ([]builder.Family, error) {
	if len(g.Families) == 0 {
		return builder.Families(), nil
	}
	out := make([]builder.Family, 0, len(g.Families))
	for _, s := range g.Families {
		f, err := builder.ParseFamily(s)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}

	return out, nil
}

// NameList resolves properties.names; empty means every computable property.
func (p PropertiesConf) NameList() ([]property.Name, error) {
	if len(p.Names) == 0 {
		return property.Computable(), nil
	}

	return property.ParseNames(p.Names)
}

// StyleList resolves prompts.styles; empty means every style.
func (p PromptConf) StyleList() ([]corpus.Style, error) {
	if len(p.Styles) == 0 {
		return corpus.Styles(), nil
	}
	out := make([]corpus.Style, 0, len(p.Styles))
	for _, s := range p.Styles {
		st, err := corpus.ParseStyle(s)
		if err != nil {
			return nil, err
		}
		out = append(out, st)
	}

	return out, nil
}
