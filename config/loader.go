package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvlath-corpus/augment"
	"github.com/katalvlaran/lvlath-corpus/builder"
	"github.com/katalvlaran/lvlath-corpus/prim_kruskal"
)

// ErrUnsupportedFormat is returned for a config file that is neither YAML nor TOML.
var ErrUnsupportedFormat = errors.New("config: unsupported file format")

// Default returns the reference workload: exhaustive graphs for n = 1..6,
// every family for n = 7..20, augmentation and properties on.
func Default() Config {
	return Config{
		Dataset: DatasetConf{Root: "dataset"},
		Generate: GenerateConf{
			Seed:          1,
			ExhaustiveMin: 1,
			ExhaustiveMax: 6,
			MinNodes:      7,
			MaxNodes:      20,
		},
		Augment:    AugmentConf{Enabled: true},
		Properties: PropertiesConf{Enabled: true},
		Prompts:    PromptConf{Output: "prompt"},
		Log:        LogConf{Level: "info", Format: "text"},
	}
}

// Load reads path (".yaml"/".yml" or ".toml") over Default and fills any
// remaining zero knobs. An empty path returns the defaults.
// Unknown keys are rejected.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		switch strings.ToLower(filepath.Ext(path)) {
		case ".yaml", ".yml":
			dec := yaml.NewDecoder(bytes.NewReader(data))
			dec.KnownFields(true)
			if err := dec.Decode(&cfg); err != nil {
				return nil, fmt.Errorf("parse config %s: %w", path, err)
			}
		case ".toml":
			md, err := toml.Decode(string(data), &cfg)
			if err != nil {
				return nil, fmt.Errorf("parse config %s: %w", path, err)
			}
			if undecoded := md.Undecoded(); len(undecoded) > 0 {
				return nil, fmt.Errorf("parse config %s: unknown keys %v", path, undecoded)
			}
		default:
			return nil, fmt.Errorf("%s: %w", path, ErrUnsupportedFormat)
		}
	}
	applyDefaults(&cfg)

	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Generate.Workers == 0 {
		cfg.Generate.Workers = runtime.NumCPU()
	}
	if cfg.Generate.MaxResample == 0 {
		cfg.Generate.MaxResample = builder.DefaultMaxResample
	}
	if cfg.Generate.StarCenter == "" {
		cfg.Generate.StarCenter = StarCenterSweep
	}
	if cfg.Augment.MaxAttempts == 0 {
		cfg.Augment.MaxAttempts = augment.DefaultMaxAttempts
	}
	if cfg.Properties.SpanningMethod == "" {
		cfg.Properties.SpanningMethod = prim_kruskal.MethodKruskal
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "text"
	}
	if cfg.Log.MaxSizeMB == 0 {
		cfg.Log.MaxSizeMB = 100
	}
	if cfg.Log.MaxAgeDays == 0 {
		cfg.Log.MaxAgeDays = 28
	}
}
