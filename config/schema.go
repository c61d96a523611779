package config

// Config is the top-level workload description, readable from YAML or TOML.
type Config struct {
	Dataset    DatasetConf    `yaml:"dataset" toml:"dataset"`
	Generate   GenerateConf   `yaml:"generate" toml:"generate"`
	Augment    AugmentConf    `yaml:"augment" toml:"augment"`
	Properties PropertiesConf `yaml:"properties" toml:"properties"`
	Prompts    PromptConf     `yaml:"prompts" toml:"prompts"`
	Catalog    CatalogConf    `yaml:"catalog" toml:"catalog"`
	Log        LogConf        `yaml:"log" toml:"log"`
	Metrics    MetricsConf    `yaml:"metrics" toml:"metrics"`
}

// DatasetConf locates the dataset on disk.
type DatasetConf struct {
	Root string `yaml:"root" toml:"root"`
}

// GenerateConf selects which cells to build.
type GenerateConf struct {
	Seed          int64    `yaml:"seed" toml:"seed"`
	Workers       int      `yaml:"workers" toml:"workers"`
	ExhaustiveMin int      `yaml:"exhaustive_min" toml:"exhaustive_min"`
	ExhaustiveMax int      `yaml:"exhaustive_max" toml:"exhaustive_max"` // 0 disables
	MinNodes      int      `yaml:"min_nodes" toml:"min_nodes"`
	MaxNodes      int      `yaml:"max_nodes" toml:"max_nodes"` // 0 disables
	Families      []string `yaml:"families" toml:"families"`   // empty = all
	Instances     int      `yaml:"instances" toml:"instances"` // 0 = family default
	MaxResample   int      `yaml:"max_resample" toml:"max_resample"`
	StarCenter    string   `yaml:"star_center" toml:"star_center"` // "sweep" or "random"
}

// Star center policies for generated Star cells.
const (
	StarCenterSweep  = "sweep"  // instance i is centered on (i-1) mod n
	StarCenterRandom = "random" // center drawn uniformly from the cell's rng
)

// AugmentConf controls variant production.
type AugmentConf struct {
	Enabled     bool `yaml:"enabled" toml:"enabled"`
	MaxAttempts int  `yaml:"max_attempts" toml:"max_attempts"`
}

// PropertiesConf controls property extraction.
type PropertiesConf struct {
	Enabled        bool     `yaml:"enabled" toml:"enabled"`
	Names          []string `yaml:"names" toml:"names"` // empty = every computable property
	SpanningMethod string   `yaml:"spanning_method" toml:"spanning_method"`
}

// PromptConf controls prompt stitching.
type PromptConf struct {
	Templates string   `yaml:"templates" toml:"templates"`
	Output    string   `yaml:"output" toml:"output"`
	Styles    []string `yaml:"styles" toml:"styles"` // empty = all
}

// CatalogConf locates the badger index. An empty path disables it.
type CatalogConf struct {
	Path string `yaml:"path" toml:"path"`
}

// LogConf configures the slog logger; File enables rotation.
type LogConf struct {
	Level      string `yaml:"level" toml:"level"`
	Format     string `yaml:"format" toml:"format"`
	File       string `yaml:"file" toml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb" toml:"max_log_size"`
	MaxAgeDays int    `yaml:"max_age_days" toml:"max_log_age"`
	MaxBackups int    `yaml:"max_backups" toml:"max_backups"`
}

// MetricsConf exposes Prometheus metrics when Addr is set.
type MetricsConf struct {
	Addr string `yaml:"addr" toml:"addr"`
}
