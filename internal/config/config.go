package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gyeh/claimgen/internal/sink"
)

// Defaults reproduce the fixed fixture: 1000 claims from seed 42.
const (
	DefaultRows    = 1000
	DefaultSeed    = 42
	DefaultOutPath = "augmented_claims_1000.csv"
)

// Config holds all runtime configuration for a claimgen run.
type Config struct {
	DSN        string
	OutPath    string
	Format     string // "csv", "parquet", "xlsx"; empty means infer from OutPath
	FilePath   string // dataset to verify
	LogFormat  string // "text" or "json"
	LogLevel   string
	ConfigFile string
	Rows       int
	Seed       uint64
	KeepBatch  bool // keep staged rows when a load fails
}

// yamlConfig is the on-disk YAML structure. Pointer fields distinguish
// "absent" from zero values.
type yamlConfig struct {
	Rows   *int    `yaml:"rows"`
	Seed   *uint64 `yaml:"seed"`
	Out    *string `yaml:"out"`
	Format *string `yaml:"format"`
	DSN    *string `yaml:"dsn"`
}

// LoadFromFile reads a YAML config file and merges its values into Config.
// Keys for which explicit reports true (flags set on the command line) are
// left untouched; explicit may be nil.
func (c *Config) LoadFromFile(path string, explicit func(key string) bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	var yc yamlConfig
	if err := yaml.Unmarshal(data, &yc); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	set := func(key string) bool { return explicit == nil || !explicit(key) }

	if yc.Rows != nil && set("rows") {
		c.Rows = *yc.Rows
	}
	if yc.Seed != nil && set("seed") {
		c.Seed = *yc.Seed
	}
	if yc.Out != nil && set("out") {
		c.OutPath = *yc.Out
	}
	if yc.Format != nil && set("format") {
		c.Format = *yc.Format
	}
	if yc.DSN != nil && set("dsn") {
		c.DSN = *yc.DSN
	}
	return nil
}

// ValidateGenerate checks the fields a generate run needs and resolves the
// output format.
func (c *Config) ValidateGenerate() error {
	if c.Rows < 0 {
		return fmt.Errorf("--rows must be >= 0, got %d", c.Rows)
	}
	if c.OutPath == "" {
		return fmt.Errorf("--out is required")
	}
	if c.Format == "" {
		c.Format = sink.FormatFromPath(c.OutPath)
	}
	if !sink.ValidFormat(c.Format) {
		return fmt.Errorf("unknown format %q, want one of %v", c.Format, sink.Formats)
	}
	return nil
}

// Validate checks that the dataset to verify is accessible.
func (c *Config) Validate() error {
	if c.FilePath == "" {
		return fmt.Errorf("--file is required")
	}
	if _, err := os.Stat(c.FilePath); err != nil {
		return fmt.Errorf("file not accessible: %w", err)
	}
	return nil
}

// ValidateWithDSN checks the row count and DSN fields needed by a load.
func (c *Config) ValidateWithDSN() error {
	if c.Rows < 0 {
		return fmt.Errorf("--rows must be >= 0, got %d", c.Rows)
	}
	if c.DSN == "" {
		return fmt.Errorf("--dsn or CLAIMGEN_DB_URL is required")
	}
	return nil
}
