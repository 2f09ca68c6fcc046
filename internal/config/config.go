// Package config loads a scan run's YAML configuration file, in the same
// shape as the rest of this module's ambient tooling.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// SinkConfig selects and parameterizes an output sink.
type SinkConfig struct {
	Kind string `yaml:"kind"` // "sidecar" (default) or "sql"
	DSN  string `yaml:"dsn"`  // only used when Kind == "sql"
}

// RunConfig is a scan run's full configuration, loaded once from YAML and
// overlaid with CLI flags.
type RunConfig struct {
	CorpusRoot   string     `yaml:"corpus_root"`
	IncludeGlobs []string   `yaml:"include_globs"`
	ExcludeGlobs []string   `yaml:"exclude_globs"`
	Concurrency  int        `yaml:"concurrency"`
	FailFast     bool       `yaml:"fail_fast"`
	CachePath    string     `yaml:"cache_path"`
	Sink         SinkConfig `yaml:"sink"`
}

// Load reads and parses a RunConfig from path. A missing file is not an
// error: the caller gets back a zero-value RunConfig to fill in from flags.
func Load(path string) (RunConfig, error) {
	if path == "" {
		return RunConfig{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return RunConfig{}, nil
		}
		return RunConfig{}, fmt.Errorf("config: reading %s: %w", path, err)
	}

	var cfg RunConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return RunConfig{}, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	return cfg, nil
}
