// Package config loads the pipeline configuration file and turns it
// into analyzer prototypes via the registry.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lexcore/featex/pkg/featex/internalerr"
)

// Feature value kinds selectable per pipeline run.
const (
	ValueCount  = "count"  // unsigned integer occurrence counts
	ValueWeight = "weight" // real-valued weights
)

// Config is the top-level pipeline configuration.
//
// Analyzer blocks are kept loosely typed so that third-party analyzers
// registered under new identifiers can carry their own fields; each
// factory validates its own block.
type Config struct {
	ValueType string           `yaml:"value-type"`
	Stoplist  string           `yaml:"stoplist"`
	Analyzers []map[string]any `yaml:"analyzers"`
}

// Load reads and validates a pipeline configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: config %s: %v", internalerr.ErrResourceLoad, path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: config %s: %v", internalerr.ErrInvalidConfig, path, err)
	}

	if cfg.ValueType == "" {
		cfg.ValueType = ValueCount
	}
	if cfg.ValueType != ValueCount && cfg.ValueType != ValueWeight {
		return nil, fmt.Errorf("%w: value-type must be %q or %q, got %q",
			internalerr.ErrInvalidConfig, ValueCount, ValueWeight, cfg.ValueType)
	}
	if len(cfg.Analyzers) == 0 {
		return nil, fmt.Errorf("%w: config %s: no analyzers configured", internalerr.ErrInvalidConfig, path)
	}

	return &cfg, nil
}
