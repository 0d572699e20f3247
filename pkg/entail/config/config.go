// Package config loads the YAML configuration shared by the command-line
// binaries: which solver backend to use, where compiled knowledge
// snapshots live, and how large the answer cache is.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/cognicore/entail/pkg/entail/internalerr"
)

// Config selects the solver and cache backends
type Config struct {
	Solver SolverConfig `yaml:"solver"`
	Cache  CacheConfig  `yaml:"cache"`
	Query  QueryConfig  `yaml:"query"`
}

// SolverConfig picks the satisfiability backend
type SolverConfig struct {
	Backend string   `yaml:"backend"` // gophersat or gini
	Timeout Duration `yaml:"timeout"` // per solve, e.g. "250ms"; zero disables
}

// CacheConfig picks where compiled knowledge snapshots are stored
type CacheConfig struct {
	Backend string `yaml:"backend"` // none, file or sqlite
	Path    string `yaml:"path"`
}

// QueryConfig sizes the resolved-answer cache
type QueryConfig struct {
	AnswerCacheSize int `yaml:"answer_cache_size"`
}

// Duration wraps time.Duration so Go duration strings work in YAML
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(parsed)
	return nil
}

// Default returns the configuration used when no file is given
func Default() *Config {
	return &Config{
		Solver: SolverConfig{Backend: "gophersat"},
		Cache:  CacheConfig{Backend: "none"},
		Query:  QueryConfig{AnswerCacheSize: 512},
	}
}

// Load reads and validates a YAML config file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks backend names, paths and sizes
func (c *Config) Validate() error {
	switch c.Solver.Backend {
	case "gophersat", "gini":
	default:
		return fmt.Errorf("unknown solver backend %q: %w", c.Solver.Backend, internalerr.ErrInvalidConfig)
	}
	switch c.Cache.Backend {
	case "none", "file", "sqlite":
	default:
		return fmt.Errorf("unknown cache backend %q: %w", c.Cache.Backend, internalerr.ErrInvalidConfig)
	}
	if c.Cache.Backend != "none" && c.Cache.Path == "" {
		return fmt.Errorf("cache backend %q needs a path: %w", c.Cache.Backend, internalerr.ErrInvalidConfig)
	}
	if c.Solver.Timeout < 0 {
		return fmt.Errorf("negative solver timeout: %w", internalerr.ErrInvalidConfig)
	}
	if c.Query.AnswerCacheSize < 0 {
		return fmt.Errorf("negative answer cache size: %w", internalerr.ErrInvalidConfig)
	}
	return nil
}
