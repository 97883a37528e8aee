// Package config loads the YAML configuration of a preparation run.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/katalvlaran/graphprep/split"
	"github.com/katalvlaran/graphprep/subgraph"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned by Validate and Load for unusable settings.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config holds the complete run configuration.
type Config struct {
	// Dataset is the path of the JSON graph file.
	Dataset string `yaml:"dataset"`

	Normalize NormalizeConfig `yaml:"normalize"`
	Split     SplitConfig     `yaml:"split"`
	Train     ViewConfig      `yaml:"train"`
	Val       ViewConfig      `yaml:"val"`
	Integrity IntegrityConfig `yaml:"integrity"`
}

// NormalizeConfig mirrors the normalize options.
type NormalizeConfig struct {
	MakeSymmetric bool    `yaml:"make_symmetric"`
	MinClassCount float64 `yaml:"min_class_count"`
}

// SplitConfig selects the split strategy and its parameters.
type SplitConfig struct {
	// Type is "stratified" or "uniform".
	Type string `yaml:"type"`

	// Sizes are the train/val/test fractions of a stratified split.
	Sizes []float64 `yaml:"sizes,omitempty"`

	// Seeds gives one split per entry.
	Seeds []int64 `yaml:"seeds"`

	// TrainPerClass and ValPerClass are the sample counts of a uniform split.
	TrainPerClass int `yaml:"train_per_class,omitempty"`
	ValPerClass   int `yaml:"val_per_class,omitempty"`
}

// ViewConfig describes which labels a derived view keeps.
type ViewConfig struct {
	Labels subgraph.LabelSelector `yaml:"labels"`

	// RemoveOther drops vertices outside Labels from the view's graph
	// instead of only excluding them from its mask.
	RemoveOther bool `yaml:"remove_other"`
}

// IntegrityConfig holds closeness tolerances for attribute comparison.
type IntegrityConfig struct {
	AbsTol float64 `yaml:"abs_tol"`
	RelTol float64 `yaml:"rel_tol"`
}

// Default returns the configuration used for keys a file leaves out.
func Default() Config {
	return Config{
		Normalize: NormalizeConfig{MakeSymmetric: true},
		Split: SplitConfig{
			Type:  string(split.Stratified),
			Sizes: []float64{0.05, 0.15, 0.8},
			Seeds: []int64{0},
		},
		Train:     ViewConfig{Labels: subgraph.All()},
		Val:       ViewConfig{Labels: subgraph.All()},
		Integrity: IntegrityConfig{AbsTol: 1e-8, RelTol: 1e-5},
	}
}

// Strategy parses Split.Type.
func (c *Config) Strategy() (split.Strategy, error) {
	return split.ParseStrategy(c.Split.Type)
}

// Validate checks if the configuration is usable.
func (c *Config) Validate() error {
	if c.Normalize.MinClassCount < 0 {
		return fmt.Errorf("%w: normalize.min_class_count must be non-negative", ErrInvalidConfig)
	}
	if len(c.Split.Seeds) == 0 {
		return fmt.Errorf("%w: split.seeds is empty", ErrInvalidConfig)
	}
	s, err := c.Strategy()
	if err != nil {
		return fmt.Errorf("%w: split.type: %w", ErrInvalidConfig, err)
	}
	switch s {
	case split.Stratified:
		if len(c.Split.Sizes) != 3 {
			return fmt.Errorf("%w: split.sizes needs train, val and test fractions", ErrInvalidConfig)
		}
		if err := split.ValidateSizes(c.Split.Sizes); err != nil {
			return fmt.Errorf("%w: split.sizes: %w", ErrInvalidConfig, err)
		}
	case split.Uniform:
		if c.Split.TrainPerClass <= 0 || c.Split.ValPerClass <= 0 {
			return fmt.Errorf("%w: split.train_per_class and split.val_per_class must be positive", ErrInvalidConfig)
		}
	}
	if c.Integrity.AbsTol < 0 || c.Integrity.RelTol < 0 {
		return fmt.Errorf("%w: integrity tolerances must be non-negative", ErrInvalidConfig)
	}
	return nil
}

// Parse decodes YAML over Default and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Load reads and parses the file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	return Parse(data)
}
