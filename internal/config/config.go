// Package config loads training runs from YAML files.
//
// A file may set any subset of fields; the rest keep Default values:
//
//	dataset: Xor
//	points: 100
//	train:
//	  hidden_layers: 2
//	  learning_rate: 0.5
//	  max_epochs: 1000
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/born-ml/scalargrad/internal/datasets"
	"github.com/born-ml/scalargrad/internal/nn"
	"github.com/born-ml/scalargrad/internal/train"
)

// Config describes one training run: the dataset and the trainer settings.
type Config struct {
	Dataset  string       `yaml:"dataset"`   // Registered dataset name (default: Simple)
	Points   int          `yaml:"points"`    // Number of examples (default: 50)
	DataSeed int64        `yaml:"data_seed"` // Seed for dataset sampling
	Train    train.Config `yaml:"train"`
}

// Default returns the settings of the reference run: 50 points of the Simple
// dataset and train.DefaultConfig.
func Default() Config {
	return Config{
		Dataset:  "Simple",
		Points:   50,
		DataSeed: 1,
		Train:    train.DefaultConfig(),
	}
}

// Load reads and validates the YAML file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // G304: path is supplied by the user
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML over Default and validates the result.
//
// Unknown keys are rejected. An empty document yields Default.
func Parse(data []byte) (Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decode: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the dataset name, point count, and trainer settings.
func (c Config) Validate() error {
	if _, err := datasets.Lookup(c.Dataset); err != nil {
		return err
	}
	if c.Points <= 0 {
		return fmt.Errorf("points must be > 0, got %d", c.Points)
	}
	if err := c.Train.Validate(); err != nil {
		return fmt.Errorf("train: %w", err)
	}
	return nil
}

// Graph samples the configured dataset.
func (c Config) Graph() (*datasets.Graph, error) {
	gen, err := datasets.Lookup(c.Dataset)
	if err != nil {
		return nil, err
	}
	return gen(c.Points, nn.NewRand(c.DataSeed)), nil
}

// Marshal encodes c as YAML.
func (c Config) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
