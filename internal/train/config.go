package train

import (
	"errors"
	"fmt"
)

// Optimizer names accepted by Config.Optimizer.
const (
	OptimizerSGD  = "sgd"
	OptimizerAdam = "adam"
)

// Config holds trainer hyperparameters.
type Config struct {
	HiddenLayers int     `yaml:"hidden_layers"` // Hidden Linear+ReLU layers (default: 2)
	HiddenSize   int     `yaml:"hidden_size"`   // Hidden layer width (default: 8)
	Optimizer    string  `yaml:"optimizer"`     // "sgd" or "adam" (default: sgd)
	LearningRate float64 `yaml:"learning_rate"` // Learning rate (default: 0.5)
	Momentum     float64 `yaml:"momentum"`      // SGD momentum; ignored by Adam (default: 0)
	MaxEpochs    int     `yaml:"max_epochs"`    // Epochs to run (default: 500)
	Seed         int64   `yaml:"seed"`          // Seed for parameter initialization
	Workers      int     `yaml:"workers"`       // Goroutines per epoch; 1 runs sequentially, 0 uses one per CPU
	LogEvery     int     `yaml:"log_every"`     // Log interval in epochs (default: 10)
}

// DefaultConfig returns the settings used by the command-line trainer.
func DefaultConfig() Config {
	return Config{
		HiddenLayers: 2,
		HiddenSize:   8,
		Optimizer:    OptimizerSGD,
		LearningRate: 0.5,
		MaxEpochs:    500,
		Seed:         1,
		Workers:      1,
		LogEvery:     10,
	}
}

// Validate reports every invalid field.
func (c Config) Validate() error {
	var errs []error
	if c.HiddenLayers < 0 {
		errs = append(errs, fmt.Errorf("hidden_layers must be >= 0, got %d", c.HiddenLayers))
	}
	if c.HiddenSize <= 0 {
		errs = append(errs, fmt.Errorf("hidden_size must be > 0, got %d", c.HiddenSize))
	}
	switch c.Optimizer {
	case "", OptimizerSGD, OptimizerAdam:
	default:
		errs = append(errs, fmt.Errorf("optimizer must be %q or %q, got %q", OptimizerSGD, OptimizerAdam, c.Optimizer))
	}
	if c.LearningRate <= 0 {
		errs = append(errs, fmt.Errorf("learning_rate must be > 0, got %g", c.LearningRate))
	}
	if c.Momentum < 0 || c.Momentum >= 1 {
		errs = append(errs, fmt.Errorf("momentum must be in [0, 1), got %g", c.Momentum))
	}
	if c.MaxEpochs <= 0 {
		errs = append(errs, fmt.Errorf("max_epochs must be > 0, got %d", c.MaxEpochs))
	}
	if c.Workers < 0 {
		errs = append(errs, fmt.Errorf("workers must be >= 0, got %d", c.Workers))
	}
	if c.LogEvery <= 0 {
		errs = append(errs, fmt.Errorf("log_every must be > 0, got %d", c.LogEvery))
	}
	return errors.Join(errs...)
}
