// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"math/rand"

	"github.com/born-ml/scalargrad/internal/autodiff"
	"github.com/born-ml/scalargrad/internal/nn"
)

// Layer is implemented by modules that map input Scalars to output Scalars.
type Layer = nn.Layer

// Module is a named container of parameters and child modules.
type Module = nn.Module

// NewModule creates an empty module.
func NewModule(name string) *Module {
	return nn.NewModule(name)
}

// Parameter is a named trainable Scalar.
type Parameter = nn.Parameter

// NamedParameter pairs a parameter with its dotted path in a module tree.
type NamedParameter = nn.NamedParameter

// NewParameter creates a new parameter with the given name and value.
func NewParameter(name string, value *autodiff.Scalar) *Parameter {
	return nn.NewParameter(name, value)
}

// ShapeError reports a forward call with the wrong number of inputs.
type ShapeError = nn.ShapeError

// ErrShape is matched by every *ShapeError via errors.Is.
var ErrShape = nn.ErrShape

// Initialization

// Initializer draws one initial parameter value.
type Initializer = nn.Initializer

// Built-in initializers.
var (
	UniformSymmetric Initializer = nn.UniformSymmetric
	Xavier           Initializer = nn.Xavier
	Zeros            Initializer = nn.Zeros
)

// NewRand returns a deterministic random source for initialization.
func NewRand(seed int64) *rand.Rand {
	return nn.NewRand(seed)
}

// Layers

// Linear is a fully connected layer.
type Linear = nn.Linear

// LinearConfig selects the initializers of a Linear layer.
type LinearConfig = nn.LinearConfig

// NewLinear creates a linear layer with weights and biases drawn from U(-1, 1).
//
// Example:
//
//	layer := nn.NewLinear(2, 8, nn.NewRand(1))
//	hidden := layer.Forward(inputs)
func NewLinear(inFeatures, outFeatures int, rng *rand.Rand) *Linear {
	return nn.NewLinear(inFeatures, outFeatures, rng)
}

// NewLinearWithConfig creates a linear layer with custom initializers.
func NewLinearWithConfig(inFeatures, outFeatures int, rng *rand.Rand, cfg LinearConfig) *Linear {
	return nn.NewLinearWithConfig(inFeatures, outFeatures, rng, cfg)
}

// Sequential chains layers so each output feeds the next.
type Sequential = nn.Sequential

// NewSequential creates a Sequential over layers.
//
// Example:
//
//	rng := nn.NewRand(1)
//	body := nn.NewSequential(nn.NewLinear(2, 8, rng), nn.NewReLU(), nn.NewLinear(8, 1, rng))
func NewSequential(layers ...Layer) *Sequential {
	return nn.NewSequential(layers...)
}

// Activations

// ReLU applies max(0, x) element-wise.
type ReLU = nn.ReLU

// NewReLU creates a ReLU activation layer.
func NewReLU() *ReLU {
	return nn.NewReLU()
}

// Sigmoid applies 1 / (1 + e^-x) element-wise.
type Sigmoid = nn.Sigmoid

// NewSigmoid creates a Sigmoid activation layer.
func NewSigmoid() *Sigmoid {
	return nn.NewSigmoid()
}

// Network is a ReLU MLP with a sigmoid output.
type Network = nn.Network

// NetworkConfig describes a Network.
type NetworkConfig = nn.NetworkConfig

// NewNetwork creates a network with parameters drawn from U(-1, 1).
func NewNetwork(cfg NetworkConfig, rng *rand.Rand) *Network {
	return nn.NewNetwork(cfg, rng)
}

// Loss

// BinaryCrossEntropy returns -log(out) for label 1 and -log(1-out) for label 0.
func BinaryCrossEntropy(out *autodiff.Scalar, label int) *autodiff.Scalar {
	return nn.BinaryCrossEntropy(out, label)
}

// Correct reports whether out classifies label correctly at the 0.5 threshold.
func Correct(out *autodiff.Scalar, label int) bool {
	return nn.Correct(out, label)
}
