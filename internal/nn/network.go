package nn

import (
	"fmt"
	"math/rand"

	"github.com/born-ml/scalargrad/internal/autodiff"
)

// NetworkConfig describes a multi-layer perceptron.
type NetworkConfig struct {
	HiddenLayers int // Number of hidden Linear+ReLU layers (may be 0)
	InSize       int // Input features (default: 2)
	OutSize      int // Output features; only the first feeds the sigmoid (default: 1)
	HiddenSize   int // Width of every hidden layer (default: 8)
}

// Network is a multi-layer perceptron for binary classification.
//
// Architecture:
//   - layer1..layerN: Linear + ReLU, HiddenSize wide
//   - output: Linear to OutSize, sigmoid applied to the first output
//
// With HiddenLayers == 0 the network is logistic regression on the inputs.
type Network struct {
	*Module

	cfg    NetworkConfig
	layers []*Linear
	output *Linear
	body   *Sequential // layer1, ReLU, ..., output
}

// NewNetwork creates a Network with parameters drawn from U(-1, 1) using rng.
func NewNetwork(cfg NetworkConfig, rng *rand.Rand) *Network {
	return NewNetworkWithConfig(cfg, rng, LinearConfig{})
}

// NewNetworkWithConfig creates a Network whose layers use the given initializers.
func NewNetworkWithConfig(cfg NetworkConfig, rng *rand.Rand, layerCfg LinearConfig) *Network {
	if cfg.InSize == 0 {
		cfg.InSize = 2
	}
	if cfg.OutSize == 0 {
		cfg.OutSize = 1
	}
	if cfg.HiddenSize == 0 {
		cfg.HiddenSize = 8
	}
	if cfg.HiddenLayers < 0 {
		panic(fmt.Sprintf("NewNetwork: negative hidden layer count %d", cfg.HiddenLayers))
	}

	n := &Network{
		Module: NewModule("Network"),
		cfg:    cfg,
		layers: make([]*Linear, 0, cfg.HiddenLayers),
		body:   NewSequential(),
	}

	in := cfg.InSize
	for i := 1; i <= cfg.HiddenLayers; i++ {
		layer := NewLinearWithConfig(in, cfg.HiddenSize, rng, layerCfg)
		n.AddModule(fmt.Sprintf("layer%d", i), layer.Module)
		n.layers = append(n.layers, layer)
		n.body.Add(layer)
		n.body.Add(NewReLU())
		in = cfg.HiddenSize
	}

	n.output = NewLinearWithConfig(in, cfg.OutSize, rng, layerCfg)
	n.AddModule("output", n.output.Module)
	n.body.Add(n.output)

	return n
}

// Forward returns sigmoid of the first output for input x.
//
// Panics with *ShapeError if len(x) != InSize.
func (n *Network) Forward(x []*autodiff.Scalar) *autodiff.Scalar {
	return n.body.Forward(x)[0].Sigmoid()
}

// Clone returns a structurally identical network whose parameters are fresh
// leaves holding the same values. Gradients are not copied.
//
// Clones let several goroutines run forward and backward passes without
// sharing any Scalar.
func (n *Network) Clone() *Network {
	c := NewNetworkWithConfig(n.cfg, nil, LinearConfig{WeightInit: Zeros, BiasInit: Zeros})
	src := n.Parameters()
	for i, p := range c.Parameters() {
		p.Update(src[i].Value().Value())
	}
	return c
}

// Layers returns the hidden layers in order.
func (n *Network) Layers() []*Linear {
	return n.layers
}

// Output returns the output layer.
func (n *Network) Output() *Linear {
	return n.output
}

// Config returns the configuration with defaults applied.
func (n *Network) Config() NetworkConfig {
	return n.cfg
}
