package nn

import (
	"fmt"
	"math/rand"

	"github.com/born-ml/scalargrad/internal/autodiff"
)

// Linear implements a fully connected layer over Scalars.
//
// Performs the transformation: y[j] = sum_k x[k] * W[k][j] + b[j]
// where:
//   - x has in_features Scalars
//   - W is in_features × out_features, registered as "weight_{k}_{j}"
//   - b has out_features Scalars, registered as "bias_{j}"
//
// Example:
//
//	rng := nn.NewRand(42)
//	layer := nn.NewLinear(2, 8, rng)
//	out := layer.Forward([]*autodiff.Scalar{x1, x2}) // 8 Scalars
type Linear struct {
	*Module

	inFeatures  int
	outFeatures int
	weights     [][]*Parameter // [in_features][out_features]
	bias        []*Parameter   // [out_features]
}

// LinearConfig configures NewLinearWithConfig.
type LinearConfig struct {
	WeightInit Initializer // default: UniformSymmetric
	BiasInit   Initializer // default: UniformSymmetric
}

// NewLinear creates a Linear layer with weights and biases drawn from U(-1, 1).
func NewLinear(inFeatures, outFeatures int, rng *rand.Rand) *Linear {
	return NewLinearWithConfig(inFeatures, outFeatures, rng, LinearConfig{})
}

// NewLinearWithConfig creates a Linear layer with explicit initializers.
//
// Panics if either dimension is not positive.
func NewLinearWithConfig(inFeatures, outFeatures int, rng *rand.Rand, cfg LinearConfig) *Linear {
	if inFeatures <= 0 || outFeatures <= 0 {
		panic(fmt.Sprintf("NewLinear: dimensions must be positive, got %d×%d", inFeatures, outFeatures))
	}
	if cfg.WeightInit == nil {
		cfg.WeightInit = UniformSymmetric
	}
	if cfg.BiasInit == nil {
		cfg.BiasInit = UniformSymmetric
	}

	l := &Linear{
		Module:      NewModule("Linear"),
		inFeatures:  inFeatures,
		outFeatures: outFeatures,
		weights:     make([][]*Parameter, inFeatures),
		bias:        make([]*Parameter, outFeatures),
	}

	for i := 0; i < inFeatures; i++ {
		l.weights[i] = make([]*Parameter, outFeatures)
		for j := 0; j < outFeatures; j++ {
			name := fmt.Sprintf("weight_%d_%d", i, j)
			l.weights[i][j] = l.AddParameter(name, initScalar(cfg.WeightInit, rng, inFeatures, outFeatures, name))
		}
	}
	for j := 0; j < outFeatures; j++ {
		name := fmt.Sprintf("bias_%d", j)
		l.bias[j] = l.AddParameter(name, initScalar(cfg.BiasInit, rng, inFeatures, outFeatures, name))
	}

	return l
}

// Forward computes the output of the linear layer.
//
// Panics with *ShapeError if len(inputs) != InFeatures(), before building any
// graph nodes.
func (l *Linear) Forward(inputs []*autodiff.Scalar) []*autodiff.Scalar {
	if len(inputs) != l.inFeatures {
		panic(&ShapeError{Layer: l.Name(), Expected: l.inFeatures, Got: len(inputs)})
	}

	out := make([]*autodiff.Scalar, l.outFeatures)
	terms := make([]*autodiff.Scalar, l.inFeatures)
	for j := 0; j < l.outFeatures; j++ {
		for k := 0; k < l.inFeatures; k++ {
			terms[k] = inputs[k].Mul(l.weights[k][j].Value())
		}
		out[j] = autodiff.Sum(terms...).Add(l.bias[j].Value())
	}
	return out
}

// Weight returns the parameter connecting input in to output out.
func (l *Linear) Weight(in, out int) *Parameter {
	return l.weights[in][out]
}

// Bias returns the bias parameter of output out.
func (l *Linear) Bias(out int) *Parameter {
	return l.bias[out]
}

// InFeatures returns the number of input features.
func (l *Linear) InFeatures() int {
	return l.inFeatures
}

// OutFeatures returns the number of output features.
func (l *Linear) OutFeatures() int {
	return l.outFeatures
}
