package nn

import (
	"github.com/born-ml/scalargrad/internal/autodiff"
)

// ReLU is a Rectified Linear Unit activation layer.
//
// Applies the element-wise function: f(x) = max(0, x)
//
// Example:
//
//	relu := nn.NewReLU()
//	output := relu.Forward(inputs) // All negative values become 0
type ReLU struct{}

// NewReLU creates a new ReLU activation layer.
func NewReLU() *ReLU {
	return &ReLU{}
}

// Forward applies ReLU to every input.
func (r *ReLU) Forward(inputs []*autodiff.Scalar) []*autodiff.Scalar {
	out := make([]*autodiff.Scalar, len(inputs))
	for i, x := range inputs {
		out[i] = x.ReLU()
	}
	return out
}

// Parameters returns nil (ReLU has no trainable parameters).
func (r *ReLU) Parameters() []*Parameter {
	return nil
}

// Sigmoid is a sigmoid activation layer.
//
// Applies the element-wise function: σ(x) = 1 / (1 + exp(-x))
type Sigmoid struct{}

// NewSigmoid creates a new Sigmoid activation layer.
func NewSigmoid() *Sigmoid {
	return &Sigmoid{}
}

// Forward applies Sigmoid to every input.
func (s *Sigmoid) Forward(inputs []*autodiff.Scalar) []*autodiff.Scalar {
	out := make([]*autodiff.Scalar, len(inputs))
	for i, x := range inputs {
		out[i] = x.Sigmoid()
	}
	return out
}

// Parameters returns nil (Sigmoid has no trainable parameters).
func (s *Sigmoid) Parameters() []*Parameter {
	return nil
}
