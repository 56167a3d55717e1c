package nn

import (
	"fmt"
	"math"

	"github.com/born-ml/scalargrad/internal/autodiff"
)

// Parameter represents a trainable scalar in a neural network.
//
// A Parameter owns one leaf Scalar. Forward passes read it through Value;
// the optimizer replaces it through Update, so the graph built on top of the
// old Scalar is never extended across steps.
//
// Example:
//
//	w := module.AddParameter("weight_0_0", autodiff.NewScalar(0.3))
//	y := x.Mul(w.Value())
//	y.Backward()
//	w.Grad() // dy/dw
type Parameter struct {
	name  string           // Parameter name (e.g., "weight_0_1", "bias_0")
	value *autodiff.Scalar // Current leaf value
}

// NewParameter creates a new trainable parameter.
//
// A leaf value is wrapped as-is. A Scalar with history is detached into a new
// leaf holding the same number, since parameters never carry a graph.
func NewParameter(name string, value *autodiff.Scalar) *Parameter {
	if !value.IsLeaf() {
		value = autodiff.NewScalar(value.Value(), autodiff.WithName(name))
	}
	return &Parameter{
		name:  name,
		value: value,
	}
}

// Name returns the parameter name.
func (p *Parameter) Name() string {
	return p.name
}

// Value returns the wrapped Scalar used in forward computations.
func (p *Parameter) Value() *autodiff.Scalar {
	return p.value
}

// Grad returns the gradient accumulated on the wrapped Scalar.
func (p *Parameter) Grad() float64 {
	return p.value.Grad()
}

// ZeroGrad clears the accumulated gradient.
func (p *Parameter) ZeroGrad() {
	p.value.ZeroGrad()
}

// Update replaces the wrapped Scalar with a fresh leaf holding v.
//
// The new Scalar keeps the parameter name, has no history, and starts with a
// zero gradient.
//
// Panics with an error wrapping autodiff.ErrArithmetic if v is NaN or ±Inf;
// the parameter is left unchanged.
func (p *Parameter) Update(v float64) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		panic(fmt.Errorf("Parameter.Update: %s = %v: %w", p.name, v, autodiff.ErrArithmetic))
	}
	p.value = autodiff.NewScalar(v, autodiff.WithName(p.name))
}
