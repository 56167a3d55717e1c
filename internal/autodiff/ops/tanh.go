package ops

import "math"

// TanhOp represents the hyperbolic tangent activation.
type TanhOp struct {
	a      float64
	output float64
}

// NewTanhOp creates a new tanh operation.
func NewTanhOp(a float64) *TanhOp {
	return &TanhOp{a: a, output: math.Tanh(a)}
}

// Kind returns KindTanh.
func (op *TanhOp) Kind() Kind { return KindTanh }

// Inputs returns [a].
func (op *TanhOp) Inputs() []float64 { return []float64{op.a} }

// Value returns tanh(a).
func (op *TanhOp) Value() float64 {
	return op.output
}

// Backward computes the gradient for tanh.
//
// Since tanh(a) is already known: grad_a = outputGrad * (1 - tanh²(a)).
func (op *TanhOp) Backward(outputGrad float64) []float64 {
	t := op.output
	return []float64{outputGrad * (1.0 - t*t)}
}
