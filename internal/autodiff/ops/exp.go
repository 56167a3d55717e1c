package ops

import "github.com/born-ml/scalargrad/internal/operators"

// ExpOp represents the exponential: output = e^a.
//
// Backward pass:
//
//	∂L/∂a = ∂L/∂output * e^a
//
// The forward result is cached and reused by Backward.
type ExpOp struct {
	a      float64
	output float64
}

// NewExpOp creates a new ExpOp.
func NewExpOp(a float64) *ExpOp {
	return &ExpOp{a: a, output: operators.Exp(a)}
}

// Kind returns KindExp.
func (op *ExpOp) Kind() Kind { return KindExp }

// Inputs returns [a].
func (op *ExpOp) Inputs() []float64 { return []float64{op.a} }

// Value returns e^a.
func (op *ExpOp) Value() float64 {
	return op.output
}

// Backward computes outputGrad * e^a.
func (op *ExpOp) Backward(outputGrad float64) []float64 {
	return []float64{outputGrad * op.output}
}
