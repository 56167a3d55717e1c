package ops

import "github.com/born-ml/scalargrad/internal/operators"

// AddOp represents an addition: output = a + b.
//
// Backward pass:
//   - d(a+b)/da = 1, so grad_a = outputGrad
//   - d(a+b)/db = 1, so grad_b = outputGrad
type AddOp struct {
	a, b float64
}

// NewAddOp creates a new AddOp.
func NewAddOp(a, b float64) *AddOp {
	return &AddOp{a: a, b: b}
}

// Kind returns KindAdd.
func (op *AddOp) Kind() Kind { return KindAdd }

// Inputs returns [a, b].
func (op *AddOp) Inputs() []float64 { return []float64{op.a, op.b} }

// Value returns a + b.
func (op *AddOp) Value() float64 {
	return operators.Add(op.a, op.b)
}

// Backward passes the output gradient through unchanged to both inputs.
func (op *AddOp) Backward(outputGrad float64) []float64 {
	return []float64{outputGrad, outputGrad}
}
