package ops

import "github.com/born-ml/scalargrad/internal/operators"

// ReLUOp represents a ReLU (Rectified Linear Unit) activation: output = max(0, a).
//
// Backward pass:
//   - d(ReLU(a))/da = 1 if a > 0, else 0
//
// a == 0 is treated as non-differentiable and receives zero gradient.
type ReLUOp struct {
	a float64
}

// NewReLUOp creates a new ReLUOp.
func NewReLUOp(a float64) *ReLUOp {
	return &ReLUOp{a: a}
}

// Kind returns KindReLU.
func (op *ReLUOp) Kind() Kind { return KindReLU }

// Inputs returns [a].
func (op *ReLUOp) Inputs() []float64 { return []float64{op.a} }

// Value returns max(0, a).
func (op *ReLUOp) Value() float64 {
	return operators.ReLU(op.a)
}

// Backward masks the output gradient by a > 0.
func (op *ReLUOp) Backward(outputGrad float64) []float64 {
	return []float64{operators.ReLUBack(op.a, outputGrad)}
}
