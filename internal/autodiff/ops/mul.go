package ops

import "github.com/born-ml/scalargrad/internal/operators"

// MulOp represents a multiplication: output = a * b.
//
// Backward pass:
//   - d(a*b)/da = b, so grad_a = outputGrad * b
//   - d(a*b)/db = a, so grad_b = outputGrad * a
type MulOp struct {
	a, b float64
}

// NewMulOp creates a new MulOp.
func NewMulOp(a, b float64) *MulOp {
	return &MulOp{a: a, b: b}
}

// Kind returns KindMul.
func (op *MulOp) Kind() Kind { return KindMul }

// Inputs returns [a, b].
func (op *MulOp) Inputs() []float64 { return []float64{op.a, op.b} }

// Value returns a * b.
func (op *MulOp) Value() float64 {
	return operators.Mul(op.a, op.b)
}

// Backward computes input gradients for multiplication.
func (op *MulOp) Backward(outputGrad float64) []float64 {
	return []float64{
		operators.Mul(outputGrad, op.b),
		operators.Mul(outputGrad, op.a),
	}
}
