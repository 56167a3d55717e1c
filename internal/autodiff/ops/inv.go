package ops

import "github.com/born-ml/scalargrad/internal/operators"

// InvOp represents the reciprocal: output = 1 / a.
//
// Division a / b is recorded as Mul(a, Inv(b)).
//
// Backward pass:
//
//	∂L/∂a = ∂L/∂output * (-1 / a²)
type InvOp struct {
	a float64
}

// NewInvOp creates a new InvOp.
func NewInvOp(a float64) *InvOp {
	return &InvOp{a: a}
}

// Kind returns KindInv.
func (op *InvOp) Kind() Kind { return KindInv }

// Inputs returns [a].
func (op *InvOp) Inputs() []float64 { return []float64{op.a} }

// Value returns 1 / a. The result is +Inf or -Inf for a == 0.
func (op *InvOp) Value() float64 {
	return operators.Inv(op.a)
}

// Backward computes the reciprocal gradient.
func (op *InvOp) Backward(outputGrad float64) []float64 {
	return []float64{operators.InvBack(op.a, outputGrad)}
}
