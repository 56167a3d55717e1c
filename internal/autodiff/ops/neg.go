package ops

import "github.com/born-ml/scalargrad/internal/operators"

// NegOp represents negation: output = -a.
type NegOp struct {
	a float64
}

// NewNegOp creates a new NegOp.
func NewNegOp(a float64) *NegOp {
	return &NegOp{a: a}
}

// Kind returns KindNeg.
func (op *NegOp) Kind() Kind { return KindNeg }

// Inputs returns [a].
func (op *NegOp) Inputs() []float64 { return []float64{op.a} }

// Value returns -a.
func (op *NegOp) Value() float64 {
	return operators.Neg(op.a)
}

// Backward returns [-outputGrad].
func (op *NegOp) Backward(outputGrad float64) []float64 {
	return []float64{operators.Neg(outputGrad)}
}
