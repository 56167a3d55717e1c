package ops

import "math"

// PowOp raises a to a constant exponent: output = a^n.
//
// The exponent is a plain float, not a graph node, so no gradient flows to it.
//
// Backward pass:
//
//	∂L/∂a = ∂L/∂output * n * a^(n-1)
type PowOp struct {
	a        float64
	exponent float64
}

// NewPowOp creates a new PowOp.
func NewPowOp(a, exponent float64) *PowOp {
	return &PowOp{a: a, exponent: exponent}
}

// Kind returns KindPow.
func (op *PowOp) Kind() Kind { return KindPow }

// Inputs returns [a].
func (op *PowOp) Inputs() []float64 { return []float64{op.a} }

// Exponent returns the constant exponent n.
func (op *PowOp) Exponent() float64 { return op.exponent }

// Value returns a^n. Negative bases with fractional exponents give NaN.
func (op *PowOp) Value() float64 {
	return math.Pow(op.a, op.exponent)
}

// Backward computes n * a^(n-1) * outputGrad.
func (op *PowOp) Backward(outputGrad float64) []float64 {
	if op.exponent == 0 {
		return []float64{0}
	}
	return []float64{outputGrad * op.exponent * math.Pow(op.a, op.exponent-1)}
}
