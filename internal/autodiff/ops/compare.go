package ops

import "github.com/born-ml/scalargrad/internal/operators"

// LTOp represents a less-than comparison: output = 1 if a < b, else 0.
//
// Comparisons are piecewise constant, so both inputs get zero gradient.
type LTOp struct {
	a, b float64
}

// NewLTOp creates a new LTOp.
func NewLTOp(a, b float64) *LTOp {
	return &LTOp{a: a, b: b}
}

// Kind returns KindLT.
func (op *LTOp) Kind() Kind { return KindLT }

// Inputs returns [a, b].
func (op *LTOp) Inputs() []float64 { return []float64{op.a, op.b} }

// Value returns 1.0 if a < b, else 0.0.
func (op *LTOp) Value() float64 {
	return operators.LT(op.a, op.b)
}

// Backward returns zero gradients.
func (op *LTOp) Backward(float64) []float64 {
	return []float64{0, 0}
}

// EQOp represents an equality comparison: output = 1 if a == b, else 0.
type EQOp struct {
	a, b float64
}

// NewEQOp creates a new EQOp.
func NewEQOp(a, b float64) *EQOp {
	return &EQOp{a: a, b: b}
}

// Kind returns KindEQ.
func (op *EQOp) Kind() Kind { return KindEQ }

// Inputs returns [a, b].
func (op *EQOp) Inputs() []float64 { return []float64{op.a, op.b} }

// Value returns 1.0 if a == b, else 0.0.
func (op *EQOp) Value() float64 {
	return operators.EQ(op.a, op.b)
}

// Backward returns zero gradients.
func (op *EQOp) Backward(float64) []float64 {
	return []float64{0, 0}
}
