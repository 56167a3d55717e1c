package ops

import "github.com/born-ml/scalargrad/internal/operators"

// LogOp represents the natural logarithm: output = log(a).
//
// Backward:
//
//	∂L/∂a = ∂L/∂output * (1 / a)
//
// Only defined for a > 0. The op itself does not guard the domain; log(0) is
// -Inf and log of a negative number is NaN, which the caller is expected to
// reject.
type LogOp struct {
	a float64
}

// NewLogOp creates a new LogOp.
func NewLogOp(a float64) *LogOp {
	return &LogOp{a: a}
}

// Kind returns KindLog.
func (op *LogOp) Kind() Kind { return KindLog }

// Inputs returns [a].
func (op *LogOp) Inputs() []float64 { return []float64{op.a} }

// Value returns log(a).
func (op *LogOp) Value() float64 {
	return operators.Log(op.a)
}

// Backward computes outputGrad / a.
func (op *LogOp) Backward(outputGrad float64) []float64 {
	return []float64{operators.LogBack(op.a, outputGrad)}
}
