package ops

import "github.com/born-ml/scalargrad/internal/operators"

// SigmoidOp represents the sigmoid activation: σ(a) = 1 / (1 + exp(-a)).
type SigmoidOp struct {
	a      float64
	output float64
}

// NewSigmoidOp creates a new sigmoid operation.
func NewSigmoidOp(a float64) *SigmoidOp {
	return &SigmoidOp{a: a, output: operators.Sigmoid(a)}
}

// Kind returns KindSigmoid.
func (op *SigmoidOp) Kind() Kind { return KindSigmoid }

// Inputs returns [a].
func (op *SigmoidOp) Inputs() []float64 { return []float64{op.a} }

// Value returns σ(a).
func (op *SigmoidOp) Value() float64 {
	return op.output
}

// Backward computes the gradient for sigmoid.
//
// Since σ(a) is already known: grad_a = outputGrad * σ(a) * (1 - σ(a)).
func (op *SigmoidOp) Backward(outputGrad float64) []float64 {
	s := op.output
	return []float64{outputGrad * s * (1.0 - s)}
}
