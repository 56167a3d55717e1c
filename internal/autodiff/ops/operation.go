// Package ops defines the differentiable scalar operations recorded in a
// Scalar's history.
//
// Each operation captures the input values it was built from and provides:
//   - Value: the forward result
//   - Backward: the gradient contribution for each input given the output gradient
//
// Supported operations:
//   - AddOp: addition (d(a+b)/da = 1, d(a+b)/db = 1)
//   - MulOp: multiplication (d(a*b)/da = b, d(a*b)/db = a)
//   - NegOp: negation (d(-a)/da = -1)
//   - InvOp: reciprocal (d(1/a)/da = -1/a²)
//   - PowOp: power with constant exponent (d(a^n)/da = n*a^(n-1))
//   - LogOp: natural logarithm (d(log a)/da = 1/a)
//   - ExpOp: exponential (d(e^a)/da = e^a)
//   - SigmoidOp: logistic sigmoid (dσ/da = σ(a)(1-σ(a)))
//   - TanhOp: hyperbolic tangent (d(tanh a)/da = 1 - tanh²(a))
//   - ReLUOp: rectified linear unit (d(ReLU(a))/da = 1 if a > 0, else 0)
//   - LTOp, EQOp: comparisons (zero gradient to both inputs)
package ops

// Kind tags an Operation so a recorded graph can be inspected without type switches.
type Kind int

// Operation kinds.
const (
	KindAdd Kind = iota + 1
	KindMul
	KindNeg
	KindInv
	KindPow
	KindLog
	KindExp
	KindSigmoid
	KindReLU
	KindLT
	KindEQ
	KindTanh
)

var kindNames = map[Kind]string{
	KindAdd:     "add",
	KindMul:     "mul",
	KindNeg:     "neg",
	KindInv:     "inv",
	KindPow:     "pow",
	KindLog:     "log",
	KindExp:     "exp",
	KindSigmoid: "sigmoid",
	KindReLU:    "relu",
	KindLT:      "lt",
	KindEQ:      "eq",
	KindTanh:    "tanh",
}

// String returns the lowercase operation name.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Operation represents a differentiable operation in the computation graph.
type Operation interface {
	// Kind returns the operation tag.
	Kind() Kind

	// Inputs returns the input values the operation was applied to,
	// in operand order.
	Inputs() []float64

	// Value returns the forward result.
	Value() float64

	// Backward computes the gradient contribution for each input given the
	// gradient flowing into the output.
	//
	// Example for MulOp with inputs [a, b]:
	//   outputGrad: dL/d(a*b)
	//   returns: [dL/d(a*b) * b, dL/d(a*b) * a]
	Backward(outputGrad float64) []float64
}
