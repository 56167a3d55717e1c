// Package autodiff implements scalar reverse-mode automatic differentiation.
//
// Architecture:
//   - Scalar: a float64 plus gradient accumulator and optional history
//   - History: the operation (ops.Operation, tagged by ops.Kind) and the operand
//     Scalars that produced a value
//   - Backward: topological traversal of the recorded graph applying the chain rule
//
// Every arithmetic method returns a new Scalar; existing Scalars are never
// mutated by the forward pass. Only Backward touches gradients.
//
// Usage:
//
//	x := autodiff.NewScalar(2.0, autodiff.WithName("x"))
//	y := x.Mul(x).Add(x) // y = x² + x
//
//	y.Backward()
//	fmt.Println(x.Grad()) // dy/dx = 2x + 1 = 5.0
package autodiff

import (
	"fmt"
	"math"
	"sync/atomic"

	"github.com/born-ml/scalargrad/internal/autodiff/ops"
)

// nextID hands out Scalar identifiers. IDs only grow, so every operand in a
// History has a smaller ID than the Scalar it produced.
var nextID atomic.Uint64

// History records how a non-leaf Scalar was computed.
type History struct {
	Op     ops.Operation // Operation applied, carries local derivative rule
	Inputs []*Scalar     // Operands in the order the operation consumed them
}

// Scalar is a single float64 value that tracks the computation producing it.
//
// A Scalar with nil history is a leaf: an input, a constant, or a parameter.
// Leaves only receive gradient through the chain rule from Scalars that
// consumed them.
type Scalar struct {
	id      uint64
	value   float64
	grad    float64
	name    string
	history *History
}

// Option configures a Scalar at construction.
type Option func(*Scalar)

// WithName attaches a debugging name to a Scalar.
func WithName(name string) Option {
	return func(s *Scalar) {
		s.name = name
	}
}

// NewScalar creates a leaf Scalar holding value.
func NewScalar(value float64, opts ...Option) *Scalar {
	s := &Scalar{
		id:    nextID.Add(1),
		value: value,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ID returns the unique, creation-ordered identifier.
func (s *Scalar) ID() uint64 {
	return s.id
}

// Value returns the numeric value.
func (s *Scalar) Value() float64 {
	return s.value
}

// Grad returns the accumulated gradient.
func (s *Scalar) Grad() float64 {
	return s.grad
}

// Name returns the debugging name, or "" if none was given.
func (s *Scalar) Name() string {
	return s.name
}

// History returns the recorded history, or nil for a leaf.
func (s *Scalar) History() *History {
	return s.history
}

// IsLeaf reports whether s was created directly rather than by an operation.
func (s *Scalar) IsLeaf() bool {
	return s.history == nil
}

// ZeroGrad resets the accumulated gradient to 0.
func (s *Scalar) ZeroGrad() {
	s.grad = 0
}

// AccumulateGrad adds d to the accumulated gradient.
func (s *Scalar) AccumulateGrad(d float64) {
	s.grad += d
}

// String implements fmt.Stringer.
func (s *Scalar) String() string {
	if s.name != "" {
		return fmt.Sprintf("Scalar(%s=%g)", s.name, s.value)
	}
	return fmt.Sprintf("Scalar(%g)", s.value)
}

// Add returns s + o.
func (s *Scalar) Add(o *Scalar) *Scalar {
	return apply(ops.NewAddOp(s.value, o.value), s, o)
}

// Sub returns s - o, recorded as s + (-o).
func (s *Scalar) Sub(o *Scalar) *Scalar {
	return s.Add(o.Neg())
}

// Mul returns s * o.
func (s *Scalar) Mul(o *Scalar) *Scalar {
	return apply(ops.NewMulOp(s.value, o.value), s, o)
}

// Div returns s / o, recorded as s * (1/o).
//
// Panics with *ArithmeticError if o is zero.
func (s *Scalar) Div(o *Scalar) *Scalar {
	return s.Mul(o.Inv())
}

// AddConst returns s + c, with c as a fresh constant leaf.
func (s *Scalar) AddConst(c float64) *Scalar {
	return s.Add(NewScalar(c))
}

// MulConst returns s * c, with c as a fresh constant leaf.
func (s *Scalar) MulConst(c float64) *Scalar {
	return s.Mul(NewScalar(c))
}

// DivConst returns s / c, with c as a fresh constant leaf.
func (s *Scalar) DivConst(c float64) *Scalar {
	return s.Div(NewScalar(c))
}

// Neg returns -s.
func (s *Scalar) Neg() *Scalar {
	return apply(ops.NewNegOp(s.value), s)
}

// Inv returns 1/s.
//
// Panics with *ArithmeticError if s is zero.
func (s *Scalar) Inv() *Scalar {
	return apply(ops.NewInvOp(s.value), s)
}

// Pow returns s raised to the constant exponent n.
//
// Panics with *ArithmeticError if the result is not a real number.
func (s *Scalar) Pow(n float64) *Scalar {
	return apply(ops.NewPowOp(s.value, n), s)
}

// Log returns the natural logarithm of s.
//
// Panics with *ArithmeticError if s <= 0.
func (s *Scalar) Log() *Scalar {
	return apply(ops.NewLogOp(s.value), s)
}

// Exp returns e^s.
//
// Panics with *ArithmeticError if the result overflows.
func (s *Scalar) Exp() *Scalar {
	return apply(ops.NewExpOp(s.value), s)
}

// Sigmoid returns 1 / (1 + e^-s).
func (s *Scalar) Sigmoid() *Scalar {
	return apply(ops.NewSigmoidOp(s.value), s)
}

// Tanh returns the hyperbolic tangent of s.
func (s *Scalar) Tanh() *Scalar {
	return apply(ops.NewTanhOp(s.value), s)
}

// ReLU returns max(0, s).
func (s *Scalar) ReLU() *Scalar {
	return apply(ops.NewReLUOp(s.value), s)
}

// LT returns 1 if s < o, else 0. No gradient flows through comparisons.
func (s *Scalar) LT(o *Scalar) *Scalar {
	return apply(ops.NewLTOp(s.value, o.value), s, o)
}

// GT returns 1 if s > o, else 0, recorded as o < s.
func (s *Scalar) GT(o *Scalar) *Scalar {
	return o.LT(s)
}

// EQ returns 1 if s == o, else 0.
func (s *Scalar) EQ(o *Scalar) *Scalar {
	return apply(ops.NewEQOp(s.value, o.value), s, o)
}

// Sum adds xs left to right. It returns a constant 0 leaf for no arguments.
func Sum(xs ...*Scalar) *Scalar {
	if len(xs) == 0 {
		return NewScalar(0)
	}
	acc := xs[0]
	for _, x := range xs[1:] {
		acc = acc.Add(x)
	}
	return acc
}

// apply evaluates op and records it as the history of a new Scalar.
//
// A non-finite result is a domain violation and panics with *ArithmeticError
// instead of leaking NaN or Inf into the graph.
func apply(op ops.Operation, inputs ...*Scalar) *Scalar {
	value := op.Value()
	if !isFinite(value) {
		panic(&ArithmeticError{
			Op:     op.Kind(),
			Inputs: op.Inputs(),
			Result: value,
		})
	}

	return &Scalar{
		id:    nextID.Add(1),
		value: value,
		history: &History{
			Op:     op,
			Inputs: inputs,
		},
	}
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
