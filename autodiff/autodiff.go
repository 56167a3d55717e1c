// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff provides scalar reverse-mode automatic differentiation.
//
// Every arithmetic method on a Scalar returns a new Scalar that remembers the
// operation and operands that produced it. Backward walks that history in
// reverse topological order and accumulates d(output)/d(leaf) into each leaf.
//
// Example:
//
//	import "github.com/born-ml/scalargrad/autodiff"
//
//	func main() {
//	    x := autodiff.NewScalar(2.0, autodiff.WithName("x"))
//	    y := autodiff.NewScalar(3.0, autodiff.WithName("y"))
//
//	    z := x.Mul(y).Add(x.Log()) // z = x*y + log(x)
//	    z.Backward()
//
//	    fmt.Println(x.Grad()) // y + 1/x = 3.5
//	    fmt.Println(y.Grad()) // x = 2
//	}
package autodiff

import (
	"github.com/born-ml/scalargrad/internal/autodiff"
)

// Scalar is a float64 value that records its computation history.
type Scalar = autodiff.Scalar

// History records the operation and operands that produced a Scalar.
type History = autodiff.History

// Option configures a Scalar at construction.
type Option = autodiff.Option

// ArithmeticError reports an operation applied outside its domain.
type ArithmeticError = autodiff.ArithmeticError

// ErrArithmetic is matched by every *ArithmeticError via errors.Is.
var ErrArithmetic = autodiff.ErrArithmetic

// NewScalar creates a leaf Scalar holding value.
func NewScalar(value float64, opts ...Option) *Scalar {
	return autodiff.NewScalar(value, opts...)
}

// WithName attaches a debugging name to a Scalar.
func WithName(name string) Option {
	return autodiff.WithName(name)
}

// Sum adds xs left to right.
func Sum(xs ...*Scalar) *Scalar {
	return autodiff.Sum(xs...)
}

// Backward accumulates gradients of root into every Scalar it depends on.
func Backward(root *Scalar) {
	autodiff.Backward(root)
}

// BackwardWithSeed is Backward with an explicit output gradient.
//
// Example:
//
//	// Accumulate the gradient of the mean loss over n examples.
//	autodiff.BackwardWithSeed(loss, 1.0/float64(n))
func BackwardWithSeed(root *Scalar, seed float64) {
	autodiff.BackwardWithSeed(root, seed)
}

// TopologicalSort returns every Scalar reachable from root, consumers first.
func TopologicalSort(root *Scalar) []*Scalar {
	return autodiff.TopologicalSort(root)
}

// GradCheckConfig controls CheckGradient.
type GradCheckConfig = autodiff.GradCheckConfig

// ScalarFunc builds a computation from leaf Scalars.
type ScalarFunc = autodiff.ScalarFunc

// CheckGradient compares Backward against central finite differences at point.
func CheckGradient(f ScalarFunc, point []float64, cfg GradCheckConfig) error {
	return autodiff.CheckGradient(f, point, cfg)
}
