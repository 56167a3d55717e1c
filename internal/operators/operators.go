// Package operators implements the float64 primitives that scalar autodiff
// operations are built from.
//
// Every function here is pure: no graph, no gradients. The autodiff ops
// package calls into these for forward values and local derivatives, and
// tests use IsClose for tolerance comparisons.
package operators

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// Tolerance is the absolute tolerance used by IsClose.
const Tolerance = 1e-2

// Mul returns x * y.
func Mul(x, y float64) float64 {
	return x * y
}

// ID returns x unchanged.
func ID(x float64) float64 {
	return x
}

// Add returns x + y.
func Add(x, y float64) float64 {
	return x + y
}

// Neg returns -x.
func Neg(x float64) float64 {
	return -x
}

// LT returns 1.0 if x < y, else 0.0.
func LT(x, y float64) float64 {
	if x < y {
		return 1.0
	}
	return 0.0
}

// EQ returns 1.0 if x == y, else 0.0.
func EQ(x, y float64) float64 {
	if x == y {
		return 1.0
	}
	return 0.0
}

// Max returns the larger of x and y.
func Max(x, y float64) float64 {
	if x > y {
		return x
	}
	return y
}

// IsClose reports whether x and y are within Tolerance of each other.
func IsClose(x, y float64) bool {
	return scalar.EqualWithinAbs(x, y, Tolerance)
}

// Sigmoid computes 1 / (1 + e^-x).
//
// For negative x it evaluates e^x / (1 + e^x) instead so that exp never
// overflows.
func Sigmoid(x float64) float64 {
	if x >= 0 {
		return 1.0 / (1.0 + math.Exp(-x))
	}
	e := math.Exp(x)
	return e / (1.0 + e)
}

// ReLU returns x if x > 0, else 0.
func ReLU(x float64) float64 {
	if x > 0 {
		return x
	}
	return 0.0
}

// Log returns the natural logarithm of x.
func Log(x float64) float64 {
	return math.Log(x)
}

// Exp returns e^x.
func Exp(x float64) float64 {
	return math.Exp(x)
}

// Inv returns 1 / x.
func Inv(x float64) float64 {
	return 1.0 / x
}

// LogBack returns d * (1/x), the derivative of log scaled by d.
func LogBack(x, d float64) float64 {
	return d / x
}

// InvBack returns d * (-1/x²), the derivative of 1/x scaled by d.
func InvBack(x, d float64) float64 {
	return -d / (x * x)
}

// ReLUBack returns d if x > 0, else 0.
//
// The kink at exactly zero is treated as non-differentiable and gets 0.
func ReLUBack(x, d float64) float64 {
	if x > 0 {
		return d
	}
	return 0.0
}

// Map returns a function applying fn to every element of a slice.
func Map(fn func(float64) float64) func([]float64) []float64 {
	return func(xs []float64) []float64 {
		out := make([]float64, len(xs))
		for i, x := range xs {
			out[i] = fn(x)
		}
		return out
	}
}

// ZipWith returns a function combining two slices element-wise with fn.
// The result has the length of the shorter input.
func ZipWith(fn func(float64, float64) float64) func([]float64, []float64) []float64 {
	return func(xs, ys []float64) []float64 {
		n := min(len(xs), len(ys))
		out := make([]float64, n)
		for i := 0; i < n; i++ {
			out[i] = fn(xs[i], ys[i])
		}
		return out
	}
}

// Reduce returns a function folding a slice with fn, starting from start.
func Reduce(fn func(float64, float64) float64, start float64) func([]float64) float64 {
	return func(xs []float64) float64 {
		acc := start
		for _, x := range xs {
			acc = fn(acc, x)
		}
		return acc
	}
}

// NegList negates every element of xs.
func NegList(xs []float64) []float64 {
	return Map(Neg)(xs)
}

// AddLists adds xs and ys element-wise.
func AddLists(xs, ys []float64) []float64 {
	return ZipWith(Add)(xs, ys)
}

// Sum returns the sum of xs (0 for an empty slice).
func Sum(xs []float64) float64 {
	return Reduce(Add, 0.0)(xs)
}

// Prod returns the product of xs (1 for an empty slice).
func Prod(xs []float64) float64 {
	return Reduce(Mul, 1.0)(xs)
}
