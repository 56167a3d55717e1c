package autodiff

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/diff/fd"
)

// GradCheckConfig controls CheckGradient.
type GradCheckConfig struct {
	Step      float64 // Finite-difference step (default: 1e-6)
	Tolerance float64 // Allowed |analytic - numeric| per input (default: 1e-4)
}

// ScalarFunc builds a computation from leaf Scalars and returns its output.
type ScalarFunc func(xs []*Scalar) *Scalar

// AnalyticGradient evaluates f at point on fresh leaves, runs Backward, and
// returns the gradient of each leaf.
func AnalyticGradient(f ScalarFunc, point []float64) []float64 {
	leaves := make([]*Scalar, len(point))
	for i, v := range point {
		leaves[i] = NewScalar(v, WithName(fmt.Sprintf("x_%d", i)))
	}

	Backward(f(leaves))

	grads := make([]float64, len(leaves))
	for i, leaf := range leaves {
		grads[i] = leaf.Grad()
	}
	return grads
}

// NumericalGradient estimates the gradient of f at point with central
// differences.
func NumericalGradient(f ScalarFunc, point []float64, step float64) []float64 {
	eval := func(x []float64) float64 {
		leaves := make([]*Scalar, len(x))
		for i, v := range x {
			leaves[i] = NewScalar(v)
		}
		return f(leaves).Value()
	}

	return fd.Gradient(nil, eval, point, &fd.Settings{
		Formula: fd.Central,
		Step:    step,
	})
}

// CheckGradient compares the analytic gradient of f at point with a
// finite-difference estimate. It returns an error naming the first input whose
// gradients disagree by more than the configured tolerance.
func CheckGradient(f ScalarFunc, point []float64, cfg GradCheckConfig) error {
	if cfg.Step == 0 {
		cfg.Step = 1e-6
	}
	if cfg.Tolerance == 0 {
		cfg.Tolerance = 1e-4
	}

	analytic := AnalyticGradient(f, point)
	numeric := NumericalGradient(f, point, cfg.Step)

	for i := range analytic {
		if diff := math.Abs(analytic[i] - numeric[i]); diff > cfg.Tolerance {
			return fmt.Errorf("gradient check: input %d at %v: analytic %g, numeric %g (diff %g)",
				i, point, analytic[i], numeric[i], diff)
		}
	}
	return nil
}
