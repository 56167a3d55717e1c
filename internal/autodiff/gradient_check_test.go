package autodiff_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/born-ml/scalargrad/internal/autodiff"
)

var checkCfg = autodiff.GradCheckConfig{Step: 1e-6, Tolerance: 1e-4}

// nonZero draws a float in [-hi, -lo] ∪ [lo, hi].
func nonZero(lo, hi float64) *rapid.Generator[float64] {
	return rapid.Custom(func(t *rapid.T) float64 {
		v := rapid.Float64Range(lo, hi).Draw(t, "magnitude")
		if rapid.Bool().Draw(t, "negative") {
			return -v
		}
		return v
	})
}

// TestGradientCheck_Binary tests every binary operation against finite differences.
func TestGradientCheck_Binary(t *testing.T) {
	binary := map[string]autodiff.ScalarFunc{
		"add": func(x []*autodiff.Scalar) *autodiff.Scalar { return x[0].Add(x[1]) },
		"sub": func(x []*autodiff.Scalar) *autodiff.Scalar { return x[0].Sub(x[1]) },
		"mul": func(x []*autodiff.Scalar) *autodiff.Scalar { return x[0].Mul(x[1]) },
		"div": func(x []*autodiff.Scalar) *autodiff.Scalar { return x[0].Div(x[1]) },
	}

	for name, f := range binary {
		t.Run(name, func(t *testing.T) {
			rapid.Check(t, func(rt *rapid.T) {
				a := rapid.Float64Range(-10, 10).Draw(rt, "a")
				b := nonZero(0.5, 10).Draw(rt, "b")
				require.NoError(rt, autodiff.CheckGradient(f, []float64{a, b}, checkCfg))
			})
		})
	}
}

// TestGradientCheck_Unary tests every unary operation against finite differences.
func TestGradientCheck_Unary(t *testing.T) {
	tests := []struct {
		name string
		f    autodiff.ScalarFunc
		gen  *rapid.Generator[float64]
	}{
		{"neg", func(x []*autodiff.Scalar) *autodiff.Scalar { return x[0].Neg() }, rapid.Float64Range(-10, 10)},
		{"inv", func(x []*autodiff.Scalar) *autodiff.Scalar { return x[0].Inv() }, nonZero(0.5, 10)},
		{"log", func(x []*autodiff.Scalar) *autodiff.Scalar { return x[0].Log() }, rapid.Float64Range(0.1, 100)},
		{"exp", func(x []*autodiff.Scalar) *autodiff.Scalar { return x[0].Exp() }, rapid.Float64Range(-5, 5)},
		{"sigmoid", func(x []*autodiff.Scalar) *autodiff.Scalar { return x[0].Sigmoid() }, rapid.Float64Range(-10, 10)},
		{"tanh", func(x []*autodiff.Scalar) *autodiff.Scalar { return x[0].Tanh() }, rapid.Float64Range(-5, 5)},
		{"relu", func(x []*autodiff.Scalar) *autodiff.Scalar { return x[0].ReLU() }, nonZero(0.01, 10)},
		{"square", func(x []*autodiff.Scalar) *autodiff.Scalar { return x[0].Pow(2) }, rapid.Float64Range(-5, 5)},
		{"cube", func(x []*autodiff.Scalar) *autodiff.Scalar { return x[0].Pow(3) }, rapid.Float64Range(-3, 3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rapid.Check(t, func(rt *rapid.T) {
				x := tt.gen.Draw(rt, "x")
				require.NoError(rt, autodiff.CheckGradient(tt.f, []float64{x}, checkCfg))
			})
		})
	}
}

// TestGradientCheck_Composite tests a small neuron: sigmoid(w1*x1 + w2*x2 + b).
func TestGradientCheck_Composite(t *testing.T) {
	neuron := func(x []*autodiff.Scalar) *autodiff.Scalar {
		z := x[0].Mul(x[1]).Add(x[2].Mul(x[3])).Add(x[4])
		return z.Sigmoid().Log().Neg()
	}

	require.NoError(t, autodiff.CheckGradient(neuron, []float64{0.3, -1.2, 0.8, 0.5, 0.1}, autodiff.GradCheckConfig{}))
}

// TestCheckGradient_DetectsMismatch tests that a wrong derivative is reported.
func TestCheckGradient_DetectsMismatch(t *testing.T) {
	// Comparisons report zero gradient, while the central difference across
	// the step at 0 is large.
	broken := func(x []*autodiff.Scalar) *autodiff.Scalar {
		return x[0].GT(autodiff.NewScalar(0)).MulConst(1e-3)
	}

	err := autodiff.CheckGradient(broken, []float64{0}, autodiff.GradCheckConfig{Step: 1e-6, Tolerance: 1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "input 0")
}

// TestNumericalGradient_Square tests the finite-difference estimate of x² at 3.
func TestNumericalGradient_Square(t *testing.T) {
	f := func(x []*autodiff.Scalar) *autodiff.Scalar { return x[0].Mul(x[0]) }

	numeric := autodiff.NumericalGradient(f, []float64{3}, 1e-6)
	analytic := autodiff.AnalyticGradient(f, []float64{3})

	assert.InDelta(t, 6.0, numeric[0], 1e-4)
	assert.InDelta(t, 6.0, analytic[0], 1e-12)
	assert.False(t, math.IsNaN(numeric[0]))
}
