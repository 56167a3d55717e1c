package optim_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/born-ml/scalargrad/internal/autodiff"
	"github.com/born-ml/scalargrad/internal/nn"
	"github.com/born-ml/scalargrad/internal/optim"
)

func newParam(name string, v float64) *nn.Parameter {
	return nn.NewParameter(name, autodiff.NewScalar(v))
}

// TestSGD_SimpleUpdate tests SGD without momentum.
func TestSGD_SimpleUpdate(t *testing.T) {
	param := newParam("x", 2.0)
	optimizer := optim.NewSGD([]*nn.Parameter{param}, optim.SGDConfig{LR: 0.1})

	param.Value().AccumulateGrad(1.0)
	old := param.Value()
	optimizer.Step()

	// x_new = x_old - lr * grad = 2.0 - 0.1 * 1.0 = 1.9
	assert.InDelta(t, 1.9, param.Value().Value(), 1e-12)
	assert.NotSame(t, old, param.Value())
	assert.True(t, param.Value().IsLeaf())
	assert.InDelta(t, 0.0, param.Grad(), 0)
	assert.Equal(t, "x", param.Value().Name())
}

// TestSGD_FromBackward tests a step driven by a real backward pass.
func TestSGD_FromBackward(t *testing.T) {
	w := newParam("w", 3.0)
	optimizer := optim.NewSGD([]*nn.Parameter{w}, optim.SGDConfig{LR: 0.25})

	// L = w², dL/dw = 6
	optimizer.ZeroGrad()
	w.Value().Mul(w.Value()).Backward()
	optimizer.Step()

	assert.InDelta(t, 3.0-0.25*6.0, w.Value().Value(), 1e-12)
}

// TestSGD_WithMomentum tests SGD with momentum.
func TestSGD_WithMomentum(t *testing.T) {
	param := newParam("x", 1.0)
	optimizer := optim.NewSGD([]*nn.Parameter{param}, optim.SGDConfig{LR: 0.1, Momentum: 0.9})

	param.Value().AccumulateGrad(1.0)
	optimizer.Step()

	// v_1 = 0.9 * 0 + 1.0 = 1.0, x_1 = 1.0 - 0.1 * 1.0 = 0.9
	assert.InDelta(t, 0.9, param.Value().Value(), 1e-12)
	assert.InDelta(t, 1.0, optimizer.Velocity(param), 1e-12)

	param.Value().AccumulateGrad(1.0)
	optimizer.Step()

	// v_2 = 0.9 * 1.0 + 1.0 = 1.9, x_2 = 0.9 - 0.1 * 1.9 = 0.71
	assert.InDelta(t, 0.71, param.Value().Value(), 1e-12)
}

// TestSGD_ZeroGrad tests ZeroGrad and its idempotence.
func TestSGD_ZeroGrad(t *testing.T) {
	params := []*nn.Parameter{newParam("a", 1), newParam("b", 2)}
	for i, p := range params {
		p.Value().AccumulateGrad(float64(i) + 5)
	}
	optimizer := optim.NewSGD(params, optim.SGDConfig{LR: 0.1})

	optimizer.ZeroGrad()
	once := []float64{params[0].Grad(), params[1].Grad()}
	optimizer.ZeroGrad()
	twice := []float64{params[0].Grad(), params[1].Grad()}

	assert.Equal(t, []float64{0, 0}, once)
	assert.Equal(t, once, twice)
}

// TestSGD_NoCompoundingWithoutZeroGrad tests that gradients from one step
// never leak into the next.
func TestSGD_NoCompoundingWithoutZeroGrad(t *testing.T) {
	w := newParam("w", 1.0)
	optimizer := optim.NewSGD([]*nn.Parameter{w}, optim.SGDConfig{LR: 0.1})

	w.Value().MulConst(2).Backward()
	optimizer.Step()
	w.Value().MulConst(2).Backward()

	assert.InDelta(t, 2.0, w.Grad(), 1e-12)
}

// TestSGD_Defaults tests the default learning rate and deduplication.
func TestSGD_Defaults(t *testing.T) {
	p := newParam("x", 1)
	optimizer := optim.NewSGD([]*nn.Parameter{p, p, nil}, optim.SGDConfig{})

	assert.InDelta(t, 0.01, optimizer.GetLR(), 0)
	require.Len(t, optimizer.Parameters(), 1)

	p.Value().AccumulateGrad(1)
	optimizer.Step()
	assert.InDelta(t, 0.99, p.Value().Value(), 1e-12)

	var _ optim.Optimizer = optimizer
}

// TestSGD_Deterministic tests that identical state yields identical updates.
func TestSGD_Deterministic(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(1, 8).Draw(rt, "n")
		lr := rapid.Float64Range(1e-4, 1).Draw(rt, "lr")
		values := rapid.SliceOfN(rapid.Float64Range(-10, 10), n, n).Draw(rt, "values")
		grads := rapid.SliceOfN(rapid.Float64Range(-10, 10), n, n).Draw(rt, "grads")

		run := func() []float64 {
			params := make([]*nn.Parameter, n)
			for i := range params {
				params[i] = newParam("p", values[i])
				params[i].Value().AccumulateGrad(grads[i])
			}
			optim.NewSGD(params, optim.SGDConfig{LR: lr}).Step()

			out := make([]float64, n)
			for i, p := range params {
				out[i] = p.Value().Value()
			}
			return out
		}

		first, second := run(), run()
		assert.Equal(rt, first, second)
		for i := range first {
			assert.InDelta(rt, values[i]-lr*grads[i], first[i], 1e-12)
		}
	})
}

func recoverError(fn func()) (err error) {
	defer func() {
		err, _ = recover().(error)
	}()
	fn()
	return nil
}

// TestSGD_NonFiniteUpdate tests that an overflowing step panics without
// touching any parameter.
func TestSGD_NonFiniteUpdate(t *testing.T) {
	ok := newParam("ok", 1.0)
	big := newParam("big", math.MaxFloat64)
	ok.Value().AccumulateGrad(1.0)
	big.Value().AccumulateGrad(-math.MaxFloat64)

	okBefore, bigBefore := ok.Value(), big.Value()
	optimizer := optim.NewSGD([]*nn.Parameter{ok, big}, optim.SGDConfig{LR: 1, Momentum: 0.5})

	err := recoverError(optimizer.Step)
	require.ErrorIs(t, err, autodiff.ErrArithmetic)
	assert.Contains(t, err.Error(), "big")

	assert.Same(t, okBefore, ok.Value())
	assert.Same(t, bigBefore, big.Value())
	assert.InDelta(t, 0.0, optimizer.Velocity(ok), 0)
}

// TestAdam_FirstStep tests that bias correction makes the first step lr*sign(grad).
func TestAdam_FirstStep(t *testing.T) {
	pos := newParam("pos", 1.0)
	neg := newParam("neg", 1.0)
	pos.Value().AccumulateGrad(2.0)
	neg.Value().AccumulateGrad(-0.5)

	optimizer := optim.NewAdam([]*nn.Parameter{pos, neg}, optim.AdamConfig{LR: 0.1})
	optimizer.Step()

	assert.InDelta(t, 0.9, pos.Value().Value(), 1e-6)
	assert.InDelta(t, 1.1, neg.Value().Value(), 1e-6)
	assert.Equal(t, 1, optimizer.Timestep())

	m, v := optimizer.Moments(pos)
	assert.InDelta(t, 0.2, m, 1e-12)
	assert.InDelta(t, 0.004, v, 1e-12)
	assert.InDelta(t, 0.0, pos.Grad(), 0)
}

// TestAdam_Defaults tests default hyperparameters and the Optimizer interface.
func TestAdam_Defaults(t *testing.T) {
	p := newParam("x", 1)
	optimizer := optim.NewAdam([]*nn.Parameter{p, p}, optim.AdamConfig{})

	assert.InDelta(t, 0.001, optimizer.GetLR(), 0)
	require.Len(t, optimizer.Parameters(), 1)

	var _ optim.Optimizer = optimizer
}

// TestAdam_Minimizes tests convergence on L = (w - 3)².
func TestAdam_Minimizes(t *testing.T) {
	w := newParam("w", 0)
	optimizer := optim.NewAdam([]*nn.Parameter{w}, optim.AdamConfig{LR: 0.1})

	for i := 0; i < 500; i++ {
		optimizer.ZeroGrad()
		w.Value().AddConst(-3).Pow(2).Backward()
		optimizer.Step()
	}

	assert.InDelta(t, 3.0, w.Value().Value(), 5e-2)
}

// TestAdam_NonFiniteUpdate tests that Adam rejects an overflowing second moment.
func TestAdam_NonFiniteUpdate(t *testing.T) {
	p := newParam("p", 1.0)
	p.Value().AccumulateGrad(math.MaxFloat64)
	before := p.Value()

	optimizer := optim.NewAdam([]*nn.Parameter{p}, optim.AdamConfig{})
	err := recoverError(optimizer.Step)

	require.ErrorIs(t, err, autodiff.ErrArithmetic)
	assert.Same(t, before, p.Value())
	assert.Equal(t, 0, optimizer.Timestep())
}
