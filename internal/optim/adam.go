package optim

import (
	"math"

	"github.com/born-ml/scalargrad/internal/nn"
)

// Adam implements the Adam (Adaptive Moment Estimation) optimizer.
//
// Adam combines ideas from RMSprop and momentum:
//   - Maintains exponential moving averages of gradients (first moment)
//   - Maintains exponential moving averages of squared gradients (second moment)
//   - Applies bias correction to compensate for initialization at zero
//
// Update rule:
//
//	m_t = beta1 * m_{t-1} + (1-beta1) * gradient       // First moment
//	v_t = beta2 * v_{t-1} + (1-beta2) * gradient²      // Second moment
//	m_hat = m_t / (1 - beta1^t)                        // Bias correction
//	v_hat = v_t / (1 - beta2^t)                        // Bias correction
//	param = param - lr * m_hat / (sqrt(v_hat) + eps)  // Parameter update
//
// Reference: "Adam: A Method for Stochastic Optimization" (Kingma & Ba, 2014)
//
// Example:
//
//	optimizer := optim.NewAdam(model.Parameters(), optim.AdamConfig{LR: 0.05})
//
//	for epoch := range epochs {
//	    optimizer.ZeroGrad()
//	    loss.Backward()
//	    optimizer.Step()
//	}
type Adam struct {
	params []*nn.Parameter
	lr     float64
	beta1  float64
	beta2  float64
	eps    float64
	t      int                       // Timestep for bias correction
	m      map[*nn.Parameter]float64 // First moment estimates
	v      map[*nn.Parameter]float64 // Second moment estimates
}

// AdamConfig holds configuration for Adam optimizer.
type AdamConfig struct {
	LR    float64    // Learning rate (default: 0.001)
	Betas [2]float64 // Coefficients for computing running averages (default: [0.9, 0.999])
	Eps   float64    // Term for numerical stability (default: 1e-8)
}

// NewAdam creates a new Adam optimizer.
//
// Default hyperparameters:
//   - LR: 0.001
//   - Beta1: 0.9
//   - Beta2: 0.999
//   - Eps: 1e-8
//
// Repeated entries in params are updated once.
func NewAdam(params []*nn.Parameter, config AdamConfig) *Adam {
	if config.LR == 0 {
		config.LR = 0.001
	}
	if config.Betas[0] == 0 {
		config.Betas[0] = 0.9
	}
	if config.Betas[1] == 0 {
		config.Betas[1] = 0.999
	}
	if config.Eps == 0 {
		config.Eps = 1e-8
	}

	return &Adam{
		params: dedupe(params),
		lr:     config.LR,
		beta1:  config.Betas[0],
		beta2:  config.Betas[1],
		eps:    config.Eps,
		m:      make(map[*nn.Parameter]float64),
		v:      make(map[*nn.Parameter]float64),
	}
}

// Step performs a single optimization step using Adam algorithm.
//
// Like SGD.Step, it panics with an error wrapping autodiff.ErrArithmetic
// before changing any state if an update would be NaN or ±Inf.
func (a *Adam) Step() {
	t := a.t + 1
	biasCorrection1 := 1.0 - math.Pow(a.beta1, float64(t))
	biasCorrection2 := 1.0 - math.Pow(a.beta2, float64(t))

	values := make([]float64, len(a.params))
	ms := make([]float64, len(a.params))
	vs := make([]float64, len(a.params))

	for i, param := range a.params {
		g := param.Grad()

		ms[i] = a.beta1*a.m[param] + (1.0-a.beta1)*g
		vs[i] = a.beta2*a.v[param] + (1.0-a.beta2)*g*g

		mHat := ms[i] / biasCorrection1
		vHat := vs[i] / biasCorrection2

		values[i] = param.Value().Value() - a.lr*mHat/(math.Sqrt(vHat)+a.eps)
		if !isFinite(values[i]) || !isFinite(vs[i]) {
			panic(nonFinite("Adam", param, values[i]))
		}
	}

	a.t = t
	for i, param := range a.params {
		a.m[param] = ms[i]
		a.v[param] = vs[i]
		param.Update(values[i])
	}
}

// ZeroGrad clears gradients for all parameters.
func (a *Adam) ZeroGrad() {
	for _, param := range a.params {
		param.ZeroGrad()
	}
}

// GetLR returns the current learning rate.
func (a *Adam) GetLR() float64 {
	return a.lr
}

// Parameters returns the parameters being optimized.
func (a *Adam) Parameters() []*nn.Parameter {
	return a.params
}

// Moments returns the first and second moment estimates of param.
func (a *Adam) Moments(param *nn.Parameter) (m, v float64) {
	return a.m[param], a.v[param]
}

// Timestep returns the number of steps taken.
func (a *Adam) Timestep() int {
	return a.t
}
