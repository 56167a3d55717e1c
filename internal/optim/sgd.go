package optim

import (
	"github.com/born-ml/scalargrad/internal/nn"
)

// SGD implements Stochastic Gradient Descent with optional momentum.
//
// Update rule without momentum:
//
//	param = param - lr * gradient
//
// Update rule with momentum:
//
//	velocity = momentum * velocity + gradient
//	param = param - lr * velocity
//
// Step installs each new value as a fresh leaf Scalar (see nn.Parameter.Update),
// so the graph never grows across steps and the next step always starts from a
// zero gradient, whether or not ZeroGrad is called.
//
// Example:
//
//	optimizer := optim.NewSGD(model.Parameters(), optim.SGDConfig{LR: 0.5})
//	optimizer.ZeroGrad()
//	loss.Backward()
//	optimizer.Step()
type SGD struct {
	params     []*nn.Parameter
	lr         float64
	momentum   float64
	velocities map[*nn.Parameter]float64
}

// SGDConfig holds configuration for SGD optimizer.
type SGDConfig struct {
	LR       float64 // Learning rate (default: 0.01)
	Momentum float64 // Momentum factor (default: 0.0, range: [0, 1))
}

// NewSGD creates a new SGD optimizer.
//
// Repeated entries in params are updated once.
func NewSGD(params []*nn.Parameter, config SGDConfig) *SGD {
	if config.LR == 0 {
		config.LR = 0.01
	}

	return &SGD{
		params:     dedupe(params),
		lr:         config.LR,
		momentum:   config.Momentum,
		velocities: make(map[*nn.Parameter]float64),
	}
}

// Step performs a single optimization step.
//
// If any new value or velocity would be NaN or ±Inf, Step panics with an
// error wrapping autodiff.ErrArithmetic before touching any parameter.
func (s *SGD) Step() {
	values := make([]float64, len(s.params))
	velocities := make([]float64, len(s.params))

	for i, param := range s.params {
		grad := param.Grad()

		if s.momentum != 0 {
			grad = s.momentum*s.velocities[param] + grad
			velocities[i] = grad
		}

		values[i] = param.Value().Value() - s.lr*grad
		if !isFinite(values[i]) || !isFinite(velocities[i]) {
			panic(nonFinite("SGD", param, values[i]))
		}
	}

	for i, param := range s.params {
		if s.momentum != 0 {
			s.velocities[param] = velocities[i]
		}
		param.Update(values[i])
	}
}

// ZeroGrad clears gradients for all parameters. Calling it repeatedly is the
// same as calling it once.
func (s *SGD) ZeroGrad() {
	for _, param := range s.params {
		param.ZeroGrad()
	}
}

// GetLR returns the current learning rate.
func (s *SGD) GetLR() float64 {
	return s.lr
}

// Parameters returns the parameters being optimized.
func (s *SGD) Parameters() []*nn.Parameter {
	return s.params
}

// Velocity returns the momentum buffer for param (0 before its first step).
func (s *SGD) Velocity(param *nn.Parameter) float64 {
	return s.velocities[param]
}
