// Package optim implements optimization algorithms for training scalar
// neural networks.
//
// This package provides:
//   - Optimizer interface: Base interface for all optimizers
//   - SGD: Stochastic Gradient Descent with optional momentum
//   - Adam: Adaptive Moment Estimation with bias correction
//
// Example usage:
//
//	optimizer := optim.NewSGD(model.Parameters(), optim.SGDConfig{LR: 0.5})
//
//	for epoch := range epochs {
//	    optimizer.ZeroGrad()
//	    for _, example := range data {
//	        loss := lossFor(model, example)
//	        loss.Backward() // accumulates into parameter gradients
//	    }
//	    optimizer.Step()
//	}
package optim

import (
	"fmt"
	"math"

	"github.com/born-ml/scalargrad/internal/autodiff"
	"github.com/born-ml/scalargrad/internal/nn"
)

// Optimizer is the base interface for all optimization algorithms.
//
// Optimizers update model parameters from the gradients accumulated on them
// by autodiff.Backward.
type Optimizer interface {
	// Step applies gradient updates to all parameters.
	Step()

	// ZeroGrad clears all parameter gradients.
	ZeroGrad()

	// GetLR returns the current learning rate.
	GetLR() float64
}

// Config is the base configuration for all optimizers.
type Config struct {
	LR float64 // Learning rate
}

// dedupe drops repeated parameters while keeping first-seen order.
func dedupe(params []*nn.Parameter) []*nn.Parameter {
	seen := make(map[*nn.Parameter]bool, len(params))
	out := make([]*nn.Parameter, 0, len(params))
	for _, p := range params {
		if p == nil || seen[p] {
			continue
		}
		seen[p] = true
		out = append(out, p)
	}
	return out
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// nonFinite reports an update that would leave param non-finite.
func nonFinite(optimizer string, param *nn.Parameter, v float64) error {
	return fmt.Errorf("%s.Step: update of %s is not finite (got %v): %w",
		optimizer, param.Name(), v, autodiff.ErrArithmetic)
}
