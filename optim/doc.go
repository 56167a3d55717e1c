// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides optimizers for scalar parameters.
//
// # Overview
//
// This package contains:
//   - SGD: gradient descent with optional momentum
//   - Adam: adaptive moment estimation
//   - Optimizer interface for custom optimizers
//
// # Training Loop Pattern
//
//	optimizer := optim.NewSGD(model.Parameters(), optim.SGDConfig{LR: 0.5})
//
//	for epoch := range numEpochs {
//	    // 1. Zero gradients
//	    optimizer.ZeroGrad()
//
//	    // 2. Forward and backward for every example
//	    for i := range data.N {
//	        loss := nn.BinaryCrossEntropy(model.Forward(inputs(i)), data.Y[i])
//	        autodiff.BackwardWithSeed(loss, 1.0/float64(data.N))
//	    }
//
//	    // 3. Update parameters
//	    optimizer.Step()
//	}
//
// Step replaces each parameter with a fresh leaf, so gradients never carry
// over into the next epoch even without ZeroGrad.
package optim
