// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides scalar neural network building blocks.
//
// # Overview
//
// This package contains:
//   - Parameter: a named trainable Scalar
//   - Module: a named tree of parameters and child modules
//   - Linear: fully connected layer, one Scalar per weight
//   - ReLU, Sigmoid: activation layers
//   - Sequential: chains layers
//   - Network: ReLU MLP with a sigmoid output for binary classification
//   - BinaryCrossEntropy and Correct for training
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/scalargrad/autodiff"
//	    "github.com/born-ml/scalargrad/nn"
//	)
//
//	func main() {
//	    rng := nn.NewRand(42)
//	    model := nn.NewNetwork(nn.NetworkConfig{HiddenLayers: 2}, rng)
//
//	    x := []*autodiff.Scalar{autodiff.NewScalar(0.2), autodiff.NewScalar(0.7)}
//	    out := model.Forward(x)
//	    loss := nn.BinaryCrossEntropy(out, 1)
//	    loss.Backward()
//	}
//
// # Parameter Management
//
// Parameters are registered by name and visited depth-first, own parameters
// before children:
//
//	for _, p := range model.NamedParameters() {
//	    fmt.Println(p.Name, p.Value().Value(), p.Grad())
//	}
//
// StateDict and LoadStateDict snapshot and restore every value by dotted name.
package nn
