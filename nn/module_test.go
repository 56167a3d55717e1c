// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/scalargrad/autodiff"
	"github.com/born-ml/scalargrad/nn"
)

// TestLayerInterface verifies that Linear implements Layer.
func TestLayerInterface(t *testing.T) {
	var layer nn.Layer = nn.NewLinear(2, 3, nn.NewRand(1))

	out := layer.Forward([]*autodiff.Scalar{autodiff.NewScalar(1), autodiff.NewScalar(2)})
	assert.Len(t, out, 3)
	assert.Len(t, layer.Parameters(), 2*3+3)
}

// TestNetworkTraining verifies the public API end to end.
func TestNetworkTraining(t *testing.T) {
	model := nn.NewNetwork(nn.NetworkConfig{HiddenLayers: 1, HiddenSize: 4}, nn.NewRand(7))

	out := model.Forward([]*autodiff.Scalar{autodiff.NewScalar(0.3), autodiff.NewScalar(0.6)})
	loss := nn.BinaryCrossEntropy(out, 1)
	loss.Backward()

	nonZero := 0
	for _, p := range model.NamedParameters() {
		require.NotEmpty(t, p.Name)
		if p.Grad() != 0 {
			nonZero++
		}
	}
	assert.Positive(t, nonZero)
	assert.Len(t, model.StateDict(), len(model.Parameters()))
}

// TestShapeError verifies the error is reachable through the facade.
func TestShapeError(t *testing.T) {
	layer := nn.NewLinear(2, 1, nn.NewRand(1))

	defer func() {
		r := recover()
		err, ok := r.(error)
		require.True(t, ok)
		assert.True(t, errors.Is(err, nn.ErrShape))

		var shapeErr *nn.ShapeError
		require.ErrorAs(t, err, &shapeErr)
		assert.Equal(t, 2, shapeErr.Expected)
		assert.Equal(t, 1, shapeErr.Got)
	}()

	layer.Forward([]*autodiff.Scalar{autodiff.NewScalar(1)})
}
