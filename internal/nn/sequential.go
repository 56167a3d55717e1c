package nn

import (
	"fmt"

	"github.com/born-ml/scalargrad/internal/autodiff"
)

// Sequential chains layers so each output becomes the next input.
//
// Example:
//
//	body := nn.NewSequential(
//	    nn.NewLinear(2, 8, rng),
//	    nn.NewReLU(),
//	    nn.NewLinear(8, 1, rng),
//	)
//
//	out := body.Forward(inputs)
type Sequential struct {
	layers []Layer
}

// NewSequential creates a Sequential over layers.
func NewSequential(layers ...Layer) *Sequential {
	return &Sequential{layers: layers}
}

// Forward applies all layers in order.
//
// A ShapeError from any layer propagates unchanged.
func (s *Sequential) Forward(inputs []*autodiff.Scalar) []*autodiff.Scalar {
	out := inputs
	for _, layer := range s.layers {
		out = layer.Forward(out)
	}
	return out
}

// Parameters returns the parameters of every layer in order. A parameter
// shared by two layers is listed once.
func (s *Sequential) Parameters() []*Parameter {
	var params []*Parameter
	seen := make(map[*Parameter]bool)
	for _, layer := range s.layers {
		for _, p := range layer.Parameters() {
			if !seen[p] {
				seen[p] = true
				params = append(params, p)
			}
		}
	}
	return params
}

// Add appends a layer.
func (s *Sequential) Add(layer Layer) {
	s.layers = append(s.layers, layer)
}

// Len returns the number of layers.
func (s *Sequential) Len() int {
	return len(s.layers)
}

// Layer returns the layer at index.
//
// Panics if index is out of bounds.
func (s *Sequential) Layer(index int) Layer {
	if index < 0 || index >= len(s.layers) {
		panic(fmt.Sprintf("Sequential.Layer: index %d out of bounds [0, %d)", index, len(s.layers)))
	}
	return s.layers[index]
}
