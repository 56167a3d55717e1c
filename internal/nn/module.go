// Package nn implements scalar neural network modules.
//
// This package provides building blocks for constructing networks:
//   - Module: named container of Parameters and child Modules
//   - Parameter: trainable Scalar with gradient tracking
//   - Linear: fully connected layer over Scalars
//   - ReLU, Sigmoid, Sequential: parameter-free activations and layer chaining
//   - Network: multi-layer perceptron for binary classification
//   - BinaryCrossEntropy: negative log-likelihood of a sigmoid output
//
// Registration is explicit: AddParameter and AddModule record entries in
// insertion order and return handles, so Parameters() is stable across runs.
package nn

import (
	"fmt"
	"math"
	"strings"

	"github.com/born-ml/scalargrad/internal/autodiff"
)

// Layer is implemented by modules that map a vector of Scalars to another.
type Layer interface {
	// Forward computes the outputs of the layer.
	//
	// Panics with *ShapeError if len(inputs) does not match the layer.
	Forward(inputs []*autodiff.Scalar) []*autodiff.Scalar

	// Parameters returns all trainable parameters, including those of
	// nested modules.
	Parameters() []*Parameter
}

// NamedParameter pairs a Parameter with its dotted path in a module tree.
type NamedParameter struct {
	Name string // e.g. "layer1.weight_0_1"
	*Parameter
}

type namedModule struct {
	name   string
	module *Module
}

// Module is a named container of Parameters and child Modules.
//
// Modules compose into a tree:
//
//	net := nn.NewModule("net")
//	hidden := net.AddModule("layer1", nn.NewLinear(2, 8, rng).Module)
//	bias := hidden.AddParameter("extra", autodiff.NewScalar(0))
type Module struct {
	name     string
	params   []*Parameter
	byName   map[string]*Parameter
	children []namedModule
}

// NewModule creates an empty module.
func NewModule(name string) *Module {
	return &Module{
		name:   name,
		byName: make(map[string]*Parameter),
	}
}

// Name returns the module name.
func (m *Module) Name() string {
	return m.name
}

// AddParameter registers value under name and returns its Parameter.
//
// Panics if name is already used in this module.
func (m *Module) AddParameter(name string, value *autodiff.Scalar) *Parameter {
	if _, exists := m.byName[name]; exists {
		panic(fmt.Sprintf("%s.AddParameter: duplicate parameter %q", m.name, name))
	}

	p := NewParameter(name, value)
	m.params = append(m.params, p)
	m.byName[name] = p
	return p
}

// AddModule registers child under name and returns it.
//
// Panics if name is already used or child is m itself.
func (m *Module) AddModule(name string, child *Module) *Module {
	if child == m {
		panic(fmt.Sprintf("%s.AddModule: module cannot contain itself", m.name))
	}
	for _, c := range m.children {
		if c.name == name {
			panic(fmt.Sprintf("%s.AddModule: duplicate module %q", m.name, name))
		}
	}

	m.children = append(m.children, namedModule{name: name, module: child})
	return child
}

// Parameter returns the direct parameter registered under name, or nil.
func (m *Module) Parameter(name string) *Parameter {
	return m.byName[name]
}

// Child returns the direct child registered under name, or nil.
func (m *Module) Child(name string) *Module {
	for _, c := range m.children {
		if c.name == name {
			return c.module
		}
	}
	return nil
}

// Children returns the direct child modules in registration order.
func (m *Module) Children() []*Module {
	out := make([]*Module, len(m.children))
	for i, c := range m.children {
		out[i] = c.module
	}
	return out
}

// Modules returns every descendant module, depth-first, each once.
func (m *Module) Modules() []*Module {
	seen := make(map[*Module]bool)
	var out []*Module
	var walk func(*Module)
	walk = func(mod *Module) {
		for _, c := range mod.children {
			if seen[c.module] {
				continue
			}
			seen[c.module] = true
			out = append(out, c.module)
			walk(c.module)
		}
	}
	walk(m)
	return out
}

// Parameters returns every Parameter in the subtree exactly once: this
// module's own first, then each child's, depth-first in registration order.
func (m *Module) Parameters() []*Parameter {
	named := m.NamedParameters()
	out := make([]*Parameter, len(named))
	for i, np := range named {
		out[i] = np.Parameter
	}
	return out
}

// NamedParameters is Parameters with dotted path names.
//
// A module reachable through several paths contributes its parameters once,
// under the first path encountered.
func (m *Module) NamedParameters() []NamedParameter {
	seenParams := make(map[*Parameter]bool)
	seenModules := map[*Module]bool{m: true}
	var out []NamedParameter

	var walk func(mod *Module, prefix []string)
	walk = func(mod *Module, prefix []string) {
		for _, p := range mod.params {
			if seenParams[p] {
				continue
			}
			seenParams[p] = true
			out = append(out, NamedParameter{
				Name:      strings.Join(append(prefix, p.name), "."),
				Parameter: p,
			})
		}
		for _, c := range mod.children {
			if seenModules[c.module] {
				continue
			}
			seenModules[c.module] = true
			walk(c.module, append(prefix[:len(prefix):len(prefix)], c.name))
		}
	}
	walk(m, nil)
	return out
}

// StateDict returns the current value of every parameter keyed by dotted name.
func (m *Module) StateDict() map[string]float64 {
	state := make(map[string]float64)
	for _, np := range m.NamedParameters() {
		state[np.Name] = np.Value().Value()
	}
	return state
}

// LoadStateDict sets parameter values from state.
//
// Every parameter must be present and unknown keys are rejected. Nothing is
// updated unless the whole dict is valid.
func (m *Module) LoadStateDict(state map[string]float64) error {
	named := m.NamedParameters()
	known := make(map[string]bool, len(named))
	for _, np := range named {
		known[np.Name] = true
		v, ok := state[np.Name]
		if !ok {
			return fmt.Errorf("%s: missing %s in state dict", m.name, np.Name)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%s: %s = %v is not finite: %w", m.name, np.Name, v, autodiff.ErrArithmetic)
		}
	}
	for key := range state {
		if !known[key] {
			return fmt.Errorf("%s: unexpected key %s in state dict", m.name, key)
		}
	}

	for _, np := range named {
		np.Update(state[np.Name])
	}
	return nil
}
