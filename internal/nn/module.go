// Package nn implements neural network modules on top of the scalar autodiff engine.
//
// This package provides building blocks for constructing multi-layer perceptrons:
//   - Module interface: Base interface for all NN components
//   - Parameter: Named trainable leaf with gradient access
//   - Neuron: Weighted sum plus bias followed by an activation
//   - Layer: Neurons sharing one input vector
//   - MLP: Layers chained so each layer's outputs feed the next
//
// Forward passes only issue autodiff operations, so any output they return
// can be differentiated with Backward.
package nn

import (
	"github.com/born-ml/micrograd/internal/autodiff"
)

// Module is the base interface for all neural network components.
//
// Every NN module must implement:
//   - Forward: Compute outputs from inputs
//   - Parameters: Return all trainable parameters
//
// Modules can be composed to build larger networks:
//
//	model, err := nn.NewMLPFromLayers(
//	    nn.NewLayer("layer0", 2, 3, nn.Tanh, initializer),
//	    nn.NewLayer("layer1", 3, 1, nn.Linear, initializer),
//	)
type Module interface {
	// Forward computes the module outputs for the given inputs.
	//
	// Panics with *ArityError if len(inputs) does not match the module's
	// input arity.
	Forward(inputs []*autodiff.Scalar) []*autodiff.Scalar

	// Parameters returns all trainable parameters of this module in a
	// stable order.
	Parameters() []*Parameter
}

// ZeroGrad resets the gradient of every parameter of m.
func ZeroGrad(m Module) {
	for _, p := range m.Parameters() {
		p.ZeroGrad()
	}
}
