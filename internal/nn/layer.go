package nn

import (
	"fmt"

	"github.com/born-ml/micrograd/internal/autodiff"
)

// Layer is a fully connected layer: outFeatures neurons applied to the same
// inFeatures inputs.
//
// Example:
//
//	layer := nn.NewLayer("hidden", 2, 3, nn.Tanh, initializer)
//	out := layer.Forward(inputs) // len(out) == 3
type Layer struct {
	name       string
	inFeatures int
	neurons    []*Neuron
}

// NewLayer creates a layer of outFeatures neurons with inFeatures inputs each.
//
// Neurons are named name+".neuron0", name+".neuron1", ...
func NewLayer(name string, inFeatures, outFeatures int, activation Activation, initializer *Initializer) *Layer {
	neurons := make([]*Neuron, outFeatures)
	for i := range neurons {
		neurons[i] = NewNeuron(fmt.Sprintf("%s.neuron%d", name, i), inFeatures, activation, initializer)
	}

	return &Layer{
		name:       name,
		inFeatures: inFeatures,
		neurons:    neurons,
	}
}

// Forward applies every neuron to inputs and returns one output per neuron,
// in neuron order.
//
// Panics with *ArityError if len(inputs) != InFeatures().
func (l *Layer) Forward(inputs []*autodiff.Scalar) []*autodiff.Scalar {
	checkArity(l.name, l.inFeatures, len(inputs))

	outputs := make([]*autodiff.Scalar, len(l.neurons))
	for i, n := range l.neurons {
		outputs[i] = n.Forward(inputs)
	}
	return outputs
}

// Parameters returns the parameters of all neurons in order.
func (l *Layer) Parameters() []*Parameter {
	var params []*Parameter
	for _, n := range l.neurons {
		params = append(params, n.Parameters()...)
	}
	return params
}

// Neurons returns the neurons of this layer.
func (l *Layer) Neurons() []*Neuron {
	return l.neurons
}

// Name returns the layer name.
func (l *Layer) Name() string {
	return l.name
}

// InFeatures returns the input arity.
func (l *Layer) InFeatures() int {
	return l.inFeatures
}

// OutFeatures returns the number of neurons.
func (l *Layer) OutFeatures() int {
	return len(l.neurons)
}
