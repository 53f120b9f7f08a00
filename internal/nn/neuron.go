package nn

import (
	"fmt"

	"github.com/born-ml/micrograd/internal/autodiff"
)

// Neuron computes act(Σ w_i * x_i + b).
//
// Weights and bias are leaf parameters drawn from the initializer at
// construction, one draw per weight followed by one for the bias.
type Neuron struct {
	name       string
	weights    []*Parameter
	bias       *Parameter
	activation Activation
}

// NewNeuron creates a neuron taking inFeatures inputs.
//
// Parameters are named name+".w0", name+".w1", ... and name+".b".
func NewNeuron(name string, inFeatures int, activation Activation, initializer *Initializer) *Neuron {
	weights := make([]*Parameter, inFeatures)
	for i := range weights {
		weights[i] = NewParameter(fmt.Sprintf("%s.w%d", name, i), initializer.Next())
	}
	bias := NewParameter(name+".b", initializer.Next())

	return &Neuron{
		name:       name,
		weights:    weights,
		bias:       bias,
		activation: activation,
	}
}

// Forward computes the neuron output for inputs.
//
// Panics with *ArityError if len(inputs) differs from the weight count.
func (n *Neuron) Forward(inputs []*autodiff.Scalar) *autodiff.Scalar {
	checkArity(n.name, len(n.weights), len(inputs))

	act := n.bias.Value()
	for i, w := range n.weights {
		act = act.Add(w.Value().Mul(inputs[i]))
	}

	return n.activation.Apply(act)
}

// Parameters returns the weights followed by the bias.
func (n *Neuron) Parameters() []*Parameter {
	params := make([]*Parameter, 0, len(n.weights)+1)
	params = append(params, n.weights...)
	return append(params, n.bias)
}

// Weights returns the weight parameters.
func (n *Neuron) Weights() []*Parameter {
	return n.weights
}

// Bias returns the bias parameter.
func (n *Neuron) Bias() *Parameter {
	return n.bias
}

// Activation returns the configured nonlinearity.
func (n *Neuron) Activation() Activation {
	return n.activation
}

// InFeatures returns the number of inputs.
func (n *Neuron) InFeatures() int {
	return len(n.weights)
}
