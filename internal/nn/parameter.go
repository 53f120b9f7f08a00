package nn

import (
	"github.com/born-ml/micrograd/internal/autodiff"
)

// Parameter represents a trainable parameter in a neural network.
//
// A parameter is a named leaf Scalar. Its gradient is whatever the last
// Backward pass that reached it accumulated.
//
// Example:
//
//	for _, p := range model.Parameters() {
//	    fmt.Println(p.Name(), p.Data(), p.Grad())
//	}
type Parameter struct {
	name  string           // Hierarchical name (e.g., "layer0.neuron1.w0")
	value *autodiff.Scalar // The parameter leaf
}

// NewParameter creates a new trainable parameter holding value.
func NewParameter(name string, value float64) *Parameter {
	return &Parameter{
		name:  name,
		value: autodiff.New(value),
	}
}

// Name returns the parameter name.
func (p *Parameter) Name() string {
	return p.name
}

// Value returns the parameter leaf for use in autodiff operations.
func (p *Parameter) Value() *autodiff.Scalar {
	return p.value
}

// Data returns the parameter value.
func (p *Parameter) Data() float64 {
	return p.value.Data()
}

// Grad returns the accumulated gradient.
func (p *Parameter) Grad() float64 {
	return p.value.Grad()
}

// ZeroGrad clears the gradient.
func (p *Parameter) ZeroGrad() {
	p.value.ZeroGrad()
}

// Scalars returns the leaves of params in the same order.
func Scalars(params []*Parameter) []*autodiff.Scalar {
	out := make([]*autodiff.Scalar, len(params))
	for i, p := range params {
		out[i] = p.value
	}
	return out
}
