package nn

import (
	"fmt"

	"github.com/born-ml/micrograd/internal/autodiff"
)

// MLP is a multi-layer perceptron: layers applied in order, each layer's
// outputs becoming the next layer's inputs.
//
// Example:
//
//	model, err := nn.NewMLP(nn.DefaultConfig(2, 3, 1))
//	if err != nil {
//	    return err
//	}
//	out := model.Forward([]*autodiff.Scalar{autodiff.New(1), autodiff.New(-1)})
//	out[0].Backward()
type MLP struct {
	layers []*Layer
}

// NewMLP builds the network described by cfg.
//
// Layers are named "layer0", "layer1", ... All parameters are drawn from one
// initializer seeded with cfg.Seed, in parameter order, so equal configs give
// equal networks.
func NewMLP(cfg Config) (*MLP, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	initializer, err := NewUniform(cfg.Seed, cfg.InitLow, cfg.InitHigh)
	if err != nil {
		return nil, err
	}

	sizes := append([]int{cfg.InputSize}, cfg.LayerSizes...)
	last := len(cfg.LayerSizes) - 1

	layers := make([]*Layer, len(cfg.LayerSizes))
	for i := range layers {
		activation := cfg.Hidden
		if i == last {
			activation = cfg.Output
		}
		layers[i] = NewLayer(fmt.Sprintf("layer%d", i), sizes[i], sizes[i+1], activation, initializer)
	}

	return &MLP{layers: layers}, nil
}

// NewMLPFromLayers chains pre-built layers.
//
// Returns an *ArityError when a layer's output count differs from the next
// layer's input arity.
func NewMLPFromLayers(layers ...*Layer) (*MLP, error) {
	if len(layers) == 0 {
		return nil, fmt.Errorf("%w: at least one layer is required", ErrInvalidConfig)
	}
	for i := 1; i < len(layers); i++ {
		prev, next := layers[i-1], layers[i]
		if prev.OutFeatures() != next.InFeatures() {
			return nil, &ArityError{
				Component: next.Name(),
				Expected:  next.InFeatures(),
				Got:       prev.OutFeatures(),
			}
		}
	}
	return &MLP{layers: layers}, nil
}

// Forward feeds inputs through every layer and returns the last layer's outputs.
//
// Panics with *ArityError if len(inputs) != InputSize().
func (m *MLP) Forward(inputs []*autodiff.Scalar) []*autodiff.Scalar {
	checkArity("mlp", m.InputSize(), len(inputs))

	out := inputs
	for _, layer := range m.layers {
		out = layer.Forward(out)
	}
	return out
}

// Parameters returns every weight and bias, layer by layer.
func (m *MLP) Parameters() []*Parameter {
	var params []*Parameter
	for _, layer := range m.layers {
		params = append(params, layer.Parameters()...)
	}
	return params
}

// Layers returns the layers in evaluation order.
func (m *MLP) Layers() []*Layer {
	return m.layers
}

// InputSize returns the input arity of the first layer.
func (m *MLP) InputSize() int {
	return m.layers[0].InFeatures()
}

// OutputSize returns the neuron count of the last layer.
func (m *MLP) OutputSize() int {
	return m.layers[len(m.layers)-1].OutFeatures()
}
