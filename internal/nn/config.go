package nn

import "fmt"

// Config describes a multi-layer perceptron.
type Config struct {
	// InputSize is the number of network inputs.
	InputSize int

	// LayerSizes lists the neuron count of each layer; the last entry is the
	// output size.
	LayerSizes []int

	// Hidden is the activation of every layer but the last.
	Hidden Activation

	// Output is the activation of the last layer.
	Output Activation

	// Seed for the parameter initializer.
	Seed int64

	// InitLow and InitHigh bound the uniform parameter initialization.
	InitLow  float64
	InitHigh float64
}

// DefaultConfig returns a tanh network with a linear output layer, seed 42 and
// parameters drawn from U(-1, 1).
func DefaultConfig(inputSize int, layerSizes ...int) Config {
	return Config{
		InputSize:  inputSize,
		LayerSizes: layerSizes,
		Hidden:     Tanh,
		Output:     Linear,
		Seed:       42,
		InitLow:    -1,
		InitHigh:   1,
	}
}

// Validate reports whether the configuration describes a buildable network.
func (c Config) Validate() error {
	if c.InputSize <= 0 {
		return fmt.Errorf("%w: input size must be positive, got %d", ErrInvalidConfig, c.InputSize)
	}
	if len(c.LayerSizes) == 0 {
		return fmt.Errorf("%w: at least one layer is required", ErrInvalidConfig)
	}
	for i, n := range c.LayerSizes {
		if n <= 0 {
			return fmt.Errorf("%w: layer %d size must be positive, got %d", ErrInvalidConfig, i, n)
		}
	}
	if !(c.InitLow < c.InitHigh) {
		return fmt.Errorf("%w: init range [%v, %v) is empty", ErrInvalidConfig, c.InitLow, c.InitHigh)
	}
	return nil
}
