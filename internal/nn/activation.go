package nn

import (
	"fmt"
	"strings"

	"github.com/born-ml/micrograd/internal/autodiff"
)

// Activation selects the nonlinearity a neuron applies to its weighted sum.
type Activation uint8

const (
	// Linear applies no nonlinearity.
	Linear Activation = iota

	// Tanh squashes to (-1, 1). Derivative: 1 - tanh²(x).
	Tanh

	// ReLU applies max(0, x). Derivative: 1 for x > 0, 0 for x <= 0.
	ReLU

	// Sigmoid squashes to (0, 1). Derivative: σ(x)(1 - σ(x)).
	Sigmoid
)

// Apply applies the activation to x.
func (a Activation) Apply(x *autodiff.Scalar) *autodiff.Scalar {
	switch a {
	case Linear:
		return x
	case Tanh:
		return x.Tanh()
	case ReLU:
		return x.ReLU()
	case Sigmoid:
		return x.Sigmoid()
	default:
		panic(fmt.Sprintf("nn: unknown activation %d", uint8(a)))
	}
}

// String returns the lower-case activation name.
func (a Activation) String() string {
	switch a {
	case Linear:
		return "linear"
	case Tanh:
		return "tanh"
	case ReLU:
		return "relu"
	case Sigmoid:
		return "sigmoid"
	default:
		return fmt.Sprintf("activation(%d)", uint8(a))
	}
}

// ParseActivation parses an activation name as printed by String.
func ParseActivation(name string) (Activation, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "linear", "none":
		return Linear, nil
	case "tanh":
		return Tanh, nil
	case "relu":
		return ReLU, nil
	case "sigmoid":
		return Sigmoid, nil
	default:
		return 0, fmt.Errorf("%w: unknown activation %q", ErrInvalidConfig, name)
	}
}
