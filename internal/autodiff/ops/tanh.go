package ops

import "math"

// TanhOp represents the hyperbolic tangent activation: tanh(x).
type TanhOp struct{}

// Kind returns KindTanh.
func (TanhOp) Kind() Kind { return KindTanh }

// Arity returns 1.
func (TanhOp) Arity() int { return 1 }

// Forward returns tanh(x).
func (TanhOp) Forward(inputs []float64) float64 {
	return math.Tanh(inputs[0])
}

// Backward computes the gradient for tanh.
//
// For tanh(x):
// d(tanh(x))/dx = 1 - tanh²(x)
//
// Since we have the output tanh(x) already computed:
// grad_input = grad_output * (1 - output²).
func (TanhOp) Backward(_ []float64, output, outputGrad float64) []float64 {
	return []float64{(1 - output*output) * outputGrad}
}
