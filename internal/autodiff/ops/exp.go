package ops

import "math"

// ExpOp represents the natural exponential: output = e^x.
//
// Backward pass:
//   - d(e^x)/dx = e^x, which is the forward output
type ExpOp struct{}

// Kind returns KindExp.
func (ExpOp) Kind() Kind { return KindExp }

// Arity returns 1.
func (ExpOp) Arity() int { return 1 }

// Forward returns e^x.
func (ExpOp) Forward(inputs []float64) float64 {
	return math.Exp(inputs[0])
}

// Backward computes grad_input = grad_output * e^x.
func (ExpOp) Backward(_ []float64, output, outputGrad float64) []float64 {
	return []float64{output * outputGrad}
}
