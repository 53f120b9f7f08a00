package ops

import "math"

// SigmoidOp represents the logistic sigmoid: σ(x) = 1 / (1 + exp(-x)).
type SigmoidOp struct{}

// Kind returns KindSigmoid.
func (SigmoidOp) Kind() Kind { return KindSigmoid }

// Arity returns 1.
func (SigmoidOp) Arity() int { return 1 }

// Forward returns σ(x).
func (SigmoidOp) Forward(inputs []float64) float64 {
	return 1 / (1 + math.Exp(-inputs[0]))
}

// Backward computes grad_input = grad_output * σ(x) * (1 - σ(x)),
// reusing the forward output as σ(x).
func (SigmoidOp) Backward(_ []float64, output, outputGrad float64) []float64 {
	return []float64{output * (1 - output) * outputGrad}
}
