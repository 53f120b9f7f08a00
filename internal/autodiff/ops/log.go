package ops

import "math"

// LogOp represents the natural logarithm: output = ln(x).
//
// Non-positive inputs are not rejected; they produce NaN or -Inf like math.Log.
//
// Backward pass:
//   - d(ln(x))/dx = 1/x
type LogOp struct{}

// Kind returns KindLog.
func (LogOp) Kind() Kind { return KindLog }

// Arity returns 1.
func (LogOp) Arity() int { return 1 }

// Forward returns ln(x).
func (LogOp) Forward(inputs []float64) float64 {
	return math.Log(inputs[0])
}

// Backward computes grad_input = grad_output / x.
func (LogOp) Backward(inputs []float64, _, outputGrad float64) []float64 {
	return []float64{outputGrad / inputs[0]}
}
