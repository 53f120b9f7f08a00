package ops

// ReLUOp represents a ReLU (Rectified Linear Unit) activation: output = max(0, x).
//
// Backward pass:
//   - d(ReLU(x))/dx = 1 if x > 0, else 0
//
// The kink at x = 0 takes derivative 0.
type ReLUOp struct{}

// Kind returns KindReLU.
func (ReLUOp) Kind() Kind { return KindReLU }

// Arity returns 1.
func (ReLUOp) Arity() int { return 1 }

// Forward returns max(0, x).
func (ReLUOp) Forward(inputs []float64) float64 {
	if inputs[0] > 0 {
		return inputs[0]
	}
	return 0
}

// Backward masks the output gradient by x > 0.
func (ReLUOp) Backward(inputs []float64, _, outputGrad float64) []float64 {
	if inputs[0] > 0 {
		return []float64{outputGrad}
	}
	return []float64{0}
}
