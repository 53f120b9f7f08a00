package ops

// MulOp represents multiplication: output = a * b.
//
// Backward pass:
//   - d(a*b)/da = b, so grad_a = outputGrad * b
//   - d(a*b)/db = a, so grad_b = outputGrad * a
//
// When both operands are the same node (x * x) the two contributions land on
// the same gradient and sum to 2x.
type MulOp struct{}

// Kind returns KindMul.
func (MulOp) Kind() Kind { return KindMul }

// Arity returns 2.
func (MulOp) Arity() int { return 2 }

// Forward returns a * b.
func (MulOp) Forward(inputs []float64) float64 {
	return inputs[0] * inputs[1]
}

// Backward computes input gradients for multiplication.
func (MulOp) Backward(inputs []float64, _, outputGrad float64) []float64 {
	a, b := inputs[0], inputs[1]
	return []float64{b * outputGrad, a * outputGrad}
}
