package ops

// AddOp represents addition: output = a + b.
//
// Backward pass:
//   - d(a+b)/da = 1, so grad_a = outputGrad
//   - d(a+b)/db = 1, so grad_b = outputGrad
type AddOp struct{}

// Kind returns KindAdd.
func (AddOp) Kind() Kind { return KindAdd }

// Arity returns 2.
func (AddOp) Arity() int { return 2 }

// Forward returns a + b.
func (AddOp) Forward(inputs []float64) float64 {
	return inputs[0] + inputs[1]
}

// Backward passes the output gradient through unchanged to both operands.
func (AddOp) Backward(_ []float64, _, outputGrad float64) []float64 {
	return []float64{outputGrad, outputGrad}
}
