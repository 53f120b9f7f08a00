package ops

import "math"

// PowOp raises its operand to a constant exponent: output = a^Exponent.
//
// The exponent is a plain number, not a graph node, and is never
// differentiated.
//
// Backward pass:
//   - d(a^n)/da = n * a^(n-1)
type PowOp struct {
	Exponent float64
}

// NewPowOp creates a power operation with the given exponent.
func NewPowOp(exponent float64) PowOp {
	return PowOp{Exponent: exponent}
}

// Kind returns KindPow.
func (PowOp) Kind() Kind { return KindPow }

// Arity returns 1.
func (PowOp) Arity() int { return 1 }

// Forward returns a^Exponent.
func (op PowOp) Forward(inputs []float64) float64 {
	return math.Pow(inputs[0], op.Exponent)
}

// Backward computes the input gradient for the power rule.
func (op PowOp) Backward(inputs []float64, _, outputGrad float64) []float64 {
	n := op.Exponent
	return []float64{n * math.Pow(inputs[0], n-1) * outputGrad}
}
