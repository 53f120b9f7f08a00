package autodiff

import "github.com/born-ml/micrograd/internal/autodiff/ops"

// Tanh returns tanh(s). Gradient: 1 - tanh²(s).
func (s *Scalar) Tanh() *Scalar {
	return apply(ops.TanhOp{}, s)
}

// ReLU returns max(0, s). Gradient: 1 for s > 0, 0 otherwise (including s = 0).
func (s *Scalar) ReLU() *Scalar {
	return apply(ops.ReLUOp{}, s)
}

// Sigmoid returns 1 / (1 + e^-s). Gradient: σ(s)(1 - σ(s)).
func (s *Scalar) Sigmoid() *Scalar {
	return apply(ops.SigmoidOp{}, s)
}

// Exp returns e^s.
func (s *Scalar) Exp() *Scalar {
	return apply(ops.ExpOp{}, s)
}

// Log returns ln(s). Non-positive inputs are not rejected.
func (s *Scalar) Log() *Scalar {
	return apply(ops.LogOp{}, s)
}
