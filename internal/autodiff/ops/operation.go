// Package ops defines the closed set of differentiable scalar operations.
//
// Each operation implements the Operation interface, which provides:
//   - Forward pass: the value computed from the operand values
//   - Backward pass: each operand's gradient contribution given the output gradient
//
// Supported operations:
//   - AddOp: addition (d(a+b)/da = 1, d(a+b)/db = 1)
//   - MulOp: multiplication (d(a*b)/da = b, d(a*b)/db = a)
//   - PowOp: power by a constant exponent (d(a^n)/da = n * a^(n-1))
//   - TanhOp: hyperbolic tangent (d(tanh(x))/dx = 1 - tanh²(x))
//   - ReLUOp: rectified linear unit (d(ReLU(x))/dx = 1 if x > 0, else 0)
//   - SigmoidOp: logistic sigmoid (d(σ(x))/dx = σ(x) * (1 - σ(x)))
//   - ExpOp: natural exponential (d(e^x)/dx = e^x)
//   - LogOp: natural logarithm (d(ln(x))/dx = 1/x)
//
// Operations are plain values. They hold no references to graph nodes, so a
// node stores its operation next to its operands and the backward pass
// dispatches on the operation alone.
package ops

// Operation represents a differentiable scalar operation.
type Operation interface {
	// Kind identifies the operation.
	Kind() Kind

	// Arity is the number of operands the operation consumes.
	Arity() int

	// Forward computes the output value from the operand values.
	// len(inputs) must equal Arity().
	Forward(inputs []float64) float64

	// Backward computes the gradient contribution for each operand given the
	// operand values, the forward output and the output gradient.
	// Returns one value per operand, in operand order.
	//
	// Example for MulOp:
	//   inputs: [a, b]
	//   outputGrad: dL/d(a*b)
	//   returns: [b * dL/d(a*b), a * dL/d(a*b)]
	Backward(inputs []float64, output, outputGrad float64) []float64
}
