// Package autodiff implements reverse-mode automatic differentiation over scalars.
//
// Every operation on a Scalar computes its value immediately and records the
// operation and its operands on the new node, so a forward computation builds
// a directed acyclic graph as a side effect. Backward walks that graph from a
// chosen output and accumulates d(output)/d(node) into every reachable node.
//
// Architecture:
//   - Scalar: one value and one graph node (data, grad, operands, operation)
//   - ops.Operation: the closed set of differentiable operations
//   - Backward: iterative depth-first topological sort, then chain rule in
//     reverse topological order
//
// Usage:
//
//	a := autodiff.New(2.0)
//	b := autodiff.New(-3.0)
//	c := autodiff.New(10.0)
//	f := a.Mul(b).Add(c) // f = a*b + c = 4
//
//	f.Backward()
//	fmt.Println(a.Grad()) // df/da = b = -3
package autodiff

import (
	"fmt"

	"github.com/born-ml/micrograd/internal/autodiff/ops"
)

// Scalar is a single floating-point value and its node in the computation graph.
//
// Data is fixed at construction. Grad is written only by Backward and ZeroGrad.
// Operands are recorded in order and never change, so the graph is acyclic by
// construction: a node can only reference nodes that already exist.
type Scalar struct {
	data   float64
	grad   float64
	inputs []*Scalar     // operands, in operation order
	op     ops.Operation // nil for leaves
}

// New creates a leaf node holding value.
//
// Leaves are used for inputs, constants and trainable parameters.
// Any float64 is accepted, including NaN and ±Inf.
func New(value float64) *Scalar {
	return &Scalar{data: value}
}

// apply evaluates op on the operands and returns the node recording it.
func apply(op ops.Operation, inputs ...*Scalar) *Scalar {
	if len(inputs) != op.Arity() {
		panic(fmt.Sprintf("autodiff: %s expects %d operands, got %d", op.Kind(), op.Arity(), len(inputs)))
	}
	return &Scalar{
		data:   op.Forward(values(inputs)),
		inputs: inputs,
		op:     op,
	}
}

// values collects the forward values of nodes.
func values(nodes []*Scalar) []float64 {
	out := make([]float64, len(nodes))
	for i, n := range nodes {
		out[i] = n.data
	}
	return out
}

// Data returns the forward value.
func (s *Scalar) Data() float64 {
	return s.data
}

// Grad returns the accumulated gradient d(output)/d(s) from the last
// Backward pass that reached s.
func (s *Scalar) Grad() float64 {
	return s.grad
}

// ZeroGrad resets the gradient to 0.
func (s *Scalar) ZeroGrad() {
	s.grad = 0
}

// Kind returns the operation that produced s (ops.KindLeaf for leaves).
func (s *Scalar) Kind() ops.Kind {
	if s.op == nil {
		return ops.KindLeaf
	}
	return s.op.Kind()
}

// Op returns the recorded operation, or nil for leaves.
func (s *Scalar) Op() ops.Operation {
	return s.op
}

// IsLeaf reports whether s has no operands.
func (s *Scalar) IsLeaf() bool {
	return len(s.inputs) == 0
}

// Inputs returns a copy of the operand list.
func (s *Scalar) Inputs() []*Scalar {
	if len(s.inputs) == 0 {
		return nil
	}
	out := make([]*Scalar, len(s.inputs))
	copy(out, s.inputs)
	return out
}

// String implements fmt.Stringer.
func (s *Scalar) String() string {
	return fmt.Sprintf("Scalar(data=%g, grad=%g, op=%s)", s.data, s.grad, s.Kind())
}
