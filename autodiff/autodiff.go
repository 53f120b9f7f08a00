// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff provides reverse-mode automatic differentiation over scalars.
//
// Operations on a Scalar compute their value immediately and record the
// operation and its operands, building a computation graph as a side effect.
// Backward differentiates a chosen output with respect to every node it
// depends on.
//
// Example:
//
//	import "github.com/born-ml/micrograd/autodiff"
//
//	func main() {
//	    a := autodiff.New(2.0)
//	    b := autodiff.New(-3.0)
//	    c := autodiff.New(10.0)
//	    f := a.Mul(b).Add(c) // 4
//
//	    f.Backward()
//	    fmt.Println(a.Grad(), b.Grad(), c.Grad()) // -3 2 1
//	}
package autodiff

import (
	"github.com/born-ml/micrograd/internal/autodiff"
	"github.com/born-ml/micrograd/internal/autodiff/ops"
)

// Scalar is a value and its node in the computation graph.
type Scalar = autodiff.Scalar

// New creates a leaf node holding value.
func New(value float64) *Scalar {
	return autodiff.New(value)
}

// Sum adds xs left to right. Panics if xs is empty.
func Sum(xs ...*Scalar) *Scalar {
	return autodiff.Sum(xs...)
}

// ZeroGrad resets the gradient of every node reachable from roots.
func ZeroGrad(roots ...*Scalar) {
	autodiff.ZeroGrad(roots...)
}

// Kind tags the operation that produced a node.
type Kind = ops.Kind

// Operation kinds.
const (
	KindLeaf    = ops.KindLeaf
	KindAdd     = ops.KindAdd
	KindMul     = ops.KindMul
	KindPow     = ops.KindPow
	KindTanh    = ops.KindTanh
	KindReLU    = ops.KindReLU
	KindSigmoid = ops.KindSigmoid
	KindExp     = ops.KindExp
	KindLog     = ops.KindLog
)

// Operation is a differentiable scalar operation.
type Operation = ops.Operation
