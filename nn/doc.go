// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides multi-layer perceptron building blocks over autodiff scalars.
//
// # Overview
//
// This package contains:
//   - Neuron: weighted sum plus bias followed by an activation
//   - Layer: neurons sharing one input vector
//   - MLP: layers chained input to output
//   - Utilities: Module interface, Parameter, Initializer, ZeroGrad
//   - Activations: Linear, Tanh, ReLU, Sigmoid
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/micrograd/autodiff"
//	    "github.com/born-ml/micrograd/nn"
//	)
//
//	func main() {
//	    model, err := nn.NewMLP(nn.DefaultConfig(2, 3, 1))
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    out := model.Forward([]*autodiff.Scalar{autodiff.New(1), autodiff.New(-1)})
//	    out[0].Backward()
//	}
//
// # Configuration
//
// DefaultConfig uses tanh hidden layers, a linear output layer and parameters
// drawn from U(-1, 1) with seed 42. The seed makes initial weights
// reproducible:
//
//	cfg := nn.DefaultConfig(2, 3, 3, 1)
//	cfg.Hidden = nn.ReLU
//	cfg.Seed = 7
//	model, err := nn.NewMLP(cfg)
//
// # Parameter Management
//
// Access model parameters after a backward pass:
//
//	for _, p := range model.Parameters() {
//	    fmt.Println(p.Name(), p.Data(), p.Grad())
//	}
//
// # Errors
//
// Constructors return ErrInvalidConfig or *ArityError. Forward panics with
// *ArityError when given the wrong number of inputs.
package nn
