// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"github.com/born-ml/micrograd/internal/autodiff"
	"github.com/born-ml/micrograd/internal/nn"
)

// Module interface defines the common interface for all neural network modules.
type Module = nn.Module

// Parameter represents a trainable parameter in a neural network.
type Parameter = nn.Parameter

// NewParameter creates a new parameter with the given name and initial value.
func NewParameter(name string, value float64) *Parameter {
	return nn.NewParameter(name, value)
}

// Scalars returns the leaves of params in the same order.
func Scalars(params []*Parameter) []*autodiff.Scalar {
	return nn.Scalars(params)
}

// ZeroGrad resets the gradient of every parameter of m.
func ZeroGrad(m Module) {
	nn.ZeroGrad(m)
}

// Activations

// Activation selects a neuron nonlinearity.
type Activation = nn.Activation

// Supported activations.
const (
	Linear  = nn.Linear
	Tanh    = nn.Tanh
	ReLU    = nn.ReLU
	Sigmoid = nn.Sigmoid
)

// ParseActivation parses "linear", "tanh", "relu" or "sigmoid".
func ParseActivation(name string) (Activation, error) {
	return nn.ParseActivation(name)
}

// Initialization

// Initializer draws initial parameter values from a seeded uniform distribution.
type Initializer = nn.Initializer

// NewUniform creates an initializer sampling U(low, high) with the given seed.
func NewUniform(seed int64, low, high float64) (*Initializer, error) {
	return nn.NewUniform(seed, low, high)
}

// Layers

// Neuron computes act(Σ w_i * x_i + b).
type Neuron = nn.Neuron

// NewNeuron creates a neuron with inFeatures inputs.
func NewNeuron(name string, inFeatures int, activation Activation, initializer *Initializer) *Neuron {
	return nn.NewNeuron(name, inFeatures, activation, initializer)
}

// Layer is a fully connected layer of neurons.
type Layer = nn.Layer

// NewLayer creates a layer of outFeatures neurons with inFeatures inputs each.
func NewLayer(name string, inFeatures, outFeatures int, activation Activation, initializer *Initializer) *Layer {
	return nn.NewLayer(name, inFeatures, outFeatures, activation, initializer)
}

// Networks

// Config describes a multi-layer perceptron.
type Config = nn.Config

// DefaultConfig returns a tanh network with a linear output layer.
func DefaultConfig(inputSize int, layerSizes ...int) Config {
	return nn.DefaultConfig(inputSize, layerSizes...)
}

// MLP is a multi-layer perceptron.
type MLP = nn.MLP

// NewMLP builds the network described by cfg.
//
// Example:
//
//	model, err := nn.NewMLP(nn.DefaultConfig(2, 3, 3, 1))
func NewMLP(cfg Config) (*MLP, error) {
	return nn.NewMLP(cfg)
}

// NewMLPFromLayers chains pre-built layers, checking that adjacent sizes agree.
func NewMLPFromLayers(layers ...*Layer) (*MLP, error) {
	return nn.NewMLPFromLayers(layers...)
}

// Errors

// ArityError reports an input count that does not match what a component expects.
type ArityError = nn.ArityError

// Sentinel errors.
var (
	ErrInvalidConfig = nn.ErrInvalidConfig
	ErrArityMismatch = nn.ErrArityMismatch
)
