// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"github.com/born-ml/micrograd/internal/autodiff"
	"github.com/born-ml/micrograd/internal/nn"
)

// ErrSizeMismatch is returned by Restore for a snapshot of the wrong size.
var ErrSizeMismatch = nn.ErrSizeMismatch

// Module is anything that owns trainable parameters.
type Module = nn.Module

// Block is a module mapping a vector of values to another.
type Block = nn.Block

// Initialization

// InitConfig configures parameter initialization.
type InitConfig = nn.InitConfig

// Initializer draws initial parameter values.
type Initializer = nn.Initializer

// DefaultInitConfig returns uniform(-1, 1) with seed 40.
func DefaultInitConfig() InitConfig {
	return nn.DefaultInitConfig()
}

// NewInitializer creates an initializer.
func NewInitializer(cfg InitConfig) *Initializer {
	return nn.NewInitializer(cfg)
}

// Layers

// Neuron computes relu(w·x + b), or w·x + b when linear.
type Neuron = nn.Neuron

// NewNeuron creates a neuron with nin weights.
func NewNeuron(g *autodiff.Graph, nin int, nonlin bool, in *Initializer) *Neuron {
	return nn.NewNeuron(g, nin, nonlin, in)
}

// Layer is a set of neurons sharing the same inputs.
type Layer = nn.Layer

// NewLayer creates a layer of nout neurons with nin inputs each.
func NewLayer(g *autodiff.Graph, nin, nout int, nonlin bool, in *Initializer) *Layer {
	return nn.NewLayer(g, nin, nout, nonlin, in)
}

// Sequential chains blocks.
type Sequential = nn.Sequential

// NewSequential creates a sequential container.
func NewSequential(blocks ...Block) *Sequential {
	return nn.NewSequential(blocks...)
}

// MLP is a multi-layer perceptron.
type MLP = nn.MLP

// NewMLP creates an MLP with nin inputs and one layer per entry of nouts.
// Every layer but the last applies ReLU.
//
// Example:
//
//	model := nn.NewMLP(g, 3, []int{4, 4, 1}, nn.DefaultInitConfig())
func NewMLP(g *autodiff.Graph, nin int, nouts []int, cfg InitConfig) *MLP {
	return nn.NewMLP(g, nin, nouts, cfg)
}

// Losses

// MSE returns the mean squared error.
func MSE(predictions, targets []autodiff.Value) autodiff.Value {
	return nn.MSE(predictions, targets)
}

// HalfSquaredError returns 0.5 * (prediction - target)².
func HalfSquaredError(prediction, target autodiff.Value) autodiff.Value {
	return nn.HalfSquaredError(prediction, target)
}

// Parameter helpers

// ZeroGrad resets the gradient of every parameter of m.
func ZeroGrad(m Module) {
	nn.ZeroGrad(m)
}

// Step applies one gradient-descent update to every parameter of m.
func Step(m Module) {
	nn.Step(m)
}

// NumParameters returns the number of parameters of m.
func NumParameters(m Module) int {
	return nn.NumParameters(m)
}

// Grads returns the gradients of m's parameters.
func Grads(m Module) []float64 {
	return nn.Grads(m)
}

// GradNorm returns the Euclidean norm of m's gradients.
func GradNorm(m Module) float64 {
	return nn.GradNorm(m)
}

// Snapshot copies the data of m's parameters.
func Snapshot(m Module) []float64 {
	return nn.Snapshot(m)
}

// Restore writes a snapshot back into m's parameters.
func Restore(m Module, snapshot []float64) error {
	return nn.Restore(m, snapshot)
}

// Inputs lifts xs to leaves of g.
func Inputs(g *autodiff.Graph, xs []float64) []autodiff.Value {
	return nn.Inputs(g, xs)
}

// Data returns the data of vs.
func Data(vs []autodiff.Value) []float64 {
	return nn.Data(vs)
}
