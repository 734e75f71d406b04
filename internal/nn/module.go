// Package nn composes the scalar autodiff core into neural network modules.
//
// This package provides:
//   - Module interface: anything that owns trainable parameters
//   - Neuron: y = relu(w·x + b), or linear
//   - Layer: a row of neurons over the same input
//   - Sequential / MLP: layers applied in order
//   - Loss functions: MSE, HalfSquaredError
//
// Modules only chain core operations; they carry no differentiation logic of
// their own. Parameters are trainable leaves of the graph passed to the
// constructors.
package nn

import (
	"errors"
	"fmt"

	"github.com/born-ml/micrograd/internal/autodiff"
	"gonum.org/v1/gonum/floats"
)

// ErrSizeMismatch is returned when a parameter snapshot does not fit a module.
var ErrSizeMismatch = errors.New("parameter count mismatch")

// Module is the capability shared by every trainable component.
//
// Parameters returns the trainable leaves of the module, including those of
// nested modules, in a stable order. Modules without parameters return nil.
type Module interface {
	Parameters() []autodiff.Value
}

// Block is a module that maps a vector of values to another.
type Block interface {
	Module
	Forward(xs []autodiff.Value) []autodiff.Value
}

// ZeroGrad resets the gradient of every parameter of m.
//
// Call it before each backward pass; Backward accumulates.
func ZeroGrad(m Module) {
	for _, p := range m.Parameters() {
		p.ZeroGrad()
	}
}

// Step applies the graph's fixed-rate gradient-descent update to every
// parameter of m.
func Step(m Module) {
	for _, p := range m.Parameters() {
		p.Step()
	}
}

// NumParameters returns the number of trainable scalars in m.
func NumParameters(m Module) int {
	return len(m.Parameters())
}

// Grads returns the current gradients of m's parameters.
func Grads(m Module) []float64 {
	params := m.Parameters()
	out := make([]float64, len(params))
	for i, p := range params {
		out[i] = p.Grad()
	}
	return out
}

// GradNorm returns the Euclidean norm of m's gradient vector.
func GradNorm(m Module) float64 {
	return floats.Norm(Grads(m), 2)
}

// Snapshot copies the current data of m's parameters.
func Snapshot(m Module) []float64 {
	return Data(m.Parameters())
}

// Restore overwrites m's parameters with a snapshot taken from a module of
// the same architecture.
func Restore(m Module, snapshot []float64) error {
	params := m.Parameters()
	if len(params) != len(snapshot) {
		return fmt.Errorf("restore: %w: module has %d, snapshot has %d", ErrSizeMismatch, len(params), len(snapshot))
	}
	for i, p := range params {
		p.SetData(snapshot[i])
	}
	return nil
}

// Inputs lifts xs to leaves of g, one per element.
func Inputs(g *autodiff.Graph, xs []float64) []autodiff.Value {
	return g.Leaves(xs)
}

// Data returns the data of vs.
func Data(vs []autodiff.Value) []float64 {
	out := make([]float64, len(vs))
	for i, v := range vs {
		out[i] = v.Data()
	}
	return out
}
