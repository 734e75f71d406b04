package nn

import (
	"fmt"

	"github.com/born-ml/micrograd/internal/autodiff"
)

// Neuron computes relu(b + Σ wᵢ·xᵢ), or the affine part alone when linear.
//
// Weights are drawn from the initializer, the bias starts at 0.
type Neuron struct {
	weights []autodiff.Value
	bias    autodiff.Value
	nonlin  bool
}

// NewNeuron creates a neuron with nin inputs on graph g.
func NewNeuron(g *autodiff.Graph, nin int, nonlin bool, in *Initializer) *Neuron {
	weights := make([]autodiff.Value, nin)
	for i := range weights {
		weights[i] = g.Param(in.Next()).Named("w")
	}

	return &Neuron{
		weights: weights,
		bias:    g.Param(0).Named("b"),
		nonlin:  nonlin,
	}
}

// Forward computes the neuron output. It panics if len(xs) differs from the
// number of weights.
func (n *Neuron) Forward(xs []autodiff.Value) autodiff.Value {
	if len(xs) != len(n.weights) {
		panic(fmt.Sprintf("nn: neuron expects %d inputs, got %d", len(n.weights), len(xs)))
	}

	out := n.bias
	for i, w := range n.weights {
		out = out.Add(w.Mul(xs[i]))
	}
	if n.nonlin {
		return out.ReLU()
	}
	return out
}

// Parameters returns the weights followed by the bias.
func (n *Neuron) Parameters() []autodiff.Value {
	params := make([]autodiff.Value, 0, len(n.weights)+1)
	params = append(params, n.weights...)
	return append(params, n.bias)
}

// NumInputs returns the number of weights.
func (n *Neuron) NumInputs() int {
	return len(n.weights)
}

// Nonlinear reports whether the output goes through relu.
func (n *Neuron) Nonlinear() bool {
	return n.nonlin
}

// String describes the neuron, e.g. "ReLUNeuron(3)".
func (n *Neuron) String() string {
	if n.nonlin {
		return fmt.Sprintf("ReLUNeuron(%d)", len(n.weights))
	}
	return fmt.Sprintf("LinearNeuron(%d)", len(n.weights))
}
