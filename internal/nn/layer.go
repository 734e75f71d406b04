package nn

import (
	"fmt"
	"strings"

	"github.com/born-ml/micrograd/internal/autodiff"
)

// Layer is nout neurons reading the same nin inputs.
type Layer struct {
	neurons []*Neuron
}

// NewLayer creates a layer on graph g.
func NewLayer(g *autodiff.Graph, nin, nout int, nonlin bool, in *Initializer) *Layer {
	neurons := make([]*Neuron, nout)
	for i := range neurons {
		neurons[i] = NewNeuron(g, nin, nonlin, in)
	}
	return &Layer{neurons: neurons}
}

// Forward returns one output per neuron.
func (l *Layer) Forward(xs []autodiff.Value) []autodiff.Value {
	out := make([]autodiff.Value, len(l.neurons))
	for i, n := range l.neurons {
		out[i] = n.Forward(xs)
	}
	return out
}

// Parameters returns the parameters of every neuron, in order.
func (l *Layer) Parameters() []autodiff.Value {
	var params []autodiff.Value
	for _, n := range l.neurons {
		params = append(params, n.Parameters()...)
	}
	return params
}

// Neurons returns the neurons of the layer.
func (l *Layer) Neurons() []*Neuron {
	return l.neurons
}

// String describes the layer, e.g. "Layer of [ReLUNeuron(3), ReLUNeuron(3)]".
func (l *Layer) String() string {
	names := make([]string, len(l.neurons))
	for i, n := range l.neurons {
		names[i] = n.String()
	}
	return "Layer of [" + strings.Join(names, ", ") + "]"
}

// Sequential chains blocks: each block's output is the next block's input.
type Sequential struct {
	blocks []Block
}

// NewSequential creates a Sequential container.
func NewSequential(blocks ...Block) *Sequential {
	return &Sequential{blocks: blocks}
}

// Forward applies all blocks in sequence.
func (s *Sequential) Forward(xs []autodiff.Value) []autodiff.Value {
	out := xs
	for _, b := range s.blocks {
		out = b.Forward(out)
	}
	return out
}

// Parameters returns the parameters of every block, in order.
func (s *Sequential) Parameters() []autodiff.Value {
	var params []autodiff.Value
	for _, b := range s.blocks {
		params = append(params, b.Parameters()...)
	}
	return params
}

// Add appends a block.
func (s *Sequential) Add(b Block) {
	s.blocks = append(s.blocks, b)
}

// Len returns the number of blocks.
func (s *Sequential) Len() int {
	return len(s.blocks)
}

// Block returns the block at index. Panics if index is out of bounds.
func (s *Sequential) Block(index int) Block {
	if index < 0 || index >= len(s.blocks) {
		panic(fmt.Sprintf("nn: Sequential.Block: index %d out of bounds", index))
	}
	return s.blocks[index]
}
