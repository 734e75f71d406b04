package nn

import (
	"fmt"
	"strings"

	"github.com/born-ml/micrograd/internal/autodiff"
)

// MLP is a multi-layer perceptron: nin inputs, then one layer per entry of
// nouts. Every layer but the last applies relu.
//
// Example:
//
//	g := autodiff.NewGraph()
//	model := nn.NewMLP(g, 3, []int{4, 4, 1}, nn.DefaultInitConfig())
//	out := model.Forward(g.Leaves([]float64{2, 3, -1}))[0]
type MLP struct {
	*Sequential
	layers []*Layer
}

// NewMLP creates an MLP on graph g.
func NewMLP(g *autodiff.Graph, nin int, nouts []int, cfg InitConfig) *MLP {
	if nin <= 0 || len(nouts) == 0 {
		panic(fmt.Sprintf("nn: invalid MLP shape %d -> %v", nin, nouts))
	}

	in := NewInitializer(cfg)
	sizes := append([]int{nin}, nouts...)
	layers := make([]*Layer, len(nouts))
	seq := NewSequential()
	for i := range nouts {
		if sizes[i+1] <= 0 {
			panic(fmt.Sprintf("nn: invalid layer size %d", sizes[i+1]))
		}
		last := i == len(nouts)-1
		layers[i] = NewLayer(g, sizes[i], sizes[i+1], !last, in)
		seq.Add(layers[i])
	}

	return &MLP{Sequential: seq, layers: layers}
}

// Layers returns the layers of the network.
func (m *MLP) Layers() []*Layer {
	return m.layers
}

// String describes the network layer by layer.
func (m *MLP) String() string {
	names := make([]string, len(m.layers))
	for i, l := range m.layers {
		names[i] = l.String()
	}
	return "MLP of [" + strings.Join(names, ", ") + "]"
}
