// Package autodiff implements reverse-mode automatic differentiation over
// scalar values.
//
// Architecture:
//   - Graph: an arena of nodes. Every operation appends exactly one node whose
//     operands already exist, so the graph is acyclic by construction.
//   - Value: a small handle (graph, index, generation) to one node. Copying a
//     Value copies the handle, never the node.
//   - ops.Op: the tagged rule stored on each non-leaf node.
//   - Backward: orders the nodes reachable from a root and runs their rules
//     from the root towards the leaves, accumulating gradients.
//
// Usage:
//
//	g := autodiff.NewGraph()
//	x := g.Param(3.0)
//	y := x.Mul(x).AddScalar(1) // y = x² + 1
//	y.Backward()
//	fmt.Println(x.Grad()) // dy/dx = 2x = 6
//
// Gradients accumulate across Backward calls; callers reset them with
// ZeroGrad before each fresh forward pass.
//
// A Graph is not safe for concurrent use. Distinct graphs share no state.
package autodiff

import (
	"fmt"

	"github.com/born-ml/micrograd/internal/autodiff/ops"
)

// NodeID is the arena index of a node.
type NodeID = ops.NodeID

// Config controls graph behavior.
type Config struct {
	// LearningRate is the step size used by Value.Step (default: 1e-3).
	LearningRate float64

	// Capacity pre-allocates room for this many nodes (default: 64).
	Capacity int

	// OnPropagate, if set, is called after every rule invocation during
	// Backward with the node whose rule ran.
	OnPropagate func(id NodeID, op ops.Op)
}

// DefaultConfig returns the default graph configuration.
func DefaultConfig() Config {
	return Config{
		LearningRate: 1e-3,
		Capacity:     64,
	}
}

type node struct {
	data  float64
	grad  float64
	op    ops.Op
	param bool
	seq   int
	name  string
	gen   uint32
}

// Graph owns the nodes of one computation graph.
type Graph struct {
	nodes     []node
	gen       uint32 // bumped by Release
	seq       int    // label counter, scoped to this graph
	recording bool
	cfg       Config
}

// NewGraph creates an empty graph with the default configuration.
func NewGraph() *Graph {
	return NewGraphWithConfig(DefaultConfig())
}

// NewGraphWithConfig creates an empty graph. Zero fields in cfg take their
// defaults.
func NewGraphWithConfig(cfg Config) *Graph {
	def := DefaultConfig()
	if cfg.LearningRate == 0 {
		cfg.LearningRate = def.LearningRate
	}
	if cfg.Capacity <= 0 {
		cfg.Capacity = def.Capacity
	}

	return &Graph{
		nodes:     make([]node, 0, cfg.Capacity),
		recording: true,
		cfg:       cfg,
	}
}

// Config returns the graph configuration.
func (g *Graph) Config() Config {
	return g.cfg
}

// LearningRate returns the step size used by Value.Step.
func (g *Graph) LearningRate() float64 {
	return g.cfg.LearningRate
}

// Len returns the number of nodes in the arena.
func (g *Graph) Len() int {
	return len(g.nodes)
}

// Leaf creates a leaf node holding x.
func (g *Graph) Leaf(x float64) Value {
	return g.push(x, ops.Op{}, false)
}

// Param creates a trainable leaf holding x. Only parameters may be updated by
// Step, StepBy and SetData.
func (g *Graph) Param(x float64) Value {
	return g.push(x, ops.Op{}, true)
}

// Leaves creates one leaf per element of xs.
func (g *Graph) Leaves(xs []float64) []Value {
	out := make([]Value, len(xs))
	for i, x := range xs {
		out[i] = g.Leaf(x)
	}
	return out
}

// ZeroGrad resets the gradient of every node in the arena.
func (g *Graph) ZeroGrad() {
	for i := range g.nodes {
		g.nodes[i].grad = 0
	}
}

// push appends a node. Outside of recording, results are detached leaves.
func (g *Graph) push(data float64, op ops.Op, param bool) Value {
	if !g.recording {
		op = ops.Op{}
	}
	if len(g.nodes) == int(^uint32(0)>>1) {
		panic("autodiff: graph is full")
	}

	id := NodeID(len(g.nodes))
	g.nodes = append(g.nodes, node{
		data:  data,
		op:    op,
		param: param,
		seq:   g.seq,
		gen:   g.gen,
	})
	g.seq++

	return Value{g: g, id: id, gen: g.gen}
}

// at returns the node behind v after checking the handle is usable.
func (g *Graph) at(v Value) *node {
	if v.g == nil {
		panic("autodiff: use of zero Value")
	}
	if v.g != g {
		panic("autodiff: value belongs to a different graph")
	}
	if int(v.id) >= len(g.nodes) || g.nodes[v.id].gen != v.gen {
		panic(fmt.Sprintf("autodiff: stale value #%d (released by Graph.Release)", v.id))
	}
	return &g.nodes[v.id]
}

// binary records a two-operand operation over a and b.
func (g *Graph) binary(op ops.Op, a, b Value) Value {
	x := g.at(a).data
	y := g.at(b).data
	return g.push(op.Forward(x, y), op, false)
}

// unary records a one-operand operation over a.
func (g *Graph) unary(op ops.Op, a Value) Value {
	x := g.at(a).data
	return g.push(op.Forward(x, 0), op, false)
}
