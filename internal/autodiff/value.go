package autodiff

import (
	"fmt"

	"github.com/born-ml/micrograd/internal/autodiff/ops"
)

// Value is a handle to one node of a Graph.
//
// Values are small and copied by value; two copies refer to the same node.
// Using the same Value twice in an expression (x.Add(x)) creates one node with
// two incoming edges. The zero Value is not usable.
type Value struct {
	g   *Graph
	id  NodeID
	gen uint32
}

// Graph returns the graph owning the value.
func (v Value) Graph() *Graph {
	return v.g
}

// ID returns the arena index of the value's node.
func (v Value) ID() NodeID {
	return v.id
}

func (v Value) node() *node {
	if v.g == nil {
		panic("autodiff: use of zero Value")
	}
	return v.g.at(v)
}

func (v Value) graph() *Graph {
	if v.g == nil {
		panic("autodiff: use of zero Value")
	}
	return v.g
}

// Data returns the scalar held by the node.
func (v Value) Data() float64 {
	return v.node().data
}

// Grad returns the gradient accumulated into the node.
func (v Value) Grad() float64 {
	return v.node().grad
}

// Op returns the operation that produced the node (Kind ops.Leaf for leaves).
func (v Value) Op() ops.Op {
	return v.node().op
}

// IsLeaf reports whether the node has no predecessors.
func (v Value) IsLeaf() bool {
	return v.node().op.Kind == ops.Leaf
}

// IsParam reports whether the node is a trainable parameter.
func (v Value) IsParam() bool {
	return v.node().param
}

// Predecessors returns the operands the node was derived from, in operation
// order. Leaves have none.
func (v Value) Predecessors() []Value {
	n := v.node()
	operands := n.op.Operands()
	out := make([]Value, len(operands))
	for i, id := range operands {
		out[i] = Value{g: v.g, id: id, gen: v.g.nodes[id].gen}
	}
	return out
}

// Add returns v + other.
func (v Value) Add(other Value) Value {
	return v.graph().binary(ops.NewAddOp(v.id, other.id), v, other)
}

// Sub returns v - other.
func (v Value) Sub(other Value) Value {
	return v.graph().binary(ops.NewSubOp(v.id, other.id), v, other)
}

// Mul returns v * other.
func (v Value) Mul(other Value) Value {
	return v.graph().binary(ops.NewMulOp(v.id, other.id), v, other)
}

// Div returns v / other. Division by zero follows IEEE-754.
func (v Value) Div(other Value) Value {
	return v.graph().binary(ops.NewDivOp(v.id, other.id), v, other)
}

// Neg returns -v.
func (v Value) Neg() Value {
	return v.graph().unary(ops.NewNegOp(v.id), v)
}

// Pow returns v^exponent. The exponent is a constant and is not
// differentiated.
func (v Value) Pow(exponent float64) Value {
	return v.graph().unary(ops.NewPowOp(v.id, exponent), v)
}

// ReLU returns max(v, 0).
func (v Value) ReLU() Value {
	return v.graph().unary(ops.NewReLUOp(v.id), v)
}

// AddScalar returns v + x, lifting x to a leaf.
func (v Value) AddScalar(x float64) Value {
	return v.Add(v.graph().Leaf(x))
}

// SubScalar returns v - x, lifting x to a leaf.
func (v Value) SubScalar(x float64) Value {
	return v.Sub(v.graph().Leaf(x))
}

// MulScalar returns v * x, lifting x to a leaf.
func (v Value) MulScalar(x float64) Value {
	return v.Mul(v.graph().Leaf(x))
}

// DivScalar returns v / x, lifting x to a leaf.
func (v Value) DivScalar(x float64) Value {
	return v.Div(v.graph().Leaf(x))
}

// ScalarAdd returns x + v, lifting x to a leaf.
func ScalarAdd(x float64, v Value) Value {
	return v.graph().Leaf(x).Add(v)
}

// ScalarSub returns x - v, lifting x to a leaf.
func ScalarSub(x float64, v Value) Value {
	return v.graph().Leaf(x).Sub(v)
}

// ScalarMul returns x * v, lifting x to a leaf.
func ScalarMul(x float64, v Value) Value {
	return v.graph().Leaf(x).Mul(v)
}

// ScalarDiv returns x / v, lifting x to a leaf.
func ScalarDiv(x float64, v Value) Value {
	return v.graph().Leaf(x).Div(v)
}

// AddAssign rebinds v to v + other. The node v referred to is not modified.
func (v *Value) AddAssign(other Value) {
	*v = v.Add(other)
}

// SubAssign rebinds v to v - other.
func (v *Value) SubAssign(other Value) {
	*v = v.Sub(other)
}

// MulAssign rebinds v to v * other.
func (v *Value) MulAssign(other Value) {
	*v = v.Mul(other)
}

// DivAssign rebinds v to v / other.
func (v *Value) DivAssign(other Value) {
	*v = v.Div(other)
}

// Sum returns the sum of vs, left to right. It panics on an empty slice.
func Sum(vs []Value) Value {
	if len(vs) == 0 {
		panic("autodiff: sum of no values")
	}
	out := vs[0]
	for _, v := range vs[1:] {
		out = out.Add(v)
	}
	return out
}

// ZeroGrad resets the node's gradient to 0.
func (v Value) ZeroGrad() {
	v.node().grad = 0
}

// Step applies one gradient-descent update using the graph learning rate:
// data = data - lr * grad.
func (v Value) Step() {
	v.StepBy(v.graph().cfg.LearningRate)
}

// StepBy applies data = data - lr * grad.
func (v Value) StepBy(lr float64) {
	n := v.param("step")
	n.data -= lr * n.grad
}

// SetData overwrites the data of a parameter.
func (v Value) SetData(x float64) {
	v.param("set data").data = x
}

func (v Value) param(what string) *node {
	n := v.node()
	if !n.param {
		panic(fmt.Sprintf("autodiff: %s: #%d is not a trainable parameter", what, v.id))
	}
	return n
}

// Named sets the debug name of the node and returns v.
func (v Value) Named(name string) Value {
	v.node().name = name
	return v
}

// Label returns the debug label "<name>_<seq>", where seq counts the nodes
// created by the graph.
func (v Value) Label() string {
	n := v.node()
	return fmt.Sprintf("%s_%d", n.name, n.seq)
}

// String renders the node as "<label>_data=<data>_grad=<grad>".
func (v Value) String() string {
	if v.g == nil {
		return "Value(<nil>)"
	}
	n := v.node()
	return fmt.Sprintf("%s_%d_data=%f_grad=%f", n.name, n.seq, n.data, n.grad)
}
