// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff provides scalar reverse-mode automatic differentiation.
//
// Every scalar lives in a Graph; Values are handles to its nodes. Operations
// record how each node was computed, and Backward walks the graph from a root
// back to its leaves, accumulating d(root)/d(node) into every node's gradient.
//
// Example:
//
//	import "github.com/born-ml/micrograd/autodiff"
//
//	func main() {
//	    g := autodiff.NewGraph()
//	    a := g.Leaf(-4)
//	    b := g.Leaf(2)
//	    c := a.Mul(b).Add(b.Pow(3)).ReLU()
//
//	    c.Backward()
//	    fmt.Println(a.Grad(), b.Grad())
//	}
package autodiff

import (
	"github.com/born-ml/micrograd/internal/autodiff"
	"github.com/born-ml/micrograd/internal/autodiff/ops"
)

// Graph owns every node created through it.
type Graph = autodiff.Graph

// Value is a handle to one node of a Graph.
type Value = autodiff.Value

// NodeID is the arena index of a node.
type NodeID = autodiff.NodeID

// Config configures a Graph.
type Config = autodiff.Config

// Mark is a saved graph length used to release per-iteration nodes.
type Mark = autodiff.Mark

// Op describes how a node was computed.
type Op = ops.Op

// Kind identifies an operation.
type Kind = ops.Kind

// Operation kinds.
const (
	KindLeaf = ops.Leaf
	KindAdd  = ops.Add
	KindSub  = ops.Sub
	KindMul  = ops.Mul
	KindDiv  = ops.Div
	KindNeg  = ops.Neg
	KindPow  = ops.Pow
	KindReLU = ops.ReLU
)

// NewGraph creates an empty graph with the default configuration.
func NewGraph() *Graph {
	return autodiff.NewGraph()
}

// NewGraphWithConfig creates an empty graph. Zero fields of cfg take their
// defaults.
func NewGraphWithConfig(cfg Config) *Graph {
	return autodiff.NewGraphWithConfig(cfg)
}

// DefaultConfig returns the default graph configuration.
func DefaultConfig() Config {
	return autodiff.DefaultConfig()
}

// ScalarAdd returns x + v.
func ScalarAdd(x float64, v Value) Value {
	return autodiff.ScalarAdd(x, v)
}

// ScalarSub returns x - v.
func ScalarSub(x float64, v Value) Value {
	return autodiff.ScalarSub(x, v)
}

// ScalarMul returns x * v.
func ScalarMul(x float64, v Value) Value {
	return autodiff.ScalarMul(x, v)
}

// ScalarDiv returns x / v.
func ScalarDiv(x float64, v Value) Value {
	return autodiff.ScalarDiv(x, v)
}

// Sum returns the sum of vs. It panics on an empty slice.
func Sum(vs []Value) Value {
	return autodiff.Sum(vs)
}
