// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides neural network building blocks over scalar autodiff
// values.
//
// # Overview
//
// This package contains:
//   - Neuron: weighted sum plus bias with an optional ReLU
//   - Layer: neurons sharing the same inputs
//   - Sequential: a chain of blocks
//   - MLP: a multi-layer perceptron built from layers
//   - Losses: MSE and HalfSquaredError
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/micrograd/autodiff"
//	    "github.com/born-ml/micrograd/nn"
//	)
//
//	func main() {
//	    g := autodiff.NewGraph()
//	    model := nn.NewMLP(g, 3, []int{4, 4, 1}, nn.DefaultInitConfig())
//
//	    mark := g.Mark()
//	    for range 100 {
//	        out := model.Forward(g.Leaves([]float64{2, 3, -1}))[0]
//	        loss := nn.HalfSquaredError(out, g.Leaf(3))
//	        nn.ZeroGrad(model)
//	        loss.Backward()
//	        nn.Step(model)
//	        g.Release(mark)
//	    }
//	}
//
// Parameters are created before the mark so that Release keeps them.
package nn
