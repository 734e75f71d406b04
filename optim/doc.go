// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides optimization algorithms for training scalar models.
//
// # Overview
//
// This package contains:
//   - SGD: Stochastic Gradient Descent with momentum
//   - Adam: Adaptive Moment Estimation with bias correction
//   - Optimizer interface for custom optimizers
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/micrograd/autodiff"
//	    "github.com/born-ml/micrograd/nn"
//	    "github.com/born-ml/micrograd/optim"
//	)
//
//	func main() {
//	    g := autodiff.NewGraph()
//	    model := nn.NewMLP(g, 3, []int{4, 4, 1}, nn.DefaultInitConfig())
//
//	    // Create optimizer
//	    optimizer := optim.NewAdam(
//	        model.Parameters(),
//	        optim.AdamConfig{LR: 0.01},
//	    )
//
//	    mark := g.Mark()
//	    for range 100 {
//	        loss := computeLoss(g, model)
//	        optimizer.ZeroGrad()
//	        loss.Backward()
//	        optimizer.Step()
//	        g.Release(mark)
//	    }
//	}
//
// # Hyperparameters
//
// Zero configuration fields take their defaults:
//   - SGD: LR 0.01, no momentum
//   - Adam: LR 0.001, betas (0.9, 0.999), eps 1e-8
package optim
