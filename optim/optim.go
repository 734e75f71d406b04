// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package optim

import (
	"github.com/born-ml/micrograd/internal/autodiff"
	"github.com/born-ml/micrograd/internal/optim"
)

// ErrUnknownOptimizer is returned by New for an unsupported name.
var ErrUnknownOptimizer = optim.ErrUnknownOptimizer

// Optimizer is the base interface for all optimizers.
type Optimizer = optim.Optimizer

// Config is the base configuration for all optimizers.
type Config = optim.Config

// SGD implements Stochastic Gradient Descent with optional momentum.
type SGD = optim.SGD

// SGDConfig holds configuration for SGD optimizer.
type SGDConfig = optim.SGDConfig

// NewSGD creates a new SGD optimizer.
//
// Example:
//
//	optimizer := optim.NewSGD(model.Parameters(), optim.SGDConfig{LR: 0.01, Momentum: 0.9})
func NewSGD(params []autodiff.Value, config SGDConfig) *SGD {
	return optim.NewSGD(params, config)
}

// Adam implements the Adam optimizer.
type Adam = optim.Adam

// AdamConfig holds configuration for Adam optimizer.
type AdamConfig = optim.AdamConfig

// NewAdam creates a new Adam optimizer.
func NewAdam(params []autodiff.Value, config AdamConfig) *Adam {
	return optim.NewAdam(params, config)
}

// New creates an optimizer by name: "sgd" or "adam".
func New(name string, params []autodiff.Value, lr, momentum float64) (Optimizer, error) {
	return optim.New(name, params, lr, momentum)
}
