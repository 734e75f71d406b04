// Package optim implements optimization algorithms over scalar parameters.
//
// This package provides:
//   - Optimizer interface: Base interface for all optimizers
//   - SGD: Stochastic Gradient Descent with optional momentum
//   - Adam: Adaptive Moment Estimation
//
// Parameters are trainable leaves of an autodiff graph; optimizers read their
// accumulated gradients and overwrite their data.
//
// Example usage:
//
//	optimizer := optim.NewSGD(model.Parameters(), optim.SGDConfig{LR: 0.01})
//
//	for epoch := range epochs {
//	    loss := computeLoss(model, data)
//	    optimizer.ZeroGrad()
//	    loss.Backward()
//	    optimizer.Step()
//	}
package optim

import (
	"errors"
	"fmt"
	"strings"

	"github.com/born-ml/micrograd/internal/autodiff"
)

// ErrUnknownOptimizer is returned by New for an unsupported name.
var ErrUnknownOptimizer = errors.New("unknown optimizer")

// Optimizer is the base interface for all optimization algorithms.
type Optimizer interface {
	// Step applies one update to every parameter using its current gradient.
	Step()

	// ZeroGrad resets every parameter's gradient. Call it before each
	// backward pass; gradients accumulate otherwise.
	ZeroGrad()

	// GetLR returns the current learning rate.
	GetLR() float64
}

// Config is the base configuration for all optimizers.
type Config struct {
	LR float64 // Learning rate
}

// New creates an optimizer by name: "sgd" or "adam". Zero hyperparameters take
// each optimizer's defaults; momentum applies to SGD only.
func New(name string, params []autodiff.Value, lr, momentum float64) (Optimizer, error) {
	switch strings.ToLower(name) {
	case "sgd":
		return NewSGD(params, SGDConfig{LR: lr, Momentum: momentum}), nil
	case "adam":
		return NewAdam(params, AdamConfig{LR: lr}), nil
	default:
		return nil, fmt.Errorf("%w %q (want sgd or adam)", ErrUnknownOptimizer, name)
	}
}

func zeroGrad(params []autodiff.Value) {
	for _, p := range params {
		p.ZeroGrad()
	}
}
