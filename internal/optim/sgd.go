package optim

import (
	"fmt"

	"github.com/born-ml/micrograd/internal/autodiff"
)

// SGD implements Stochastic Gradient Descent with optional momentum.
//
// Update rule without momentum:
//
//	param = param - lr * gradient
//
// Update rule with momentum:
//
//	velocity = momentum * velocity + gradient
//	param = param - lr * velocity
type SGD struct {
	params     []autodiff.Value
	lr         float64
	momentum   float64
	velocities []float64
}

// SGDConfig holds configuration for SGD optimizer.
type SGDConfig struct {
	LR       float64 // Learning rate (default: 0.01)
	Momentum float64 // Momentum factor (default: 0.0, range: [0, 1))
}

// NewSGD creates a new SGD optimizer.
func NewSGD(params []autodiff.Value, config SGDConfig) *SGD {
	if config.LR == 0 {
		config.LR = 0.01
	}

	return &SGD{
		params:     params,
		lr:         config.LR,
		momentum:   config.Momentum,
		velocities: make([]float64, len(params)),
	}
}

// Step performs a single optimization step.
func (s *SGD) Step() {
	if s.momentum == 0 {
		for _, p := range s.params {
			p.StepBy(s.lr)
		}
		return
	}

	for i, p := range s.params {
		s.velocities[i] = s.momentum*s.velocities[i] + p.Grad()
		p.SetData(p.Data() - s.lr*s.velocities[i])
	}
}

// ZeroGrad clears gradients for all parameters.
func (s *SGD) ZeroGrad() {
	zeroGrad(s.params)
}

// GetLR returns the current learning rate.
func (s *SGD) GetLR() float64 {
	return s.lr
}

// SetLR updates the learning rate.
func (s *SGD) SetLR(lr float64) {
	s.lr = lr
}

// StateDict returns the momentum buffers, keyed "velocity.{param_index}".
// Without momentum it is empty.
func (s *SGD) StateDict() map[string]float64 {
	state := make(map[string]float64)
	if s.momentum == 0 {
		return state
	}
	for i, v := range s.velocities {
		state[fmt.Sprintf("velocity.%d", i)] = v
	}
	return state
}

// LoadStateDict restores momentum buffers. Missing entries reset to zero;
// keys naming a parameter index out of range are an error.
func (s *SGD) LoadStateDict(state map[string]float64) error {
	if s.momentum == 0 {
		return nil
	}

	velocities := make([]float64, len(s.params))
	for key, v := range state {
		var i int
		if _, err := fmt.Sscanf(key, "velocity.%d", &i); err != nil {
			return fmt.Errorf("sgd state %q: %w", key, err)
		}
		if i < 0 || i >= len(velocities) {
			return fmt.Errorf("sgd state %q: parameter index out of range (%d parameters)", key, len(velocities))
		}
		velocities[i] = v
	}
	s.velocities = velocities
	return nil
}
