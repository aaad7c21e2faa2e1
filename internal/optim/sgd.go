package optim

import (
	"github.com/ZhengPeterWang/ModelGarden/internal/autodiff"
	"github.com/ZhengPeterWang/ModelGarden/internal/scalar"
)

// SGD implements stochastic gradient descent with optional momentum.
//
// Update rule without momentum:
//
//	param.Data -= lr * param.Grad
//
// Update rule with momentum:
//
//	velocity = momentum * velocity + param.Grad
//	param.Data -= lr * velocity
type SGD struct {
	params     []*scalar.Value
	lr         float64
	momentum   float64
	velocities []float64 // indexed like params; allocated only with momentum
}

// SGDConfig holds configuration for the SGD optimizer.
type SGDConfig struct {
	LR       float64 // learning rate (default: 0.01)
	Momentum float64 // momentum factor (default: 0.0, range: [0, 1))
}

// NewSGD creates a new SGD optimizer over the given parameter nodes.
func NewSGD(params []*scalar.Value, config SGDConfig) *SGD {
	if config.LR == 0 {
		config.LR = 0.01
	}

	s := &SGD{
		params:   params,
		lr:       config.LR,
		momentum: config.Momentum,
	}
	if s.momentum != 0 {
		s.velocities = make([]float64, len(params))
	}
	return s
}

// Step applies one gradient-descent update to every parameter in place.
func (s *SGD) Step() {
	for i, p := range s.params {
		if s.momentum == 0 {
			p.Data -= s.lr * p.Grad
			continue
		}
		s.velocities[i] = s.momentum*s.velocities[i] + p.Grad
		p.Data -= s.lr * s.velocities[i]
	}
}

// ZeroGrad resets every parameter's gradient to zero.
func (s *SGD) ZeroGrad() {
	autodiff.ZeroGrad(s.params...)
}

// LR returns the current learning rate.
func (s *SGD) LR() float64 {
	return s.lr
}

// SetLR updates the learning rate.
func (s *SGD) SetLR(lr float64) {
	s.lr = lr
}
