// Package optim is the public surface of the optimization algorithms.
//
// Example:
//
//	optimizer := optim.NewSGD(model.Parameters(), optim.SGDConfig{LR: 0.01})
//	optimizer.ZeroGrad()
//	autodiff.Backward(loss)
//	optimizer.Step()
package optim

import (
	"github.com/ZhengPeterWang/ModelGarden/internal/optim"
	"github.com/ZhengPeterWang/ModelGarden/internal/scalar"
)

// Optimizer is the common interface for all optimizers.
type Optimizer = optim.Optimizer

// SGD is the stochastic gradient descent optimizer with optional
// momentum.
type SGD = optim.SGD

// SGDConfig holds configuration for the SGD optimizer.
type SGDConfig = optim.SGDConfig

// NewSGD creates a new SGD optimizer over the given parameter nodes.
func NewSGD(params []*scalar.Value, config SGDConfig) *SGD {
	return optim.NewSGD(params, config)
}
