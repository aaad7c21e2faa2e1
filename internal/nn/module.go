// Package nn implements a small feed-forward neural network on top of
// the scalar autodiff engine.
//
// This package provides:
//   - Module interface: base interface for all NN components
//   - Neuron: tanh-activated affine unit
//   - Layer: fully connected layer of Neurons
//   - MLP: multi-layer perceptron
//   - L2Loss: sum of squared errors over a batch of predictions
//
// Every forward application builds a fresh computation graph over the
// model's parameter nodes; the parameters themselves persist across
// iterations and are the only nodes an optimizer ever touches.
package nn

import "github.com/ZhengPeterWang/ModelGarden/internal/scalar"

// Module is the base interface for all neural network components.
//
// Parameters returns every trainable node of the module, including
// nested module parameters, in a stable order. Optimizers iterate this
// slice to apply updates and to zero gradients.
type Module interface {
	Parameters() []*scalar.Value
}
