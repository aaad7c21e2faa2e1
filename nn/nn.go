// Package nn is the public surface of the feed-forward neural network
// layer built on the scalar autodiff engine.
//
// Example:
//
//	rng := rand.New(rand.NewSource(42))
//	model := nn.NewMLP(3, []int{4, 4, 1}, rng)
//	out, err := model.ApplyFloats([]float64{2, 3, -1})
package nn

import (
	"math/rand"

	"github.com/ZhengPeterWang/ModelGarden/internal/nn"
)

// Module is the base interface for all neural network components.
type Module = nn.Module

// Neuron is a single tanh-activated affine unit.
type Neuron = nn.Neuron

// Layer is a fully connected layer of Neurons.
type Layer = nn.Layer

// MLP is a multi-layer perceptron.
type MLP = nn.MLP

// L2Loss builds a sum-of-squared-errors loss node.
type L2Loss = nn.L2Loss

// NewNeuron creates a neuron with input width nin.
func NewNeuron(nin int, rng *rand.Rand) *Neuron {
	return nn.NewNeuron(nin, rng)
}

// NewLayer creates a layer of nout neurons with input width nin.
func NewLayer(nin, nout int, rng *rand.Rand) *Layer {
	return nn.NewLayer(nin, nout, rng)
}

// NewMLP creates an MLP with input width nin and one layer per entry of
// nouts.
func NewMLP(nin int, nouts []int, rng *rand.Rand) *MLP {
	return nn.NewMLP(nin, nouts, rng)
}

// NewL2Loss creates a new L2 loss builder.
func NewL2Loss() *L2Loss {
	return nn.NewL2Loss()
}
