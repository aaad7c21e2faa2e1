package nn

import (
	"fmt"
	"math/rand"

	"github.com/ZhengPeterWang/ModelGarden/internal/autodiff"
	"github.com/ZhengPeterWang/ModelGarden/internal/scalar"
)

// Neuron is a single tanh-activated affine unit: tanh(w·x + b).
//
// Weights and bias are leaf nodes created once at construction and
// mutated in place (their Data field) by the optimizer; they are never
// replaced.
type Neuron struct {
	w []*scalar.Value
	b *scalar.Value
}

// NewNeuron creates a neuron with input width nin. Weights and bias are
// initialized from a uniform random value in [-1, 1) drawn from rng.
func NewNeuron(nin int, rng *rand.Rand) *Neuron {
	w := make([]*scalar.Value, nin)
	for i := range w {
		w[i] = Uniform(rng, -1, 1)
	}
	return &Neuron{
		w: w,
		b: Uniform(rng, -1, 1),
	}
}

// Apply computes tanh(sum_i w_i * x_i + b) over the input nodes,
// returning the resulting graph node.
//
// Returns an error if len(x) does not match the neuron's input width.
func (n *Neuron) Apply(x []*scalar.Value) (*scalar.Value, error) {
	if len(x) != len(n.w) {
		return nil, fmt.Errorf("nn: neuron expects %d inputs, got %d", len(n.w), len(x))
	}

	acc := n.b
	for i, w := range n.w {
		acc = autodiff.Add(acc, scalar.Node(autodiff.Mul(w, scalar.Node(x[i]))))
	}
	return autodiff.Tanh(acc), nil
}

// Parameters returns the neuron's weights followed by its bias.
func (n *Neuron) Parameters() []*scalar.Value {
	params := make([]*scalar.Value, 0, len(n.w)+1)
	params = append(params, n.w...)
	params = append(params, n.b)
	return params
}

// InputWidth returns the number of inputs the neuron expects.
func (n *Neuron) InputWidth() int {
	return len(n.w)
}
