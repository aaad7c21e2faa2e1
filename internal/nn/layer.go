package nn

import (
	"math/rand"

	"github.com/ZhengPeterWang/ModelGarden/internal/scalar"
)

// Layer is a fully connected layer: nout Neurons applied to the same
// input.
type Layer struct {
	neurons []*Neuron
}

// NewLayer creates a layer of nout neurons, each with input width nin,
// initialized from rng.
func NewLayer(nin, nout int, rng *rand.Rand) *Layer {
	neurons := make([]*Neuron, nout)
	for i := range neurons {
		neurons[i] = NewNeuron(nin, rng)
	}
	return &Layer{neurons: neurons}
}

// Apply fans the same input to every neuron and returns the nout output
// nodes in neuron order.
//
// Returns an error if len(x) does not match the layer's input width.
func (l *Layer) Apply(x []*scalar.Value) ([]*scalar.Value, error) {
	outs := make([]*scalar.Value, len(l.neurons))
	for i, n := range l.neurons {
		out, err := n.Apply(x)
		if err != nil {
			return nil, err
		}
		outs[i] = out
	}
	return outs, nil
}

// Parameters returns the concatenation of every neuron's parameters, in
// neuron order.
func (l *Layer) Parameters() []*scalar.Value {
	var params []*scalar.Value
	for _, n := range l.neurons {
		params = append(params, n.Parameters()...)
	}
	return params
}

// OutputWidth returns the number of neurons in the layer.
func (l *Layer) OutputWidth() int {
	return len(l.neurons)
}
