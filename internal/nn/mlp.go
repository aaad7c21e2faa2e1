package nn

import (
	"fmt"
	"math/rand"

	"github.com/ZhengPeterWang/ModelGarden/internal/scalar"
)

// MLP is a multi-layer perceptron: a chain of fully connected Layers
// where each layer's output width is the next layer's input width.
type MLP struct {
	layers []*Layer
}

// NewMLP creates an MLP with input width nin and one layer per entry of
// nouts. Layer i has input width nouts[i-1] (nin for layer 0) and
// output width nouts[i].
func NewMLP(nin int, nouts []int, rng *rand.Rand) *MLP {
	sizes := append([]int{nin}, nouts...)
	layers := make([]*Layer, len(nouts))
	for i := range layers {
		layers[i] = NewLayer(sizes[i], sizes[i+1], rng)
	}
	return &MLP{layers: layers}
}

// Apply feeds x through each layer in sequence and returns the final
// layer's output nodes.
func (m *MLP) Apply(x []*scalar.Value) ([]*scalar.Value, error) {
	for _, l := range m.layers {
		var err error
		x, err = l.Apply(x)
		if err != nil {
			return nil, err
		}
	}
	return x, nil
}

// ApplyScalar is a convenience for models whose final layer has width 1:
// it returns the single output node directly.
func (m *MLP) ApplyScalar(x []*scalar.Value) (*scalar.Value, error) {
	outs, err := m.Apply(x)
	if err != nil {
		return nil, err
	}
	if len(outs) != 1 {
		return nil, fmt.Errorf("nn: model has output width %d, want 1", len(outs))
	}
	return outs[0], nil
}

// ApplyFloats promotes raw inputs to leaf nodes and feeds them through
// the model. Each call creates fresh input leaves.
func (m *MLP) ApplyFloats(x []float64) ([]*scalar.Value, error) {
	inputs := make([]*scalar.Value, len(x))
	for i, v := range x {
		inputs[i] = scalar.New(v)
	}
	return m.Apply(inputs)
}

// Parameters returns the concatenation of every layer's parameters, in
// layer order.
func (m *MLP) Parameters() []*scalar.Value {
	var params []*scalar.Value
	for _, l := range m.layers {
		params = append(params, l.Parameters()...)
	}
	return params
}
