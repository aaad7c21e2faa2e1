package nn_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ZhengPeterWang/ModelGarden/internal/autodiff"
	"github.com/ZhengPeterWang/ModelGarden/internal/nn"
	"github.com/ZhengPeterWang/ModelGarden/internal/scalar"
)

func newRNG() *rand.Rand {
	return rand.New(rand.NewSource(42))
}

func leaves(xs ...float64) []*scalar.Value {
	vs := make([]*scalar.Value, len(xs))
	for i, x := range xs {
		vs[i] = scalar.New(x)
	}
	return vs
}

func TestNeuron_ParameterInit(t *testing.T) {
	n := nn.NewNeuron(3, newRNG())

	params := n.Parameters()
	require.Len(t, params, 4) // 3 weights + bias
	for _, p := range params {
		assert.GreaterOrEqual(t, p.Data, -1.0)
		assert.Less(t, p.Data, 1.0)
		assert.Empty(t, p.Prev(), "parameters are leaf nodes")
	}
}

func TestNeuron_ParameterOrderStable(t *testing.T) {
	n := nn.NewNeuron(2, newRNG())

	first := n.Parameters()
	second := n.Parameters()
	require.Len(t, second, len(first))
	for i := range first {
		assert.Same(t, first[i], second[i])
	}
}

func TestNeuron_Apply(t *testing.T) {
	n := nn.NewNeuron(2, newRNG())

	out, err := n.Apply(leaves(0.5, -1.0))
	require.NoError(t, err)

	// Recompute tanh(w·x + b) directly from the parameter values.
	params := n.Parameters()
	want := math.Tanh(params[0].Data*0.5 + params[1].Data*-1.0 + params[2].Data)
	assert.InDelta(t, want, out.Data, 1e-12)
	assert.Equal(t, "tanh", out.Op())
}

func TestNeuron_DimensionMismatch(t *testing.T) {
	n := nn.NewNeuron(3, newRNG())

	_, err := n.Apply(leaves(1, 2))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expects 3 inputs, got 2")
}

func TestNeuron_GradientsReachParameters(t *testing.T) {
	n := nn.NewNeuron(2, newRNG())

	out, err := n.Apply(leaves(1.0, 2.0))
	require.NoError(t, err)

	autodiff.Backward(out)

	grads := 0
	for _, p := range n.Parameters() {
		if p.Grad != 0 {
			grads++
		}
	}
	assert.Equal(t, 3, grads, "every weight and the bias should receive gradient")
}

func TestLayer_Apply(t *testing.T) {
	l := nn.NewLayer(3, 4, newRNG())

	outs, err := l.Apply(leaves(2, 3, -1))
	require.NoError(t, err)
	assert.Len(t, outs, 4)
	assert.Equal(t, 4, l.OutputWidth())
}

func TestLayer_DimensionMismatch(t *testing.T) {
	l := nn.NewLayer(3, 2, newRNG())

	_, err := l.Apply(leaves(1))
	assert.Error(t, err)
}

func TestLayer_ParameterCount(t *testing.T) {
	l := nn.NewLayer(3, 4, newRNG())

	assert.Len(t, l.Parameters(), 4*(3+1))
}

func TestMLP_Apply(t *testing.T) {
	m := nn.NewMLP(3, []int{4, 4, 1}, newRNG())

	outs, err := m.Apply(leaves(2, 3, -1))
	require.NoError(t, err)
	require.Len(t, outs, 1)
	assert.Greater(t, outs[0].Data, -1.0)
	assert.Less(t, outs[0].Data, 1.0)
}

func TestMLP_ApplyScalar(t *testing.T) {
	m := nn.NewMLP(3, []int{4, 4, 1}, newRNG())

	out, err := m.ApplyScalar(leaves(2, 3, -1))
	require.NoError(t, err)
	assert.NotNil(t, out)

	wide := nn.NewMLP(3, []int{4, 2}, newRNG())
	_, err = wide.ApplyScalar(leaves(2, 3, -1))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "output width 2")
}

func TestMLP_ParameterCount(t *testing.T) {
	m := nn.NewMLP(3, []int{4, 4, 1}, newRNG())

	// 4*(3+1) + 4*(4+1) + 1*(4+1)
	assert.Len(t, m.Parameters(), 41)
}

// Same seed, same architecture: identical parameters and identical
// forward results.
func TestMLP_DeterministicFromSeed(t *testing.T) {
	m1 := nn.NewMLP(3, []int{4, 4, 1}, newRNG())
	m2 := nn.NewMLP(3, []int{4, 4, 1}, newRNG())

	out1, err := m1.ApplyScalar(leaves(0.5, 1, 1))
	require.NoError(t, err)
	out2, err := m2.ApplyScalar(leaves(0.5, 1, 1))
	require.NoError(t, err)

	assert.Equal(t, out1.Data, out2.Data)
}

func TestMLP_ApplyFloats(t *testing.T) {
	m := nn.NewMLP(2, []int{2, 1}, newRNG())

	outs, err := m.ApplyFloats([]float64{1, -1})
	require.NoError(t, err)
	assert.Len(t, outs, 1)

	_, err = m.ApplyFloats([]float64{1, -1, 0})
	assert.Error(t, err)
}

func TestL2Loss(t *testing.T) {
	loss := nn.NewL2Loss()

	preds := leaves(1.0, -0.5)
	out, err := loss.Forward(preds, []float64{0.0, 0.5})
	require.NoError(t, err)

	// (1-0)² + (-0.5-0.5)² = 2
	assert.InDelta(t, 2.0, out.Data, 1e-12)

	autodiff.Backward(out)
	assert.InDelta(t, 2.0, preds[0].Grad, 1e-12) // 2*(pred-y)
	assert.InDelta(t, -2.0, preds[1].Grad, 1e-12)
}

func TestL2Loss_LengthMismatch(t *testing.T) {
	loss := nn.NewL2Loss()

	_, err := loss.Forward(leaves(1), []float64{1, 2})
	assert.Error(t, err)
}
