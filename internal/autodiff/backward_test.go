package autodiff

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ZhengPeterWang/ModelGarden/internal/scalar"
)

// A node feeding the root through two paths receives the sum of both
// contributions: d(a*a)/da = 2a.
func TestBackward_SharedNodeAccumulates(t *testing.T) {
	a := scalar.New(3)

	out := Mul(a, scalar.Node(a))
	require.Equal(t, 9.0, out.Data)

	Backward(out)
	assert.Equal(t, 6.0, a.Grad)
}

func TestBackward_SharedSubexpression(t *testing.T) {
	// e = (a + b) * (a + b²) shares a across paths.
	a := scalar.New(2)
	b := scalar.New(3)

	left := Add(a, scalar.Node(b))
	b2, err := Pow(b, scalar.Const(2))
	require.NoError(t, err)
	right := Add(a, scalar.Node(b2))
	out := Mul(left, scalar.Node(right))

	require.Equal(t, 55.0, out.Data) // 5 * 11

	Backward(out)
	// d/da = right + left = 11 + 5
	assert.Equal(t, 16.0, a.Grad)
	// d/db = right + left * 2b = 11 + 5*6
	assert.Equal(t, 41.0, b.Grad)
}

// Backward accumulates rather than overwrites: a second pass without a
// reset doubles every gradient.
func TestBackward_AccumulatesAcrossCalls(t *testing.T) {
	a := scalar.New(3)
	out := Mul(a, scalar.Node(a))

	Backward(out)
	require.Equal(t, 6.0, a.Grad)

	Backward(out)
	assert.Equal(t, 12.0, a.Grad)
}

func TestBackward_ZeroGradResets(t *testing.T) {
	a := scalar.New(3)
	out := Mul(a, scalar.Node(a))

	Backward(out)
	ZeroGrad(a)
	assert.Equal(t, 0.0, a.Grad)
}

// A node with no path to the root is never visited and keeps its Grad.
func TestBackward_UnreachableNodeUntouched(t *testing.T) {
	a := scalar.New(2)
	stray := scalar.New(7)
	stray.Grad = 5

	out := Mul(a, scalar.Node(a))
	Backward(out)

	assert.Equal(t, 5.0, stray.Grad)
}

func TestBackward_SetsRootGrad(t *testing.T) {
	a := scalar.New(2)
	out := Exp(a)

	Backward(out)
	assert.Equal(t, 1.0, out.Grad)
}

// Every node in the post-order sequence appears after all of its
// predecessors.
func TestTopoSort_Order(t *testing.T) {
	a := scalar.New(2)
	b := scalar.New(-3)
	c := scalar.New(10)
	e := Mul(a, scalar.Node(b))
	d := Add(e, scalar.Node(c))
	f := scalar.New(-2)
	out := Mul(d, scalar.Node(f))

	order := topoSort(out)

	index := make(map[*scalar.Value]int, len(order))
	for i, n := range order {
		index[n] = i
	}

	require.Len(t, order, 7)
	assert.Same(t, out, order[len(order)-1])
	for _, n := range order {
		for _, p := range n.Prev() {
			assert.Less(t, index[p], index[n], "predecessor of %s must precede it", n)
		}
	}
}

// The iterative walk handles graphs far deeper than a comfortable
// recursion depth.
func TestTopoSort_DeepChain(t *testing.T) {
	const depth = 200000

	v := scalar.New(1)
	root := v
	for i := 0; i < depth; i++ {
		root = Add(root, scalar.Const(0))
	}

	Backward(root)
	assert.Equal(t, 1.0, v.Grad)
}
