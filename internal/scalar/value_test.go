package scalar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Leaf(t *testing.T) {
	v := New(3.5)

	assert.Equal(t, 3.5, v.Data)
	assert.Equal(t, 0.0, v.Grad)
	assert.Empty(t, v.Prev())
	assert.Empty(t, v.Op())
	assert.Nil(t, v.Operation())
}

func TestNewWithLabel(t *testing.T) {
	v := NewWithLabel(1.0, "x1")

	assert.Equal(t, "x1", v.Label())
	assert.Contains(t, v.String(), "label=x1")
}

func TestNewFromOp_RecordsPredecessors(t *testing.T) {
	a := New(2)
	b := New(3)

	out := NewFromOp(6, "*", a, b)

	require.Len(t, out.Prev(), 2)
	assert.Same(t, a, out.Prev()[0])
	assert.Same(t, b, out.Prev()[1])
	assert.Equal(t, "*", out.Op())
}

// A node used as both operands of the same operation must appear in the
// predecessor list exactly once.
func TestNewFromOp_DeduplicatesPredecessors(t *testing.T) {
	a := New(2)

	out := NewFromOp(4, "*", a, a)

	require.Len(t, out.Prev(), 1)
	assert.Same(t, a, out.Prev()[0])
}

// Dedup is by identity, not by value: two distinct leaves holding the
// same number are both kept.
func TestNewFromOp_DedupByIdentity(t *testing.T) {
	a := New(2)
	b := New(2)

	out := NewFromOp(4, "*", a, b)

	assert.Len(t, out.Prev(), 2)
}

func TestOperand_Const(t *testing.T) {
	o := Const(2.5)

	assert.False(t, o.IsNode())
	assert.Equal(t, 2.5, o.Lit())

	v := o.Promote()
	assert.Equal(t, 2.5, v.Data)
	assert.Empty(t, v.Prev())
}

// Promoting a constant twice yields distinct leaves; promoting a node
// returns the node itself.
func TestOperand_Promote(t *testing.T) {
	c := Const(1)
	assert.NotSame(t, c.Promote(), c.Promote())

	v := New(1)
	o := Node(v)
	assert.True(t, o.IsNode())
	assert.Same(t, v, o.Promote())
}

func TestSetLabel(t *testing.T) {
	v := New(0)
	v.SetLabel("b")

	assert.Equal(t, "b", v.Label())
}
