package scalar

// Operand is a closed two-variant union over the things a binary
// operator accepts on its right-hand side: an existing graph node, or a
// raw real number. Raw numbers are promoted to fresh leaf nodes exactly
// once, inside the operator that consumes them.
//
// This replaces dynamic operand inspection with an explicit tag: call
// sites write Node(x) or Const(2.0) and nothing ever reflects on types.
type Operand struct {
	node *Value
	lit  float64
}

// Node wraps an existing graph node as an operand.
func Node(v *Value) Operand {
	return Operand{node: v}
}

// Const wraps a raw real number as an operand.
func Const(f float64) Operand {
	return Operand{lit: f}
}

// IsNode reports whether the operand is a graph node rather than a raw
// constant.
func (o Operand) IsNode() bool {
	return o.node != nil
}

// Lit returns the raw constant. Only meaningful when IsNode is false.
func (o Operand) Lit() float64 {
	return o.lit
}

// Promote returns the operand as a graph node, creating a fresh
// predecessor-free leaf for a raw constant.
func (o Operand) Promote() *Value {
	if o.node != nil {
		return o.node
	}
	return New(o.lit)
}
