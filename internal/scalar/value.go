// Package scalar defines the node type of the scalar computation graph.
//
// A Value wraps a single float64 together with its accumulated gradient
// and the graph structure needed for reverse-mode automatic
// differentiation. Values are plain data: the differentiable operators
// that build graphs out of them live in the autodiff package, and the
// per-operation gradient rules live in autodiff/ops.
package scalar

import "fmt"

// Operation is a differentiable operation recorded on the node it
// produced. Backward reads the output node's Grad and accumulates the
// appropriately scaled contribution into each input node's Grad.
//
// It is declared here, rather than in the ops package, so that a Value
// can carry its producing operation without an import cycle.
type Operation interface {
	// Inputs returns the operand nodes, in operand order. The same node
	// may appear more than once (e.g. Mul(a, a)).
	Inputs() []*Value

	// Output returns the node this operation produced.
	Output() *Value

	// Backward propagates Output().Grad into the inputs' Grad fields.
	Backward()
}

// Value is a node in a dynamically built computation graph.
//
// Data is the forward-computed scalar and Grad the accumulated partial
// derivative of some designated root with respect to this node. Grad is
// meaningful only after a backward pass has run with this node as an
// ancestor of the chosen root, and it accumulates across backward passes
// until explicitly reset to zero.
//
// Values are shared: once created, a node may be referenced as a
// predecessor by any number of downstream nodes. After construction only
// Data (by the training loop, for parameters) and Grad are ever mutated.
type Value struct {
	Data float64
	Grad float64

	prev  []*Value  // deduplicated predecessors, empty for leaves
	op    string    // diagnostic operation tag, empty for leaves
	label string    // optional user-facing name
	bw    Operation // gradient rule, nil for leaves
}

// New creates a leaf node holding data, with no predecessors and no
// gradient rule. Leaves represent inputs and parameters.
func New(data float64) *Value {
	return &Value{Data: data}
}

// NewWithLabel creates a labeled leaf node.
func NewWithLabel(data float64, label string) *Value {
	return &Value{Data: data, label: label}
}

// NewFromOp creates an interior node produced by the operation tagged op,
// with the given forward value and predecessors. Duplicate predecessors
// collapse: a node used twice as an operand is recorded once.
//
// The gradient rule is attached separately via SetOperation because the
// operation needs a reference to the node it produced.
func NewFromOp(data float64, op string, prev ...*Value) *Value {
	v := &Value{Data: data, op: op}
	for _, p := range prev {
		if !v.hasPrev(p) {
			v.prev = append(v.prev, p)
		}
	}
	return v
}

func (v *Value) hasPrev(p *Value) bool {
	for _, q := range v.prev {
		if q == p {
			return true
		}
	}
	return false
}

// SetOperation attaches the gradient rule that produced this node.
func (v *Value) SetOperation(op Operation) {
	v.bw = op
}

// Operation returns the gradient rule that produced this node, or nil
// for leaves.
func (v *Value) Operation() Operation {
	return v.bw
}

// Prev returns the node's predecessors. Leaves return nil. Identity
// matters, order does not; the slice is deduplicated at construction.
// Callers must not mutate the returned slice.
func (v *Value) Prev() []*Value {
	return v.prev
}

// Op returns the diagnostic tag of the operation that produced this
// node, or "" for leaves.
func (v *Value) Op() string {
	return v.op
}

// Label returns the node's user-facing name, if any.
func (v *Value) Label() string {
	return v.label
}

// SetLabel names the node for introspection. Cosmetic only.
func (v *Value) SetLabel(label string) {
	v.label = label
}

// String formats the node for debugging.
func (v *Value) String() string {
	if v.label != "" {
		return fmt.Sprintf("Value(data=%v, grad=%v, label=%s)", v.Data, v.Grad, v.label)
	}
	return fmt.Sprintf("Value(data=%v, grad=%v)", v.Data, v.Grad)
}
