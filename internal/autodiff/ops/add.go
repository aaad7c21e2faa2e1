package ops

import "github.com/ZhengPeterWang/ModelGarden/internal/scalar"

// AddOp represents scalar addition: output = a + b.
//
// Backward pass:
//   - d(a+b)/da = 1, so a.Grad += output.Grad
//   - d(a+b)/db = 1, so b.Grad += output.Grad
type AddOp struct {
	a, b   *scalar.Value
	output *scalar.Value
}

// NewAddOp creates a new AddOp.
func NewAddOp(a, b, output *scalar.Value) *AddOp {
	return &AddOp{a: a, b: b, output: output}
}

// Backward propagates the output gradient equally to both operands.
// When a and b are the same node it receives both contributions.
func (op *AddOp) Backward() {
	op.a.Grad += op.output.Grad
	op.b.Grad += op.output.Grad
}

// Inputs returns the operand nodes [a, b].
func (op *AddOp) Inputs() []*scalar.Value {
	return []*scalar.Value{op.a, op.b}
}

// Output returns the node holding a + b.
func (op *AddOp) Output() *scalar.Value {
	return op.output
}
