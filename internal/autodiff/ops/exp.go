package ops

import "github.com/ZhengPeterWang/ModelGarden/internal/scalar"

// ExpOp represents the exponential: output = e ** a.
//
// Backward pass:
//   - d(e**a)/da = e**a, which is the already-computed output, so
//     a.Grad += output.Data * output.Grad
type ExpOp struct {
	a      *scalar.Value
	output *scalar.Value
}

// NewExpOp creates a new ExpOp.
func NewExpOp(a, output *scalar.Value) *ExpOp {
	return &ExpOp{a: a, output: output}
}

// Backward propagates the output gradient scaled by the forward result.
func (op *ExpOp) Backward() {
	op.a.Grad += op.output.Data * op.output.Grad
}

// Inputs returns the operand node [a].
func (op *ExpOp) Inputs() []*scalar.Value {
	return []*scalar.Value{op.a}
}

// Output returns the node holding e ** a.
func (op *ExpOp) Output() *scalar.Value {
	return op.output
}
