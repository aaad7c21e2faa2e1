package ops

import "github.com/ZhengPeterWang/ModelGarden/internal/scalar"

// TanhOp represents the hyperbolic tangent activation:
// output = (e^(2a) - 1) / (e^(2a) + 1).
//
// Backward pass:
//   - d(tanh(a))/da = 1 - tanh(a)**2, and tanh(a) is the already-computed
//     output, so a.Grad += (1 - output.Data**2) * output.Grad
type TanhOp struct {
	a      *scalar.Value
	output *scalar.Value
}

// NewTanhOp creates a new TanhOp.
func NewTanhOp(a, output *scalar.Value) *TanhOp {
	return &TanhOp{a: a, output: output}
}

// Backward propagates the output gradient through the tanh derivative.
func (op *TanhOp) Backward() {
	t := op.output.Data
	op.a.Grad += (1 - t*t) * op.output.Grad
}

// Inputs returns the operand node [a].
func (op *TanhOp) Inputs() []*scalar.Value {
	return []*scalar.Value{op.a}
}

// Output returns the node holding tanh(a).
func (op *TanhOp) Output() *scalar.Value {
	return op.output
}
