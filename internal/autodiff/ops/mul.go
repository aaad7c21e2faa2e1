package ops

import "github.com/ZhengPeterWang/ModelGarden/internal/scalar"

// MulOp represents scalar multiplication: output = a * b.
//
// Backward pass:
//   - d(a*b)/da = b, so a.Grad += b.Data * output.Grad
//   - d(a*b)/db = a, so b.Grad += a.Data * output.Grad
type MulOp struct {
	a, b   *scalar.Value
	output *scalar.Value
}

// NewMulOp creates a new MulOp.
func NewMulOp(a, b, output *scalar.Value) *MulOp {
	return &MulOp{a: a, b: b, output: output}
}

// Backward propagates the output gradient scaled by the opposite
// operand's forward value. Squaring (a == b) accumulates both paths,
// yielding the expected 2 * a.Data * output.Grad.
func (op *MulOp) Backward() {
	op.a.Grad += op.b.Data * op.output.Grad
	op.b.Grad += op.a.Data * op.output.Grad
}

// Inputs returns the operand nodes [a, b].
func (op *MulOp) Inputs() []*scalar.Value {
	return []*scalar.Value{op.a, op.b}
}

// Output returns the node holding a * b.
func (op *MulOp) Output() *scalar.Value {
	return op.output
}
