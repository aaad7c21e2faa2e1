package ops

import (
	"math"

	"github.com/ZhengPeterWang/ModelGarden/internal/scalar"
)

// PowOp represents raising a node to a constant real exponent:
// output = a ** k.
//
// Backward pass:
//   - d(a**k)/da = k * a**(k-1), so a.Grad += k * a.Data**(k-1) * output.Grad
//
// A zero base with a negative exponent, or a fractional power of a
// negative base, propagates Inf/NaN through math.Pow unguarded.
type PowOp struct {
	a        *scalar.Value
	exponent float64
	output   *scalar.Value
}

// NewPowOp creates a new PowOp with the given constant exponent.
func NewPowOp(a *scalar.Value, exponent float64, output *scalar.Value) *PowOp {
	return &PowOp{a: a, exponent: exponent, output: output}
}

// Backward propagates the output gradient through the power rule.
func (op *PowOp) Backward() {
	op.a.Grad += op.exponent * math.Pow(op.a.Data, op.exponent-1) * op.output.Grad
}

// Inputs returns the operand node [a]. The exponent is a constant, not
// a graph node.
func (op *PowOp) Inputs() []*scalar.Value {
	return []*scalar.Value{op.a}
}

// Output returns the node holding a ** k.
func (op *PowOp) Output() *scalar.Value {
	return op.output
}

// Exponent returns the constant exponent k.
func (op *PowOp) Exponent() float64 {
	return op.exponent
}
