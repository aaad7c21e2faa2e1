// Package autodiff implements reverse-mode automatic differentiation
// over scalar values.
//
// Operators build a computation graph as a side effect of evaluating an
// expression: each call computes its forward value and returns a new
// scalar.Value wired to its operand(s) with the operation's local
// derivative rule attached. Backward then walks the graph once from a
// root node and accumulates d(root)/d(n) into every ancestor n's Grad.
//
// Usage:
//
//	x := scalar.New(2.0)
//	y := autodiff.Mul(x, scalar.Node(x)) // y = x²
//	autodiff.Backward(y)
//	fmt.Println(x.Grad) // dy/dx = 2x = 4.0
//
// Gradients accumulate across calls: callers reset Grad to zero between
// backward passes (see ZeroGrad).
package autodiff

import (
	"errors"
	"fmt"
	"math"

	"github.com/ZhengPeterWang/ModelGarden/internal/autodiff/ops"
	"github.com/ZhengPeterWang/ModelGarden/internal/scalar"
)

// ErrInvalidExponent is returned by Pow when the exponent operand is a
// graph node. Only constant real exponents are supported.
var ErrInvalidExponent = errors.New("autodiff: exponent must be a constant real number, not a node")

// Add returns a new node holding a + b.
func Add(a *scalar.Value, b scalar.Operand) *scalar.Value {
	bv := b.Promote()
	out := scalar.NewFromOp(a.Data+bv.Data, "+", a, bv)
	out.SetOperation(ops.NewAddOp(a, bv, out))
	return out
}

// Mul returns a new node holding a * b.
func Mul(a *scalar.Value, b scalar.Operand) *scalar.Value {
	bv := b.Promote()
	out := scalar.NewFromOp(a.Data*bv.Data, "*", a, bv)
	out.SetOperation(ops.NewMulOp(a, bv, out))
	return out
}

// Pow returns a new node holding a ** k. The exponent must be the
// Constant variant of Operand; a node-valued exponent is rejected with
// ErrInvalidExponent.
func Pow(a *scalar.Value, k scalar.Operand) (*scalar.Value, error) {
	if k.IsNode() {
		return nil, ErrInvalidExponent
	}
	return powConst(a, k.Lit()), nil
}

// powConst is the power rule for a constant real exponent. Shared by Pow
// and Div; no validation is possible here.
func powConst(a *scalar.Value, k float64) *scalar.Value {
	out := scalar.NewFromOp(math.Pow(a.Data, k), fmt.Sprintf("**%g", k), a)
	out.SetOperation(ops.NewPowOp(a, k, out))
	return out
}

// Neg returns a new node holding -a, defined as a * -1.
func Neg(a *scalar.Value) *scalar.Value {
	return Mul(a, scalar.Const(-1))
}

// Sub returns a new node holding a - b, defined as a + (-b).
func Sub(a *scalar.Value, b scalar.Operand) *scalar.Value {
	return Add(a, scalar.Node(Neg(b.Promote())))
}

// Div returns a new node holding a / b, defined as a * b**-1. Division
// by a zero-valued node propagates Inf/NaN silently.
func Div(a *scalar.Value, b scalar.Operand) *scalar.Value {
	return Mul(a, scalar.Node(powConst(b.Promote(), -1)))
}

// Exp returns a new node holding e ** a.
func Exp(a *scalar.Value) *scalar.Value {
	out := scalar.NewFromOp(math.Exp(a.Data), "exp", a)
	out.SetOperation(ops.NewExpOp(a, out))
	return out
}

// Tanh returns a new node holding tanh(a), computed as
// (e^(2a) - 1) / (e^(2a) + 1).
func Tanh(a *scalar.Value) *scalar.Value {
	e2 := math.Exp(2 * a.Data)
	out := scalar.NewFromOp((e2-1)/(e2+1), "tanh", a)
	out.SetOperation(ops.NewTanhOp(a, out))
	return out
}

// Sum folds Add over the given terms. An empty call returns a fresh
// zero leaf.
func Sum(terms ...*scalar.Value) *scalar.Value {
	if len(terms) == 0 {
		return scalar.New(0)
	}
	acc := terms[0]
	for _, t := range terms[1:] {
		acc = Add(acc, scalar.Node(t))
	}
	return acc
}
