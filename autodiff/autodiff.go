// Package autodiff is the public surface of the scalar reverse-mode
// automatic differentiation engine.
//
// Expressions built from Values implicitly construct a computation DAG;
// Backward on the final node accumulates d(root)/d(n) into every
// ancestor's Grad field.
//
// Example:
//
//	import "github.com/ZhengPeterWang/ModelGarden/autodiff"
//
//	func main() {
//	    x := autodiff.NewValue(2.0)
//	    y := autodiff.Mul(x, autodiff.Node(x)) // y = x²
//	    autodiff.Backward(y)
//	    fmt.Println(x.Grad) // 4.0
//	}
package autodiff

import (
	"github.com/ZhengPeterWang/ModelGarden/internal/autodiff"
	"github.com/ZhengPeterWang/ModelGarden/internal/scalar"
)

// Value is a node in the scalar computation graph.
type Value = scalar.Value

// Operand is a binary operator's right-hand side: a node or a raw
// constant.
type Operand = scalar.Operand

// ErrInvalidExponent is returned by Pow for node-valued exponents.
var ErrInvalidExponent = autodiff.ErrInvalidExponent

// NewValue creates a leaf node holding data.
func NewValue(data float64) *Value {
	return scalar.New(data)
}

// NewValueWithLabel creates a labeled leaf node.
func NewValueWithLabel(data float64, label string) *Value {
	return scalar.NewWithLabel(data, label)
}

// Node wraps an existing node as an operand.
func Node(v *Value) Operand {
	return scalar.Node(v)
}

// Const wraps a raw real number as an operand; the consuming operator
// promotes it to a fresh leaf node.
func Const(f float64) Operand {
	return scalar.Const(f)
}

// Add returns a new node holding a + b.
func Add(a *Value, b Operand) *Value {
	return autodiff.Add(a, b)
}

// Mul returns a new node holding a * b.
func Mul(a *Value, b Operand) *Value {
	return autodiff.Mul(a, b)
}

// Pow returns a new node holding a ** k for a constant real exponent k.
func Pow(a *Value, k Operand) (*Value, error) {
	return autodiff.Pow(a, k)
}

// Neg returns a new node holding -a.
func Neg(a *Value) *Value {
	return autodiff.Neg(a)
}

// Sub returns a new node holding a - b.
func Sub(a *Value, b Operand) *Value {
	return autodiff.Sub(a, b)
}

// Div returns a new node holding a / b.
func Div(a *Value, b Operand) *Value {
	return autodiff.Div(a, b)
}

// Exp returns a new node holding e ** a.
func Exp(a *Value) *Value {
	return autodiff.Exp(a)
}

// Tanh returns a new node holding tanh(a).
func Tanh(a *Value) *Value {
	return autodiff.Tanh(a)
}

// Sum folds Add over the given terms.
func Sum(terms ...*Value) *Value {
	return autodiff.Sum(terms...)
}

// Backward accumulates d(root)/d(n) into every node n reachable from
// root. Gradients add across calls; reset them with ZeroGrad first.
func Backward(root *Value) {
	autodiff.Backward(root)
}

// ZeroGrad resets Grad to zero on every given node.
func ZeroGrad(nodes ...*Value) {
	autodiff.ZeroGrad(nodes...)
}
