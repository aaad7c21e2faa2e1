// Package ops implements the per-operation gradient rules of the scalar
// autodiff engine.
//
// Each operation is a small struct satisfying scalar.Operation: it holds
// references to its operand node(s) and the node it produced, and its
// Backward method accumulates the local-derivative contribution into
// each operand's Grad, scaled by the output node's Grad.
//
// Supported operations:
//   - AddOp: a + b (d/da = 1, d/db = 1)
//   - MulOp: a * b (d/da = b, d/db = a)
//   - PowOp: a ** k for a real constant k (d/da = k * a**(k-1))
//   - ExpOp: e ** a (d/da = e**a)
//   - TanhOp: tanh(a) (d/da = 1 - tanh(a)**2)
//
// Negation, subtraction and division are compositions of the above and
// have no operation type of their own.
package ops
