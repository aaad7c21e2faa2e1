// Package optim implements optimization algorithms for training models
// built on the scalar autodiff engine.
//
// Optimizers own a flat slice of parameter nodes (from Module.Parameters)
// and update their Data fields in place from the gradients a backward
// pass accumulated in their Grad fields.
//
// Example usage:
//
//	optimizer := optim.NewSGD(model.Parameters(), optim.SGDConfig{LR: 0.01})
//
//	for range iterations {
//	    loss := buildLoss(model, batch)
//	    optimizer.ZeroGrad()
//	    autodiff.Backward(loss)
//	    optimizer.Step()
//	}
package optim

// Optimizer is the base interface for all optimization algorithms.
type Optimizer interface {
	// Step applies one gradient update to every parameter in place,
	// reading the gradients accumulated by the latest backward pass.
	Step()

	// ZeroGrad resets every parameter's gradient to zero. Called before
	// each backward pass to prevent accumulation across iterations.
	ZeroGrad()

	// LR returns the current learning rate.
	LR() float64

	// SetLR updates the learning rate, for scheduling during training.
	SetLR(lr float64)
}
