// Package train is the public surface of the batch gradient-descent
// training loop.
//
// Example:
//
//	trainer := train.New()
//	losses, err := trainer.Train(model, xs, ys, 100, 0.01)
package train

import "github.com/ZhengPeterWang/ModelGarden/internal/train"

// Trainer runs full-batch gradient descent over an MLP.
type Trainer = train.Trainer

// New creates a Trainer logging per-iteration progress to stdout.
func New() *Trainer {
	return train.New()
}
