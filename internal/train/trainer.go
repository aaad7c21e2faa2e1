// Package train implements batch gradient-descent training for MLP
// models against an L2 objective.
package train

import (
	"fmt"
	"io"
	"os"

	"github.com/ZhengPeterWang/ModelGarden/internal/autodiff"
	"github.com/ZhengPeterWang/ModelGarden/internal/nn"
	"github.com/ZhengPeterWang/ModelGarden/internal/optim"
	"github.com/ZhengPeterWang/ModelGarden/internal/scalar"
)

// Trainer runs full-batch gradient descent. Per-iteration progress is
// written to Log as "iter N loss X" lines; the zero value logs to
// stdout.
type Trainer struct {
	Log io.Writer
}

// New creates a Trainer logging to stdout.
func New() *Trainer {
	return &Trainer{Log: os.Stdout}
}

// Train fits model to the examples (xs, ys) for the given number of
// iterations at learning rate lr, and returns the per-iteration loss
// history.
//
// Each iteration: run the model forward on every example, build the L2
// loss node, zero the parameter gradients, run one backward pass on the
// loss, then step every parameter by -lr * grad.
//
// The model is mutated in place. A learning rate too large for the
// problem diverges silently (the loss grows or becomes non-finite);
// nothing here guards against that.
func (t *Trainer) Train(model *nn.MLP, xs [][]float64, ys []float64, iterations int, lr float64) ([]float64, error) {
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("train: got %d inputs for %d targets", len(xs), len(ys))
	}

	log := t.Log
	if log == nil {
		log = os.Stdout
	}

	loss := nn.NewL2Loss()
	opt := optim.NewSGD(model.Parameters(), optim.SGDConfig{LR: lr})
	losses := make([]float64, 0, iterations)

	for i := 0; i < iterations; i++ {
		preds, err := predict(model, xs)
		if err != nil {
			return nil, err
		}

		total, err := loss.Forward(preds, ys)
		if err != nil {
			return nil, err
		}

		opt.ZeroGrad()
		autodiff.Backward(total)
		opt.Step()

		fmt.Fprintf(log, "iter %d loss %g\n", i, total.Data)
		losses = append(losses, total.Data)
	}
	return losses, nil
}

// predict runs the model forward on every example. The intermediate
// graph nodes of one iteration are unreferenced once the next begins;
// only the parameter nodes persist.
func predict(model *nn.MLP, xs [][]float64) ([]*scalar.Value, error) {
	preds := make([]*scalar.Value, len(xs))
	for i, x := range xs {
		outs, err := model.ApplyFloats(x)
		if err != nil {
			return nil, err
		}
		if len(outs) != 1 {
			return nil, fmt.Errorf("train: model output width %d, want 1", len(outs))
		}
		preds[i] = outs[0]
	}
	return preds, nil
}
