package nn

import (
	"fmt"

	"github.com/ZhengPeterWang/ModelGarden/internal/autodiff"
	"github.com/ZhengPeterWang/ModelGarden/internal/scalar"
)

// L2Loss builds the sum-of-squared-errors objective over a batch of
// predictions:
//
//	loss = sum_i (pred_i - target_i)²
//
// The result is itself a graph node, so a single Backward on it
// accumulates gradients from every example's error term.
type L2Loss struct{}

// NewL2Loss creates a new L2 loss builder.
func NewL2Loss() *L2Loss {
	return &L2Loss{}
}

// Forward builds the loss node from prediction nodes and raw targets.
//
// Returns an error if the two slices differ in length.
func (l *L2Loss) Forward(preds []*scalar.Value, targets []float64) (*scalar.Value, error) {
	if len(preds) != len(targets) {
		return nil, fmt.Errorf("nn: got %d predictions for %d targets", len(preds), len(targets))
	}

	terms := make([]*scalar.Value, len(preds))
	for i, pred := range preds {
		diff := autodiff.Sub(pred, scalar.Const(targets[i]))
		// The exponent is a constant, so Pow cannot fail here.
		sq, _ := autodiff.Pow(diff, scalar.Const(2))
		terms[i] = sq
	}
	return autodiff.Sum(terms...), nil
}
