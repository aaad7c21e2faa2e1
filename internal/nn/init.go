package nn

import (
	"math/rand"

	"github.com/ZhengPeterWang/ModelGarden/internal/scalar"
)

// Uniform returns a leaf parameter node initialized from a uniform
// random value in [lo, hi).
//
// The generator is passed explicitly rather than taken from the global
// rand state, so model construction is reproducible from a seed.
func Uniform(rng *rand.Rand, lo, hi float64) *scalar.Value {
	return scalar.New(lo + rng.Float64()*(hi-lo))
}
