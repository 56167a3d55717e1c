package nn

import (
	"math"
	"math/rand"

	"github.com/born-ml/scalargrad/internal/autodiff"
)

// Initializer produces the starting value of a parameter.
type Initializer func(rng *rand.Rand, fanIn, fanOut int) float64

// UniformSymmetric draws from U(-1, 1).
//
// This is the default for Linear: 2 * (r - 0.5) with r uniform in [0, 1).
func UniformSymmetric(rng *rand.Rand, _, _ int) float64 {
	return 2 * (rng.Float64() - 0.5)
}

// Xavier (Glorot) initialization.
//
// Draws from U(-sqrt(6/(fan_in + fan_out)), sqrt(6/(fan_in + fan_out))),
// which keeps activation variance roughly constant across layers.
func Xavier(rng *rand.Rand, fanIn, fanOut int) float64 {
	bound := math.Sqrt(6.0 / float64(fanIn+fanOut))
	return (rng.Float64()*2.0 - 1.0) * bound
}

// Zeros always returns 0.
func Zeros(*rand.Rand, int, int) float64 {
	return 0
}

// NewRand returns a deterministic random source for seed.
//
// All initialization takes an explicit *rand.Rand so two models built from
// the same seed start with identical weights.
func NewRand(seed int64) *rand.Rand {
	//nolint:gosec // Using math/rand for weight initialization (not security-critical)
	return rand.New(rand.NewSource(seed))
}

func initScalar(init Initializer, rng *rand.Rand, fanIn, fanOut int, name string) *autodiff.Scalar {
	return autodiff.NewScalar(init(rng, fanIn, fanOut), autodiff.WithName(name))
}
