// Package strategies provides value generators and assertions shared by the
// property-based tests.
//
// Generators are built on rapid and mirror the ranges the scalar tests are
// expected to hold over:
//
//	rapid.Check(t, func(t *rapid.T) {
//	    a := strategies.SmallFloats().Draw(t, "a")
//	    strategies.AssertClose(t, operators.Mul(a, 1), a)
//	})
package strategies

import (
	"math"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"

	"github.com/born-ml/scalargrad/internal/operators"
)

// SmallInts generates integers in [1, 3].
func SmallInts() *rapid.Generator[int] {
	return rapid.IntRange(1, 3)
}

// MedInts generates integers in [1, 20].
func MedInts() *rapid.Generator[int] {
	return rapid.IntRange(1, 20)
}

// SmallFloats generates finite floats in [-100, 100].
func SmallFloats() *rapid.Generator[float64] {
	return rapid.Float64Range(-100, 100)
}

// PosFloats generates floats in (1e-6, 100].
func PosFloats() *rapid.Generator[float64] {
	return rapid.Float64Range(math.Nextafter(1e-6, math.Inf(1)), 100)
}

// Triplet is three strictly increasing floats.
type Triplet struct {
	A, B, C float64
}

// OrderedTriplets generates a < b < c with at least 1 between neighbours.
func OrderedTriplets() *rapid.Generator[Triplet] {
	return rapid.Custom(func(t *rapid.T) Triplet {
		a := SmallFloats().Draw(t, "a")
		b := rapid.Float64Range(a+1, a+200).Draw(t, "b")
		c := rapid.Float64Range(b+1, b+200).Draw(t, "c")
		return Triplet{A: a, B: b, C: c}
	})
}

// AssertClose fails t unless operators.IsClose(a, b).
func AssertClose(t assert.TestingT, a, b float64) bool {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}
	return assert.Truef(t, operators.IsClose(a, b), "Failure x=%f y=%f", a, b)
}
