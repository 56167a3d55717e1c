package strategies_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"

	"github.com/born-ml/scalargrad/internal/strategies"
)

// TestGenerators_Ranges tests every generator stays inside its range.
func TestGenerators_Ranges(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		si := strategies.SmallInts().Draw(t, "small_int")
		mi := strategies.MedInts().Draw(t, "med_int")
		sf := strategies.SmallFloats().Draw(t, "small_float")
		pf := strategies.PosFloats().Draw(t, "pos_float")

		assert.GreaterOrEqual(t, si, 1)
		assert.LessOrEqual(t, si, 3)
		assert.GreaterOrEqual(t, mi, 1)
		assert.LessOrEqual(t, mi, 20)
		assert.GreaterOrEqual(t, sf, -100.0)
		assert.LessOrEqual(t, sf, 100.0)
		assert.Greater(t, pf, 1e-6)
		assert.LessOrEqual(t, pf, 100.0)
	})
}

// TestOrderedTriplets tests a < b < c.
func TestOrderedTriplets(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		tr := strategies.OrderedTriplets().Draw(t, "triplet")
		assert.Less(t, tr.A, tr.B)
		assert.Less(t, tr.B, tr.C)
	})
}

// TestAssertClose tests passing and failing comparisons.
func TestAssertClose(t *testing.T) {
	assert.True(t, strategies.AssertClose(t, 1.0, 1.005))

	rec := &recorder{}
	assert.False(t, strategies.AssertClose(rec, 1.0, 1.5))
	assert.True(t, rec.failed)
}

type recorder struct {
	failed bool
}

func (r *recorder) Errorf(string, ...any) {
	r.failed = true
}
