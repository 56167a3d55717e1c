package datasets_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/scalargrad/internal/datasets"
)

// TestLookup tests registry lookups.
func TestLookup(t *testing.T) {
	for _, name := range datasets.Names() {
		gen, err := datasets.Lookup(name)
		require.NoError(t, err, name)

		g := gen(20, rand.New(rand.NewSource(1)))
		assert.Equal(t, g.N, len(g.X), name)
		assert.Equal(t, g.N, len(g.Y), name)
		for _, y := range g.Y {
			assert.Contains(t, []int{0, 1}, y)
		}
	}

	_, err := datasets.Lookup("Nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Simple")
}

// TestNames tests the registered set.
func TestNames(t *testing.T) {
	assert.Equal(t, []string{"Circle", "Diag", "Simple", "Spiral", "Split", "Xor"}, datasets.Names())
}

// TestLabelRules tests each generator's labelling rule.
func TestLabelRules(t *testing.T) {
	rules := map[string]func(x1, x2 float64) bool{
		"Simple": func(x1, _ float64) bool { return x1 < 0.5 },
		"Diag":   func(x1, x2 float64) bool { return x1+x2 < 0.5 },
		"Split":  func(x1, _ float64) bool { return x1 < 0.2 || x1 > 0.8 },
		"Xor":    func(x1, x2 float64) bool { return (x1 < 0.5 && x2 > 0.5) || (x1 > 0.5 && x2 < 0.5) },
		"Circle": func(x1, x2 float64) bool { return (x1-0.5)*(x1-0.5)+(x2-0.5)*(x2-0.5) > 0.1 },
	}

	for name, rule := range rules {
		t.Run(name, func(t *testing.T) {
			gen, err := datasets.Lookup(name)
			require.NoError(t, err)
			g := gen(200, rand.New(rand.NewSource(7)))

			for i, p := range g.X {
				assert.GreaterOrEqual(t, p[0], 0.0)
				assert.Less(t, p[0], 1.0)
				want := 0
				if rule(p[0], p[1]) {
					want = 1
				}
				assert.Equal(t, want, g.Y[i], "point %v", p)
			}
		})
	}
}

// TestSimple_Deterministic tests that a seed reproduces the data.
func TestSimple_Deterministic(t *testing.T) {
	a := datasets.Simple(50, rand.New(rand.NewSource(3)))
	b := datasets.Simple(50, rand.New(rand.NewSource(3)))
	assert.Equal(t, a, b)
}

// TestSpiral tests the arm split.
func TestSpiral(t *testing.T) {
	g := datasets.Spiral(11, nil)

	assert.Equal(t, 10, g.N)
	assert.Equal(t, 5, g.Positives())
	assert.Equal(t, []int{0, 0, 0, 0, 0, 1, 1, 1, 1, 1}, g.Y)
}
