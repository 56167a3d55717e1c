// Package datasets generates small synthetic 2D binary classification sets.
//
// Every generator draws points in the unit square from an explicit random
// source and labels them with a fixed rule:
//
//	rng := nn.NewRand(1)
//	data := datasets.Simple(50, rng) // label 1 iff x_1 < 0.5
package datasets

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
)

// Graph is a labelled point set.
type Graph struct {
	N int          // Number of examples
	X [][2]float64 // Coordinates, len N
	Y []int        // Labels in {0, 1}, len N
}

// Generator builds a Graph with n points.
type Generator func(n int, rng *rand.Rand) *Graph

var registry = map[string]Generator{
	"Simple": Simple,
	"Diag":   Diag,
	"Split":  Split,
	"Xor":    Xor,
	"Circle": Circle,
	"Spiral": Spiral,
}

// Lookup returns the generator registered under name.
func Lookup(name string) (Generator, error) {
	gen, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("datasets: unknown dataset %q (available: %v)", name, Names())
	}
	return gen, nil
}

// Names returns the registered dataset names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Positives returns how many examples carry label 1.
func (g *Graph) Positives() int {
	count := 0
	for _, y := range g.Y {
		count += y
	}
	return count
}

func makePoints(n int, rng *rand.Rand) [][2]float64 {
	pts := make([][2]float64, n)
	for i := range pts {
		pts[i] = [2]float64{rng.Float64(), rng.Float64()}
	}
	return pts
}

func labelled(n int, rng *rand.Rand, rule func(x1, x2 float64) bool) *Graph {
	pts := makePoints(n, rng)
	ys := make([]int, n)
	for i, p := range pts {
		if rule(p[0], p[1]) {
			ys[i] = 1
		}
	}
	return &Graph{N: n, X: pts, Y: ys}
}

// Simple labels points left of x_1 = 0.5.
func Simple(n int, rng *rand.Rand) *Graph {
	return labelled(n, rng, func(x1, _ float64) bool {
		return x1 < 0.5
	})
}

// Diag labels points below the diagonal x_1 + x_2 = 0.5.
func Diag(n int, rng *rand.Rand) *Graph {
	return labelled(n, rng, func(x1, x2 float64) bool {
		return x1+x2 < 0.5
	})
}

// Split labels the two outer vertical bands x_1 < 0.2 and x_1 > 0.8.
func Split(n int, rng *rand.Rand) *Graph {
	return labelled(n, rng, func(x1, _ float64) bool {
		return x1 < 0.2 || x1 > 0.8
	})
}

// Xor labels the off-diagonal quadrants.
func Xor(n int, rng *rand.Rand) *Graph {
	return labelled(n, rng, func(x1, x2 float64) bool {
		return (x1 < 0.5 && x2 > 0.5) || (x1 > 0.5 && x2 < 0.5)
	})
}

// Circle labels points outside a circle of radius sqrt(0.1) around the centre.
func Circle(n int, rng *rand.Rand) *Graph {
	return labelled(n, rng, func(x1, x2 float64) bool {
		c1, c2 := x1-0.5, x2-0.5
		return c1*c1+c2*c2 > 0.1
	})
}

// Spiral builds two interleaved spiral arms, label 0 then label 1.
//
// Points are deterministic; rng is unused. For odd n the result has n-1
// points.
func Spiral(n int, _ *rand.Rand) *Graph {
	half := n / 2
	fx := func(t float64) float64 { return t * math.Cos(t) / 20.0 }
	fy := func(t float64) float64 { return t * math.Sin(t) / 20.0 }

	pts := make([][2]float64, 0, 2*half)
	for i := 5; i < 5+half; i++ {
		t := 10.0 * float64(i) / float64(half)
		pts = append(pts, [2]float64{fx(t) + 0.5, fy(t) + 0.5})
	}
	for i := 5; i < 5+half; i++ {
		t := -10.0 * float64(i) / float64(half)
		pts = append(pts, [2]float64{fy(t) + 0.5, fx(t) + 0.5})
	}

	ys := make([]int, 2*half)
	for i := half; i < 2*half; i++ {
		ys[i] = 1
	}
	return &Graph{N: len(pts), X: pts, Y: ys}
}
