// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package datasets generates synthetic 2D binary classification sets.
package datasets

import (
	"math/rand"

	"github.com/born-ml/scalargrad/internal/datasets"
)

// Graph is a labelled point set.
type Graph = datasets.Graph

// Generator builds a Graph with n points.
type Generator = datasets.Generator

// Lookup returns the generator registered under name.
func Lookup(name string) (Generator, error) {
	return datasets.Lookup(name)
}

// Names returns the registered dataset names in sorted order.
func Names() []string {
	return datasets.Names()
}

// Simple labels points left of x_1 = 0.5.
func Simple(n int, rng *rand.Rand) *Graph { return datasets.Simple(n, rng) }

// Diag labels points below the diagonal x_1 + x_2 = 0.5.
func Diag(n int, rng *rand.Rand) *Graph { return datasets.Diag(n, rng) }

// Split labels the outer vertical bands.
func Split(n int, rng *rand.Rand) *Graph { return datasets.Split(n, rng) }

// Xor labels the off-diagonal quadrants.
func Xor(n int, rng *rand.Rand) *Graph { return datasets.Xor(n, rng) }

// Circle labels points outside a circle around the centre.
func Circle(n int, rng *rand.Rand) *Graph { return datasets.Circle(n, rng) }

// Spiral builds two interleaved spiral arms.
func Spiral(n int, rng *rand.Rand) *Graph { return datasets.Spiral(n, rng) }
