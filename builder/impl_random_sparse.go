// SPDX-License-Identifier: MIT
// Package: roadnet/builder
//
// impl_random_sparse.go - RandomSparse(n, p): Erdős–Rényi G(n,p) road network.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource).
//   - Junctions are added via cfg.idFn in ascending index order.
//   - Each unordered pair {i<j} is tried once, in (i asc, j asc) order,
//     so a fixed seed always yields the same network.
//
// Complexity: O(n²) Bernoulli trials, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/roadnet/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor sampling G(n,p) over n junctions.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		ids, err := addVertices(g, cfg, methodRandomSparse, n)
		if err != nil {
			return err
		}
		if p == probMin {
			return nil
		}

		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				// p == 1 needs no draw, so it works without an RNG.
				if p < probMax && cfg.rng.Float64() >= p {
					continue
				}
				if err = addRoad(g, cfg, methodRandomSparse, ids[i], ids[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
