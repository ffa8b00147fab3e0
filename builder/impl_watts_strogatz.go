// SPDX-License-Identifier: MIT
// Package: roadnet/builder
//
// impl_watts_strogatz.go - WattsStrogatz(n, k, beta): small-world road network.
//
// Model:
//   - Start from a ring lattice: junction i is joined to its k/2 successors.
//   - For each lattice offset j = 1..k/2 and each junction u (asc), the road
//     u—(u+j) mod n is rewired with probability beta to u—w, with w drawn
//     uniformly among junctions that are neither u nor already joined to u.
//     A junction joined to everyone keeps its lattice road.
//   - The road count stays n·k/2.
//
// Contract:
//   - n ≥ 3 (else ErrTooFewVertices).
//   - k even and 2 ≤ k < n (else ErrInvalidDegree).
//   - 0 ≤ beta ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng required when beta > 0 (else ErrNeedRandSource).
//
// Complexity: O(n·k) expected time, O(n·k) space for the working road set.

package builder

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/roadnet/core"
)

const (
	methodWattsStrogatz      = "WattsStrogatz"
	minWattsStrogatzVertices = 3
)

// WattsStrogatz returns a Constructor sampling a small-world network.
func WattsStrogatz(n, k int, beta float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minWattsStrogatzVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodWattsStrogatz, n, minWattsStrogatzVertices, ErrTooFewVertices)
		}
		if k < 2 || k%2 != 0 || k >= n {
			return fmt.Errorf("%s: k=%d must be even and in [2,%d): %w",
				methodWattsStrogatz, k, n, ErrInvalidDegree)
		}
		if beta < probMin || beta > probMax {
			return fmt.Errorf("%s: beta=%.6f not in [%.1f,%.1f]: %w",
				methodWattsStrogatz, beta, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && beta > probMin {
			return fmt.Errorf("%s: rng is required: %w", methodWattsStrogatz, ErrNeedRandSource)
		}

		ids, err := addVertices(g, cfg, methodWattsStrogatz, n)
		if err != nil {
			return err
		}

		// adj[i] is the working neighbor set of junction i (by index).
		adj := make([]map[int]bool, n)
		for i := range adj {
			adj[i] = make(map[int]bool, k)
		}
		link := func(a, b int) { adj[a][b], adj[b][a] = true, true }
		unlink := func(a, b int) { delete(adj[a], b); delete(adj[b], a) }

		half := k / 2
		for u := 0; u < n; u++ {
			for j := 1; j <= half; j++ {
				link(u, (u+j)%n)
			}
		}

		if beta > probMin {
			for j := 1; j <= half; j++ {
				for u := 0; u < n; u++ {
					v := (u + j) % n
					if !adj[u][v] || cfg.rng.Float64() >= beta {
						continue
					}
					if len(adj[u]) >= n-1 {
						continue
					}
					w := cfg.rng.Intn(n)
					for w == u || adj[u][w] {
						w = cfg.rng.Intn(n)
					}
					unlink(u, v)
					link(u, w)
				}
			}
		}

		// Emit roads in (i asc, j asc) order so weights are drawn deterministically.
		for i := 0; i < n; i++ {
			nbrs := make([]int, 0, len(adj[i]))
			for j := range adj[i] {
				if j > i {
					nbrs = append(nbrs, j)
				}
			}
			sort.Ints(nbrs)
			for _, j := range nbrs {
				if err = addRoad(g, cfg, methodWattsStrogatz, ids[i], ids[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
