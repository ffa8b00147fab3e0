// SPDX-License-Identifier: MIT
// Package: roadnet/builder
//
// impl_connect.go - Connect(): stitch components into one network.
//
// Contract:
//   - Components are taken from bfs.Components (sorted, ordered by smallest ID).
//   - For consecutive components C[i], C[i+1] one road C[i][0]—C[i+1][0] is
//     added with the next configured weight, so c components gain c-1 roads.
//   - A connected or empty network is left untouched.

package builder

import (
	"github.com/katalvlaran/roadnet/bfs"
	"github.com/katalvlaran/roadnet/core"
)

const methodConnect = "Connect"

// Connect returns a Constructor that makes every junction reachable.
func Connect() Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		comps := bfs.Components(g)
		for i := 0; i+1 < len(comps); i++ {
			if err := addRoad(g, cfg, methodConnect, comps[i][0], comps[i+1][0]); err != nil {
				return err
			}
		}

		return nil
	}
}
