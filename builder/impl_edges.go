// SPDX-License-Identifier: MIT
// Package: roadnet/builder
//
// impl_edges.go - Edges(records) constructor: a seed road list.
//
// Contract:
//   - Records are inserted in the given order; weights are taken verbatim
//     (cfg.weightFn is not consulted).
//   - Duplicate pairs collapse to the cheaper road (core policy).
//   - Invalid records surface the core sentinel, wrapped with the record index.

package builder

import (
	"fmt"

	"github.com/katalvlaran/roadnet/core"
)

const methodEdges = "Edges"

// Edges returns a Constructor inserting every record into the network.
func Edges(records []core.EdgeRecord) Constructor {
	// copy so later mutation by the caller cannot change the build
	recs := append([]core.EdgeRecord(nil), records...)

	return func(g *core.Graph, _ builderConfig) error {
		for i, r := range recs {
			if err := g.AddEdge(r.From, r.To, r.Weight); err != nil {
				return fmt.Errorf("%s: record %d (%s-%s, w=%g): %w", methodEdges, i, r.From, r.To, r.Weight, err)
			}
		}

		return nil
	}
}

// Vertices returns a Constructor adding n isolated junctions via cfg.idFn.
// Useful to pad a seed network with junctions that have no roads yet.
func Vertices(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < 0 {
			return fmt.Errorf("Vertices: n=%d < 0: %w", n, ErrTooFewVertices)
		}
		_, err := addVertices(g, cfg, "Vertices", n)

		return err
	}
}
