// Package builder provides internal helpers shared by Constructor implementations.
package builder

import (
	"fmt"

	"github.com/katalvlaran/roadnet/core"
)

// addVertices inserts idFn(0..n-1) and returns the IDs in index order.
// Re-adding an existing junction is a no-op in core.Graph.
func addVertices(g *core.Graph, cfg builderConfig, method string, n int) ([]string, error) {
	ids := make([]string, n)
	for i := 0; i < n; i++ {
		ids[i] = cfg.idFn(i)
		if err := g.AddVertex(ids[i]); err != nil {
			return nil, fmt.Errorf("%s: AddVertex(%s): %w", method, ids[i], err)
		}
	}

	return ids, nil
}

// addRoad inserts u—v with the next configured weight.
func addRoad(g *core.Graph, cfg builderConfig, method, u, v string) error {
	w := cfg.weight()
	if err := g.AddEdge(u, v, w); err != nil {
		return fmt.Errorf("%s: AddEdge(%s-%s, w=%g): %w", method, u, v, w, err)
	}

	return nil
}
