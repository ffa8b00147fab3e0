// File: components.go
// Role: Connected components of the road network.
// Determinism:
//   - Each component is sorted by ID; components are ordered by their
//     smallest ID.

package bfs

import (
	"errors"
	"sort"

	"github.com/katalvlaran/roadnet/core"
)

// errFound ends a Connected search early.
var errFound = errors.New("bfs: target reached")

// Components partitions the junctions of g into connected components.
// A nil or empty graph yields nil.
func Components(g *core.Graph) [][]string {
	if g == nil {
		return nil
	}
	var (
		comps [][]string
		seen  = make(map[string]bool, g.VertexCount())
	)
	for _, v := range g.Vertices() {
		if seen[v] {
			continue
		}
		// Start vertex exists and no options are passed, so BFS cannot fail.
		res, err := BFS(g, v)
		if err != nil {
			continue
		}
		comp := append([]string(nil), res.Order...)
		for _, id := range comp {
			seen[id] = true
		}
		sort.Strings(comp)
		comps = append(comps, comp)
	}

	return comps
}

// Connected reports whether u and v lie in the same component.
func Connected(g *core.Graph, u, v string) bool {
	if g == nil || !g.HasVertex(u) || !g.HasVertex(v) {
		return false
	}
	if u == v {
		return true
	}
	_, err := BFS(g, u, WithOnVisit(func(id string, _ int) error {
		if id == v {
			return errFound
		}
		return nil
	}))

	return errors.Is(err, errFound)
}
