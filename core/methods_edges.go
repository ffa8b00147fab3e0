// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/AddEdgeStrict/HasEdge/Weight/Edge/Edges/EdgeCount,
//       Neighbors/NeighborIDs.
// Determinism:
//   - Edges() returns edges sorted by canonical key.
//   - Neighbors() returns neighbors sorted by vertex ID.
// Concurrency:
//   - Mutations under muEdgeAdj write lock.
//   - Read queries under muEdgeAdj read lock.

package core

import (
	"math"
	"sort"
	"sync/atomic"
)

// AddEdge inserts the road {from, to} with the given weight.
//
// Steps:
//  1. Validate IDs, weight, loops.
//  2. Ensure endpoints via AddVertex.
//  3. Lock muEdgeAdj; if the pair already exists, keep the cheaper weight.
//  4. Otherwise store the edge and mirror adjacency for both endpoints.
//
// Errors: ErrEmptyVertexID, ErrBadWeight, ErrLoopNotAllowed.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight float64) error {
	return g.addEdge(from, to, weight, false)
}

// AddEdgeStrict is AddEdge without collapsing: an existing road {from, to}
// yields ErrMultiEdgeNotAllowed and the graph is left untouched.
func (g *Graph) AddEdgeStrict(from, to string, weight float64) error {
	return g.addEdge(from, to, weight, true)
}

func (g *Graph) addEdge(from, to string, weight float64, strict bool) error {
	// 1) Input validation
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}
	if !validWeight(weight) {
		return ErrBadWeight
	}
	if from == to {
		return ErrLoopNotAllowed
	}

	// 2) Ensure vertices exist
	if err := g.AddVertex(from); err != nil {
		return err
	}
	if err := g.AddVertex(to); err != nil {
		return err
	}

	// 3) Insert or collapse under lock
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	key := Key(from, to)
	if e, ok := g.edges[key]; ok {
		if strict {
			return ErrMultiEdgeNotAllowed
		}
		// Multi-edges collapse into one road; the cheaper traversal wins.
		if weight < e.Weight {
			e.Weight = weight
			atomic.AddUint64(&g.version, 1)
		}
		return nil
	}

	g.edges[key] = &Edge{Key: key, From: from, To: to, Weight: weight}
	g.adjacency[from][to] = key
	g.adjacency[to][from] = key
	atomic.AddUint64(&g.version, 1)

	return nil
}

// HasEdge reports whether the road {u, v} exists, in either orientation.
// Complexity: O(1).
func (g *Graph) HasEdge(u, v string) bool {
	if u == "" || v == "" {
		return false
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	_, ok := g.edges[Key(u, v)]

	return ok
}

// Weight returns the weight of road {u, v} and whether it exists.
// Complexity: O(1).
func (g *Graph) Weight(u, v string) (float64, bool) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	e, ok := g.edges[Key(u, v)]
	if !ok {
		return 0, false
	}

	return e.Weight, true
}

// Edge returns a copy of the road {u, v}.
//
// Errors: ErrEdgeNotFound.
// Complexity: O(1).
func (g *Graph) Edge(u, v string) (Edge, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	e, ok := g.edges[Key(u, v)]
	if !ok {
		return Edge{}, ErrEdgeNotFound
	}

	return *e, nil
}

// Edges returns copies of all roads sorted by canonical key.
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	g.muEdgeAdj.RLock()
	out := make([]Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, *e)
	}
	g.muEdgeAdj.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].Key.Less(out[j].Key) })

	return out
}

// EdgeCount returns the number of roads.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// Neighbors returns the vertices adjacent to id with the connecting weights,
// sorted by vertex ID for reproducible iteration.
//
// Errors: ErrEmptyVertexID, ErrVertexNotFound.
// Complexity: O(d log d), where d is the degree of id.
func (g *Graph) Neighbors(id string) ([]Neighbor, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.muVert.RLock()
	if _, ok := g.vertices[id]; !ok {
		g.muVert.RUnlock()
		return nil, ErrVertexNotFound
	}
	g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	out := make([]Neighbor, 0, len(g.adjacency[id]))
	for nbr, key := range g.adjacency[id] {
		out = append(out, Neighbor{ID: nbr, Weight: g.edges[key].Weight})
	}
	g.muEdgeAdj.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}

// NeighborIDs returns the IDs of all vertices adjacent to id, sorted.
// Complexity: O(d log d)
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	nbs, err := g.Neighbors(id)
	if err != nil {
		return nil, err
	}
	ids := make([]string, len(nbs))
	for i, n := range nbs {
		ids[i] = n.ID
	}

	return ids, nil
}

// validWeight reports whether w is a usable traversal cost.
func validWeight(w float64) bool {
	return w > 0 && !math.IsInf(w, 0) && !math.IsNaN(w)
}
