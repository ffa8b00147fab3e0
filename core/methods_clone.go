// File: methods_clone.go
// Role: Cloning, snapshots and reconstruction from persisted edge lists.
// Determinism:
//   - Snapshot() is sorted by canonical key, so equal graphs produce equal records.
// Concurrency:
//   - Read locks for snapshotting; no mutation of the source graph.

package core

import (
	"fmt"
	"sync/atomic"
)

// Clone returns a deep copy of the Graph: vertices, edges, and adjacency.
// The clone starts with the same Version as the source; the two counters
// diverge independently afterwards.
//
// Complexity: O(V + E)
func (g *Graph) Clone() *Graph {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	clone := NewGraph()
	var id string
	for id = range g.vertices {
		clone.vertices[id] = struct{}{}
		clone.adjacency[id] = make(map[string]EdgeKey, len(g.adjacency[id]))
	}
	var (
		key EdgeKey
		e   *Edge
	)
	for key, e = range g.edges {
		clone.edges[key] = &Edge{Key: key, From: e.From, To: e.To, Weight: e.Weight}
		clone.adjacency[e.From][e.To] = key
		clone.adjacency[e.To][e.From] = key
	}
	atomic.StoreUint64(&clone.version, atomic.LoadUint64(&g.version))

	return clone
}

// Snapshot returns an immutable copy of all roads as (from, to, weight)
// records, ordered by canonical key. Records use the canonical orientation.
//
// Complexity: O(E log E)
func (g *Graph) Snapshot() []EdgeRecord {
	edges := g.Edges()
	out := make([]EdgeRecord, len(edges))
	for i, e := range edges {
		out[i] = EdgeRecord{From: e.Key.U, To: e.Key.V, Weight: e.Weight}
	}

	return out
}

// FromRecords builds a Graph from persisted edge records.
// Duplicate pairs collapse per AddEdge. The first invalid record aborts the
// build and is reported with its index.
//
// Complexity: O(E)
func FromRecords(records []EdgeRecord) (*Graph, error) {
	g := NewGraph()
	for i, r := range records {
		if err := g.AddEdge(r.From, r.To, r.Weight); err != nil {
			return nil, fmt.Errorf("core: record %d (%s-%s, w=%g): %w", i, r.From, r.To, r.Weight, err)
		}
	}

	return g, nil
}
