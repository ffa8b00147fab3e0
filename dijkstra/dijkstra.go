// Package dijkstra implements Dijkstra's shortest-path algorithm on the road network.
//
// Notes on implementation choices:
//
//   - core.Graph rejects non-positive and non-finite weights at insertion, so
//     no negative-weight pre-scan is needed here.
//   - We treat any edge with weight ≥ InfEdgeThreshold as an impassable “wall”.
//   - We stop exploring once the minimum distance in the heap exceeds MaxDistance.
//   - We use a “lazy” decrease-key strategy: pushing duplicates into the heap and ignoring stale entries.
package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/roadnet/core"
)

// Dijkstra computes shortest distances from the source vertex (Options.Source)
// to all other vertices of g.
//
// Returns:
//
//   - dist: vertex ID → minimum distance (Unreachable if no route exists).
//   - prev: predecessor map if ReturnPath=true (nil otherwise).
//     prev[v] == u means the shortest path to v goes through u.
//     For the source and unreachable v, prev[v] == "".
//   - err:  error if inputs are invalid.
//
// Preconditions and validation (in order):
//  1. Source string must be non-empty (ErrEmptySource).
//  2. g must be non-nil (ErrNilGraph).
//  3. g must contain Source (ErrVertexNotFound).
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Dijkstra(g *core.Graph, opts ...Option) (map[string]float64, map[string]string, error) {
	// 1) Build options
	cfg := DefaultOptions("")
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	// 2) Validate inputs
	if cfg.Source == "" {
		return nil, nil, ErrEmptySource
	}
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if !g.HasVertex(cfg.Source) {
		return nil, nil, ErrVertexNotFound
	}

	// 3) Prepare data structures for the algorithm.
	vertices := g.Vertices()
	V := len(vertices)
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make(map[string]float64, V),
		prev:    make(map[string]string, V),
		visited: make(map[string]bool, V),
		pq:      make(nodePQ, 0, V),
	}

	// 4) Initialize algorithm state and run main loop.
	r.init(vertices)
	if err := r.process(); err != nil {
		return nil, nil, err
	}

	if !cfg.ReturnPath {
		return r.dist, nil, nil
	}

	return r.dist, r.prev, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph        // The input graph; read-only within Dijkstra.
	options Options            // Configuration options (Source, thresholds, etc.).
	dist    map[string]float64 // Maps vertex ID → current best distance from Source.
	prev    map[string]string  // Maps vertex ID → predecessor on the shortest path.
	visited map[string]bool    // Tracks if a vertex's distance is finalized.
	pq      nodePQ             // Min-heap of *nodeItem for lazy priority queue.
}

// init sets dist[v] = Unreachable for every vertex, dist[Source] = 0, and seeds the heap.
func (r *runner) init(vertices []string) {
	for _, v := range vertices {
		r.dist[v] = Unreachable
		r.prev[v] = ""
	}
	r.dist[r.options.Source] = 0

	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: r.options.Source, dist: 0})
}

// process repeatedly extracts the closest unsettled vertex and relaxes its roads.
// It terminates when the heap is empty or the minimum distance exceeds MaxDistance.
func (r *runner) process() error {
	var (
		u string
		d float64
	)
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u, d = item.id, item.dist

		// stale heap entry
		if r.visited[u] {
			continue
		}
		if d > r.options.MaxDistance {
			break
		}
		r.visited[u] = true

		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax examines each road incident to u and improves neighbor distances.
// Assumes r.dist[u] is finalized before calling relax(u).
func (r *runner) relax(u string) error {
	neighbors, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %q: %w", u, err)
	}

	var newDist float64
	for _, nb := range neighbors {
		if nb.Weight >= r.options.InfEdgeThreshold {
			continue
		}
		newDist = r.dist[u] + nb.Weight
		if newDist > r.options.MaxDistance {
			continue
		}
		// Strictly better only; equal distances keep the first predecessor found.
		if cur, ok := r.dist[nb.ID]; ok && newDist >= cur {
			continue
		}
		r.dist[nb.ID] = newDist
		r.prev[nb.ID] = u
		heap.Push(&r.pq, &nodeItem{id: nb.ID, dist: newDist})
	}

	return nil
}

// nodeItem represents a vertex and its current distance from the source.
type nodeItem struct {
	id   string  // vertex ID
	dist float64 // distance from source
}

// nodePQ is a min-heap of *nodeItem ordered by dist, then id.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by distance; ties settle the smaller vertex ID first.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].id < pq[j].id
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the smallest element from the heap.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
