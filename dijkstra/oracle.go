// File: oracle.go
// Role: Memoized pairwise shortest-path queries for traffic assignment and
//       benefit scoring.
//
// A single Dijkstra run answers every query from one source, so the Oracle
// caches whole single-source trees keyed by source ID. The memo is tied to
// core.Graph.Version: any mutation of the network (a committed road) purges
// it before the next query, so no distance computed on an older topology is
// ever served.

package dijkstra

import (
	"fmt"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/katalvlaran/roadnet/core"
)

// DefaultCacheSize bounds the number of memoized single-source trees.
const DefaultCacheSize = 1024

// Tree is the result of one single-source run: distances and predecessors.
// Trees handed out by the Oracle are shared and must be treated as read-only.
type Tree struct {
	Source string
	Dist   map[string]float64
	Prev   map[string]string
}

// Length returns the distance from the tree's source to target, or Unreachable.
func (t *Tree) Length(target string) float64 {
	d, ok := t.Dist[target]
	if !ok {
		return Unreachable
	}

	return d
}

// PathTo reconstructs the vertex sequence Source → … → target.
// Consecutive vertices of the result are adjacent in the graph.
// Returns false when target is unreachable or unknown.
func (t *Tree) PathTo(target string) ([]string, bool) {
	if IsUnreachable(t.Length(target)) {
		return nil, false
	}
	var path []string
	for v := target; v != ""; v = t.Prev[v] {
		path = append(path, v)
		if v == t.Source {
			break
		}
	}
	// reverse in place
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, true
}

// OracleOption configures an Oracle.
type OracleOption func(*oracleConfig)

type oracleConfig struct {
	cacheSize int
}

// WithCacheSize sets the number of single-source trees kept in memory.
// Values < 1 surface as ErrBadCacheSize from NewOracle.
func WithCacheSize(n int) OracleOption {
	return func(c *oracleConfig) {
		c.cacheSize = n
	}
}

// Oracle answers shortest-path queries against a live core.Graph.
type Oracle struct {
	g *core.Graph

	mu      sync.Mutex
	cache   *lru.Cache[string, *Tree]
	version uint64
	hits    uint64
	misses  uint64
}

// NewOracle binds an Oracle to g.
//
// Errors: ErrNilGraph, ErrBadCacheSize.
func NewOracle(g *core.Graph, opts ...OracleOption) (*Oracle, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	cfg := oracleConfig{cacheSize: DefaultCacheSize}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.cacheSize < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBadCacheSize, cfg.cacheSize)
	}
	cache, err := lru.New[string, *Tree](cfg.cacheSize)
	if err != nil {
		return nil, fmt.Errorf("dijkstra: allocate cache: %w", err)
	}

	return &Oracle{g: g, cache: cache, version: g.Version()}, nil
}

// Graph returns the network the Oracle reads.
func (o *Oracle) Graph() *core.Graph { return o.g }

// Tree returns the memoized single-source tree rooted at source, computing it
// on a miss.
//
// Errors: ErrEmptySource, ErrVertexNotFound.
func (o *Oracle) Tree(source string) (*Tree, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if v := o.g.Version(); v != o.version {
		o.cache.Purge()
		o.version = v
	}
	if t, ok := o.cache.Get(source); ok {
		o.hits++
		return t, nil
	}
	o.misses++

	dist, prev, err := Dijkstra(o.g, Source(source), WithReturnPath())
	if err != nil {
		return nil, err
	}
	t := &Tree{Source: source, Dist: dist, Prev: prev}
	o.cache.Add(source, t)

	return t, nil
}

// PathLength returns the shortest-path cost between u and v, 0 when u == v,
// and Unreachable when no route exists or either vertex is unknown.
func (o *Oracle) PathLength(u, v string) float64 {
	if u == v && o.g.HasVertex(u) {
		return 0
	}
	t, err := o.Tree(u)
	if err != nil {
		return Unreachable
	}

	return t.Length(v)
}

// Path returns the vertex sequence of one shortest route u → v.
// The boolean is false when v cannot be reached from u.
func (o *Oracle) Path(u, v string) ([]string, bool) {
	t, err := o.Tree(u)
	if err != nil {
		return nil, false
	}

	return t.PathTo(v)
}

// Invalidate drops every memoized tree.
func (o *Oracle) Invalidate() {
	o.mu.Lock()
	o.cache.Purge()
	o.version = o.g.Version()
	o.mu.Unlock()
}

// Stats reports memo hits, misses and the number of cached trees.
func (o *Oracle) Stats() (hits, misses uint64, cached int) {
	o.mu.Lock()
	defer o.mu.Unlock()

	return o.hits, o.misses, o.cache.Len()
}
