// Package core defines the Network types: Graph, Edge, EdgeKey and the
// immutable EdgeRecord used at persistence and rendering boundaries.
//
// This file declares the types, sentinel errors and the NewGraph constructor.
package core

import (
	"errors"
	"sync"
	"sync/atomic"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrBadWeight indicates a weight that is not a finite positive number.
	ErrBadWeight = errors.New("core: edge weight must be finite and > 0")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates AddEdgeStrict met an existing road.
	ErrMultiEdgeNotAllowed = errors.New("core: road already exists")
)

// Edge is one road of the network.
//
// From and To keep the orientation the edge was first inserted with; the
// identity of the edge is Key, which is orientation-free.
type Edge struct {
	// Key is the canonical identity of this edge.
	Key EdgeKey

	// From is the endpoint given first at insertion time.
	From string

	// To is the endpoint given second at insertion time.
	To string

	// Weight is the traversal cost of the road.
	Weight float64
}

// Neighbor is an adjacent vertex together with the weight of the connecting edge.
type Neighbor struct {
	ID     string
	Weight float64
}

// EdgeRecord is the persistence shape of an edge: (fromNode, toNode, weight).
type EdgeRecord struct {
	From   string  `json:"from"`
	To     string  `json:"to"`
	Weight float64 `json:"weight"`
}

// Graph is the road network.
//
// muVert protects vertices; muEdgeAdj protects edges and adjacency.
// version is bumped under the write lock that performs the mutation.
type Graph struct {
	muVert    sync.RWMutex // guards vertices
	muEdgeAdj sync.RWMutex // guards edges and adjacency

	// Storage
	vertices map[string]struct{}
	edges    map[EdgeKey]*Edge

	// adjacency[u][v] = Key(u, v), mirrored for both endpoints.
	adjacency map[string]map[string]EdgeKey

	version uint64 // accessed atomically

	claimed atomic.Bool // held by the run allowed to grow the network
}

// NewGraph creates an empty road network.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		vertices:  make(map[string]struct{}),
		edges:     make(map[EdgeKey]*Edge),
		adjacency: make(map[string]map[string]EdgeKey),
	}
}
