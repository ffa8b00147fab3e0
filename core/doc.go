// Package core provides the road Network: a thread-safe, in-memory,
// undirected weighted graph with a deliberately small API surface.
//
// The Graph G = (V,E) models intersections (vertices) and roads (edges):
//
//   - Vertices are opaque, non-empty string IDs.
//   - Edges are unordered pairs {u,v}, u ≠ v, each with a finite weight > 0
//     (traversal cost).
//   - At most one edge exists per unordered pair. Adding a pair that is
//     already present collapses into the existing edge, keeping the cheaper
//     of the two weights.
//   - Self-loops are rejected with ErrLoopNotAllowed.
//
// Canonical edge keys:
//
//	Every edge is identified by an EdgeKey built with Key(u, v). The key
//	stores the lexicographically smaller ID in U and the other in V, so
//	Key(u, v) == Key(v, u). Traffic tables, demand tables and candidate
//	pools all key on EdgeKey; there is no second orientation to look up.
//
// Versioning:
//
//	Version() increases on every topology or weight mutation. Consumers that
//	memoize shortest paths compare versions to detect stale results.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id string) error          // O(1)
//	HasVertex(id string) bool           // O(1)
//	Vertices() []string                 // O(V·log V), sorted
//
//	// Edge lifecycle
//	AddEdge(from, to string, w float64) error   // O(1)
//	AddEdgeStrict(from, to string, w float64) error
//	HasEdge(u, v string) bool                   // O(1)
//	Weight(u, v string) (float64, bool)         // O(1)
//	Edges() []Edge                              // O(E·log E), sorted by key
//
//	// Query
//	Neighbors(id string) ([]Neighbor, error)    // O(d·log d), sorted by ID
//	NeighborIDs(id string) ([]string, error)    // O(d·log d)
//
//	// Snapshots
//	Clone() *Graph                    // O(V+E) deep copy
//	Snapshot() []EdgeRecord           // O(E·log E) immutable edge list
//	FromRecords([]EdgeRecord) (*Graph, error)
//
// Errors:
//
//	ErrEmptyVertexID       – zero-length vertex ID
//	ErrVertexNotFound      – missing vertex
//	ErrEdgeNotFound        – missing edge
//	ErrBadWeight           – weight ≤ 0, NaN or ±Inf
//	ErrLoopNotAllowed      – self-loop
//	ErrMultiEdgeNotAllowed – AddEdgeStrict on an existing road
//
// Concurrency:
//
//	muVert guards the vertex catalog; muEdgeAdj guards edges and adjacency.
//	Lock order is always muVert → muEdgeAdj.
package core
