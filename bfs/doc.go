// Package bfs provides breadth-first traversal and connectivity queries over
// the road network.
//
// Travel costs are ignored here: BFS counts hops, which is all the planner
// needs to answer "can a trip between these two junctions be routed at all".
// The selector uses Components during preflight to report structurally
// unroutable demand, and builder.Connect uses it to stitch a generated
// network into one piece.
//
// Determinism
//
//	core.Graph.NeighborIDs returns neighbors sorted by ID and BFS enqueues
//	them in that order, so Order and Components are reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E·log d) per traversal (neighbor lists are sorted).
//   - Memory: O(V).
//
// Usage
//
//	res, err := bfs.BFS(g, "0", bfs.WithMaxDepth(2))
//	comps := bfs.Components(g) // [][]string, each sorted, ordered by first ID
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start vertex does not exist.
//   - ErrOptionViolation      for an invalid Option (negative MaxDepth).
//   - ErrNeighbors            if neighbor lookup fails.
//   - Wrapped OnVisit errors and ctx.Err() on cancellation.
package bfs
