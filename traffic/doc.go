// Package traffic implements the assignment engine: synthetic trips between
// uniformly sampled junction pairs are routed over shortest paths and counted
// per road.
//
// What
//
//   - Table:  road → trip count, keyed by canonical core.EdgeKey only.
//   - Demand: origin–destination pair → number of routed trips.
//   - Assign: rounds × agents trips over the current network.
//   - Summarize: load statistics of a Table.
//
// Trip sampling
//
//	Origin and destination are drawn without replacement from the sorted
//	junction list (i := Intn(n); j := Intn(n-1); if j >= i { j++ }), so
//	origin ≠ destination by construction and a fixed seed reproduces the
//	whole assignment.
//
// Unreachable trips add nothing to Table or Demand; they are counted in
// Result.Unreachable and never abort a round.
//
// Determinism
//
//	Same network, options and seed ⇒ identical Table, Demand and History.
//
// Concurrency
//
//	Assign reads the network through the shortest-path Oracle and never
//	mutates it. Table and Demand are not safe for concurrent mutation; the
//	values handed out in Result are owned by the caller.
package traffic
